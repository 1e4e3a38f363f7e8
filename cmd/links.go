package cmd

import (
	"context"
	"fmt"
	"strings"

	"go-link-shortener/config"
	"go-link-shortener/server"
	"go-link-shortener/services"
	"go-link-shortener/shortcode"

	"github.com/spf13/cobra"
)

var linksOwner string

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List an owner's short links, newest first",
	Long: `Lists every short link owned by the given owner id, most recently
created first.

Example:
  go-link-shortener links --owner=7b0d1c2e-0000-4000-8000-000000000001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, closeStore, err := server.NewStorage(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		linkService := services.NewLinkService(store, shortcode.NewGenerator(), logger)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()

		links, err := linkService.ListLinks(ctx, linksOwner)
		if err != nil {
			return fmt.Errorf("listing links: %w", err)
		}

		if len(links) == 0 {
			fmt.Println("No links found.")
			return nil
		}

		base := strings.TrimRight(cfg.BaseURL, "/")
		for _, link := range links {
			code := link.ShortCode
			if base != "" {
				code = base + "/" + link.ShortCode
			}
			fmt.Printf("%s  %s  %s\n", link.CreatedAt.Format("2006-01-02 15:04:05"), code, link.OriginalURL)
		}
		return nil
	},
}

func init() {
	linksCmd.Flags().StringVarP(&linksOwner, "owner", "o", "", "Owner id to list links for")
	linksCmd.MarkFlagRequired("owner")
	RootCmd.AddCommand(linksCmd)
}
