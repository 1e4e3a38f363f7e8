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

var (
	createURL   string
	createOwner string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a short link from the command line",
	Long: `Shortens the given URL on behalf of the given owner and prints the
resulting short code.

Example:
  go-link-shortener create --url="https://example.com/some/long/path" --owner=7b0d1c2e-0000-4000-8000-000000000001`,
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

		link, err := linkService.CreateLink(ctx, createURL, createOwner)
		if err != nil {
			return fmt.Errorf("creating link: %w", err)
		}

		fmt.Printf("Short code: %s\n", link.ShortCode)
		fmt.Printf("Original URL: %s\n", link.OriginalURL)
		if cfg.BaseURL != "" {
			fmt.Printf("Short URL: %s/%s\n", strings.TrimRight(cfg.BaseURL, "/"), link.ShortCode)
		}
		fmt.Printf("Created at: %s\n", link.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createURL, "url", "u", "", "URL to shorten")
	createCmd.Flags().StringVarP(&createOwner, "owner", "o", "", "Owner id the link is created for")
	createCmd.MarkFlagRequired("url")
	createCmd.MarkFlagRequired("owner")
	RootCmd.AddCommand(createCmd)
}
