package cmd

import (
	"go-link-shortener/config"
	"go-link-shortener/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var disableRateLimit bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the link shortener HTTP server",
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
		if disableRateLimit {
			cfg.DisableRateLimit = true
		}

		logger.Info("Starting link shortener application...")
		if err := server.Run(logger, cfg); err != nil {
			logger.Error("Application error", zap.Error(err))
			return err
		}
		logger.Info("Link shortener application stopped.")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&disableRateLimit, "disable-rate-limit", false, "Disable rate limiting for performance testing")
	RootCmd.AddCommand(serveCmd)
}
