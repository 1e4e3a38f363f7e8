// Package cmd defines the command-line interface of the link shortener.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command; subcommands attach themselves in their init
// functions.
var RootCmd = &cobra.Command{
	Use:   "go-link-shortener",
	Short: "A URL shortening service",
	Long: `go-link-shortener turns long URLs into short, shareable codes and
redirects visitors of a short code to the original URL.

Run 'go-link-shortener serve' to start the HTTP server, or use the
'create' and 'links' commands to manage links directly.`,
}

// Execute runs the CLI.
func Execute() error {
	return RootCmd.Execute()
}

// newLogger builds the production logger shared by all commands.
func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
