// Package cli defines the site's command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../internal/cli.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "site",
	Short:         "Dragon Paving marketing site",
	Long:          "site serves the Dragon Paving marketing website: home, services, service details and the contact form.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
