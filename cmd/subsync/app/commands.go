package app

import (
	"github.com/spf13/cobra"

	"github.com/feedtools/subsync/cmd/subsync/cmd"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewSyncCommand(a))
	rootCmd.AddCommand(cmd.NewExportCommand(a))
	rootCmd.AddCommand(cmd.NewProvidersCommand(a))
	rootCmd.AddCommand(cmd.NewVersionCommand(a))
}
