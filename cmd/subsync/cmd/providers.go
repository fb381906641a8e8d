package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProvidersCommand creates the providers command with app dependencies.
func NewProvidersCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported subscription providers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range app.Sources().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
