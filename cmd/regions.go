package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/gosuslugi-grabber/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print the region codes known to the registry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runCommand(cmd, func(ctx context.Context, a *app.App) error {
			return a.Regions(ctx)
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(regionsCmd)
}
