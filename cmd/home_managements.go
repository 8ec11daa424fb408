package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/gosuslugi-grabber/internal/app"
	"github.com/oshokin/gosuslugi-grabber/internal/client/gosuslugi"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	homeManagementsCmd = &cobra.Command{
		Use:   "home-managements [flags] {organization GUID}",
		Short: "Print every page of the home management listing of an organization",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			filter, err := homeManagementsFilterFromArgs(cmd, args)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Invalid filter: %v", err)
			}

			runCommand(cmd, func(ctx context.Context, a *app.App) error {
				return a.HomeManagements(ctx, filter)
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	homeManagementCmd = &cobra.Command{
		Use:   "home-management {GUID}",
		Short: "Print a home management by GUID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runCommand(cmd, func(ctx context.Context, a *app.App) error {
				return a.HomeManagement(ctx, args[0])
			})
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addFilterFlag(homeManagementsCmd, gosuslugi.FilterStartPage, gosuslugi.FilterPerPage)

	rootCmd.AddCommand(homeManagementsCmd, homeManagementCmd)
}

func homeManagementsFilterFromArgs(cmd *cobra.Command, args []string) (gosuslugi.HomeManagementsFilter, error) {
	values := filterValuesFromFlag(cmd.Flags())
	values[gosuslugi.FilterOrganizationGUID] = args[0]

	return gosuslugi.ParseHomeManagementsFilter(values)
}
