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
	organizationsCmd = &cobra.Command{
		Use:   "organizations [flags] {INN}",
		Short: "Search organizations by INN",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			filter, err := organizationsFilterFromArgs(cmd, args)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Invalid filter: %v", err)
			}

			runCommand(cmd, func(ctx context.Context, a *app.App) error {
				return a.Organizations(ctx, filter)
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	organizationCmd = &cobra.Command{
		Use:   "organization {GUID}",
		Short: "Print an organization by GUID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runCommand(cmd, func(ctx context.Context, a *app.App) error {
				return a.Organization(ctx, args[0])
			})
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addFilterFlag(organizationsCmd, gosuslugi.FilterPage, gosuslugi.FilterItemsPerPage)

	rootCmd.AddCommand(organizationsCmd, organizationCmd)
}

func organizationsFilterFromArgs(cmd *cobra.Command, args []string) (gosuslugi.OrganizationsFilter, error) {
	values := filterValuesFromFlag(cmd.Flags())
	values[gosuslugi.FilterINN] = args[0]

	return gosuslugi.ParseOrganizationsFilter(values)
}
