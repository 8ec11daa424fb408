package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oshokin/gosuslugi-grabber/internal/app"
	"github.com/oshokin/gosuslugi-grabber/internal/client/gosuslugi"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var housesCmd = &cobra.Command{
	Use:   "houses [flags] {house code}",
	Short: "Print FIAS houses by registry house code",
	Long: `Print FIAS houses by registry house code.
House codes are found in the license rows (gos_uslugi_house_code).

Use --actual=false to get records that are no longer actual.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := housesFilterFromArgs(cmd, args)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Invalid filter: %v", err)
		}

		runCommand(cmd, func(ctx context.Context, a *app.App) error {
			return a.Houses(ctx, filter)
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	housesCmd.Flags().Bool(
		"actual",
		true,
		"request actual records.")

	addFilterFlag(housesCmd, gosuslugi.FilterActual, gosuslugi.FilterIncludeDuplicates)

	rootCmd.AddCommand(housesCmd)
}

// housesFilterFromArgs builds the filter; an explicit --actual wins over the filter value.
func housesFilterFromArgs(cmd *cobra.Command, args []string) (gosuslugi.HousesFilter, error) {
	flags := cmd.Flags()

	values := filterValuesFromFlag(flags)
	values[gosuslugi.FilterHouseCode] = args[0]

	if _, ok := values[gosuslugi.FilterActual]; !ok || flags.Changed("actual") {
		actual, _ := flags.GetBool("actual")
		values[gosuslugi.FilterActual] = strconv.FormatBool(actual)
	}

	return gosuslugi.ParseHousesFilter(values)
}
