package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/gosuslugi-grabber/internal/app"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var licensesCmd = &cobra.Command{
	Use:   "licenses [flags] {region codes}",
	Short: "Download license workbooks of regions and print their rows",
	Long: `Download the license workbooks of management companies for the given regions
and print one document per house row.

Region codes are two-digit codes of federal subjects, for example 77 for Moscow.
Use 'gosuslugi-grabber regions' to list them.

Examples:
gosuslugi-grabber licenses 77 50
gosuslugi-grabber licenses --all --save-dir ./workbooks -o licenses.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		all, _ := flags.GetBool("all")
		codesFile, _ := flags.GetString("file")
		saveDir, _ := flags.GetString("save-dir")
		activeOnly, _ := flags.GetBool("active-only")

		codes, err := app.ParseRegionCodes(args, codesFile, all)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse region codes: %v", err)
		}

		runCommand(cmd, func(ctx context.Context, a *app.App) error {
			return a.Licenses(ctx, app.LicensesOptions{
				RegionCodes: codes,
				SaveDir:     saveDir,
				ActiveOnly:  activeOnly,
			})
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	licensesCmdFlags := licensesCmd.Flags()

	licensesCmdFlags.BoolP(
		"all",
		"a",
		false,
		"download every known region.")

	licensesCmdFlags.String(
		"file",
		"",
		"text file with one region code per line, lines starting with # are skipped.")

	licensesCmdFlags.StringP(
		"save-dir",
		"s",
		"",
		"directory to save raw workbooks to (the path will be created if it doesn’t exist).")

	licensesCmdFlags.Bool(
		"active-only",
		false,
		"print only rows of licenses in force.")

	rootCmd.AddCommand(licensesCmd)
}
