package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/gosuslugi-grabber/internal/app"
	"github.com/oshokin/gosuslugi-grabber/internal/config"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
	"github.com/oshokin/gosuslugi-grabber/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals // Output flags are shared by every subcommand.
	outputOptions app.OutputOptions

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "gosuslugi-grabber",
		Short: "Fetch public housing registry data from dom.gosuslugi.ru.",
		Long: `Gosuslugi Grabber is a CLI tool for the public API of the housing registry (dom.gosuslugi.ru).
It can fetch:
- License workbooks of management companies, region by region
- Organizations by INN or GUID
- FIAS houses by house code
- Home managements of an organization

Results are printed as JSON or YAML, to standard output or to a file.`,
		Version:           version.Full(),
		SilenceUsage:      true,
		PersistentPreRun:  initConfig,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmdFlags := rootCmd.PersistentFlags()

	rootCmdFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags.StringVarP(
		&outputOptions.Format,
		"format",
		"f",
		"",
		"output format: json or yaml (default is inferred from the output file extension, then json).")

	rootCmdFlags.StringVarP(
		&outputOptions.Path,
		"output",
		"o",
		"",
		"file to write results to (the path will be created if it doesn’t exist, default is standard output).")

	rootCmdFlags.String(
		"base-url",
		"",
		"registry base URL, for example: https://dom.gosuslugi.ru/")

	rootCmdFlags.String(
		"timeout",
		"",
		"request timeout, for example: 30s, 1m.")

	rootCmdFlags.String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.RequestTimeout, _ = flags.GetString("timeout")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return config.ValidateConfig(cfg)
}

// runCommand executes an application command with the loaded configuration and exits on failure.
func runCommand(cmd *cobra.Command, command func(ctx context.Context, a *app.App) error) {
	ctx := logger.WithName(cmd.Context(), cmd.Name())

	if err := app.ExecuteCommand(ctx, appConfig, outputOptions, command); err != nil {
		logger.Fatalf(ctx, "Command failed: %v", err)
	}
}

// filterValuesFromFlag returns a copy of the --filter values of a command.
func filterValuesFromFlag(flags *pflag.FlagSet) map[string]string {
	values, _ := flags.GetStringToString("filter")

	result := make(map[string]string, len(values)+1)
	for name, value := range values {
		result[name] = value
	}

	return result
}

func addFilterFlag(cmd *cobra.Command, supported ...string) {
	cmd.Flags().StringToString(
		"filter",
		nil,
		fmt.Sprintf("filter as name=value pairs, supported names: %v", supported))
}
