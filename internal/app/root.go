package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/gosuslugi-grabber/internal/client/gosuslugi"
	"github.com/oshokin/gosuslugi-grabber/internal/config"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
)

// App runs the registry commands and prints their results.
type App struct {
	client  gosuslugi.Client
	printer *Printer
	// progressWriter receives progress bars; nil disables them.
	progressWriter io.Writer
}

// Option configures an App.
type Option func(*App)

// WithProgressWriter enables progress bars written to w.
func WithProgressWriter(w io.Writer) Option {
	return func(a *App) {
		a.progressWriter = w
	}
}

// New creates an App on top of a registry client and a printer.
func New(client gosuslugi.Client, printer *Printer, options ...Option) *App {
	a := &App{
		client:  client,
		printer: printer,
	}

	for _, option := range options {
		option(a)
	}

	return a
}

// OutputOptions describes where and how results are printed.
type OutputOptions struct {
	// Path is the output file; empty means standard output.
	Path string
	// Format is json or yaml; empty means inferred from Path.
	Format string
}

// ExecuteCommand is the entry point of every command.
// It initializes the registry client and the output, runs the command and flushes the output.
func ExecuteCommand(
	ctx context.Context,
	cfg *config.Config,
	output OutputOptions,
	command func(ctx context.Context, a *App) error,
) error {
	format, err := ResolveOutputFormat(output.Format, output.Path)
	if err != nil {
		return err
	}

	client, err := gosuslugi.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize registry client: %w", err)
	}

	writer, err := OpenOutput(output.Path)
	if err != nil {
		return err
	}

	defer writer.Close() //nolint:errcheck // Write errors are reported by the printer.

	printer := NewPrinter(writer, format)

	var options []Option

	// Progress bars would interleave with debug dumps.
	if logger.Level() >= zap.InfoLevel {
		options = append(options, WithProgressWriter(os.Stderr))
	}

	logger.Debugf(ctx, "Using registry at %s", client.GetBaseURL())

	if err = command(ctx, New(client, printer, options...)); err != nil {
		return err
	}

	return printer.Close()
}

func (a *App) newProgressBar(total int, description string) *progressbar.ProgressBar {
	if a.progressWriter == nil || total < 2 {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(a.progressWriter),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}
