package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/gosuslugi-grabber/internal/constants"
)

// OutputFormat is the serialization format of printed results.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// yamlIndent is the indentation of YAML documents.
const yamlIndent = 2

// ResolveOutputFormat parses the requested format.
// An empty format is inferred from the output file extension, JSON being the fallback.
func ResolveOutputFormat(format, outputPath string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(format))) {
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatYAML, "yml":
		return OutputFormatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("%w: '%s' (supported: %s, %s)",
			ErrUnknownOutputFormat, format, OutputFormatJSON, OutputFormatYAML)
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case constants.ExtensionYAML, constants.ExtensionYML:
		return OutputFormatYAML, nil
	default:
		return OutputFormatJSON, nil
	}
}

// Printer writes values as a stream of JSON or YAML documents.
type Printer struct {
	jsonEncoder *json.Encoder
	yamlEncoder *yaml.Encoder
}

// NewPrinter creates a printer writing documents of the given format to w.
func NewPrinter(w io.Writer, format OutputFormat) *Printer {
	if format == OutputFormatYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(yamlIndent)

		return &Printer{yamlEncoder: encoder}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return &Printer{jsonEncoder: encoder}
}

// Print writes one document.
func (p *Printer) Print(value any) error {
	if p.yamlEncoder != nil {
		if err := p.yamlEncoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return nil
	}

	if err := p.jsonEncoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Close flushes buffered documents.
func (p *Printer) Close() error {
	if p.yamlEncoder != nil {
		return p.yamlEncoder.Close()
	}

	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// OpenOutput opens the file results are written to, creating missing folders.
// An empty path means standard output, which is never closed.
func OpenOutput(outputPath string) (io.WriteCloser, error) {
	if outputPath == "" {
		return nopWriteCloser{Writer: os.Stdout}, nil
	}

	outputPath = filepath.Clean(outputPath)

	if err := os.MkdirAll(filepath.Dir(outputPath), constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	return file, nil
}
