package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding
type Format string

const (
	FormatText   Format = "text"
	FormatCSV    Format = "csv"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

var (
	// ErrUnsupportedFormat is returned for unknown format names.
	ErrUnsupportedFormat = errors.New("export: unsupported format")
	// ErrNotStreamable is returned when a file-only format is written to a stream.
	ErrNotStreamable = errors.New("export: format can only be written to a file")
)

// Result is one transformed number
type Result struct {
	Input float64 `yaml:"-"`
	Raw   string  `yaml:"input"`
	Words string  `yaml:"words"`
}

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatCSV, FormatYAML, FormatSQLite:
		return f, nil
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Options configures the export
type Options struct {
	IncludeHeaders bool   // Include the CSV header row
	Culture        string // Culture name recorded with SQLite rows
}

// DefaultOptions returns sensible defaults
func DefaultOptions() *Options {
	return &Options{
		IncludeHeaders: true,
		Culture:        "invariant",
	}
}

// Exporter writes results in one format
type Exporter struct {
	format  Format
	options *Options
}

// NewExporter creates a new exporter
func NewExporter(format Format, options *Options) *Exporter {
	if options == nil {
		options = DefaultOptions()
	}
	return &Exporter{
		format:  format,
		options: options,
	}
}

// Format returns the exporter's format
func (e *Exporter) Format() Format {
	return e.format
}

// Write encodes results to w. SQLite output needs a file; use WriteFile.
func (e *Exporter) Write(w io.Writer, results []Result) error {
	switch e.format {
	case FormatText:
		return writeText(w, results)
	case FormatCSV:
		return writeCSV(w, results, e.options.IncludeHeaders)
	case FormatYAML:
		return writeYAML(w, results)
	case FormatSQLite:
		return ErrNotStreamable
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, e.format)
	}
}

// WriteFile writes results to path. Stream formats replace the file; SQLite
// appends rows to an existing database.
func (e *Exporter) WriteFile(path string, results []Result) error {
	if e.format == FormatSQLite {
		return writeSQLite(path, results, e.options.Culture)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := e.Write(file, results); err != nil {
		return err
	}

	return file.Close()
}

func writeText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s = %s\n", r.Raw, r.Words); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, results []Result, headers bool) error {
	writer := csv.NewWriter(w)

	if headers {
		if err := writer.Write([]string{"input", "words"}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, r := range results {
		if err := writer.Write([]string{r.Raw, r.Words}); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type yamlDocument struct {
	Results []Result `yaml:"results"`
}

func writeYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDocument{Results: results}); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
