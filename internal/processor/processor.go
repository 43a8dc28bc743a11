package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/numwords/internal/archive"
	"codeberg.org/snonux/numwords/internal/batch"
	"codeberg.org/snonux/numwords/internal/cli"
	"codeberg.org/snonux/numwords/internal/export"
	"codeberg.org/snonux/numwords/internal/locale"
	"codeberg.org/snonux/numwords/internal/transformer"
)

// ErrOutputRequired is returned when a file-only format has no output file.
var ErrOutputRequired = errors.New("processor: output file required")

// Processor handles the main number processing logic
type Processor struct {
	flags       *cli.Flags
	logger      *zap.Logger
	transformer *transformer.Transformer
	exporter    *export.Exporter
	stdout      io.Writer
}

// NewProcessor creates a new number processor
func NewProcessor(flags *cli.Flags, logger *zap.Logger) (*Processor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	culture, err := locale.Parse(flags.Locale)
	if err != nil {
		return nil, err
	}

	format, err := export.ParseFormat(flags.Format)
	if err != nil {
		return nil, err
	}
	if format == export.FormatSQLite && flags.OutputFile == "" {
		return nil, fmt.Errorf("%w for format %s", ErrOutputRequired, format)
	}

	options := export.DefaultOptions()
	options.Culture = culture.Name()

	logger.Debug("processor configured",
		zap.String("culture", culture.Name()),
		zap.String("decimal_separator", culture.DecimalSeparator),
		zap.String("format", string(format)))

	return &Processor{
		flags:       flags,
		logger:      logger,
		transformer: transformer.New(transformer.WithCulture(culture)),
		exporter:    export.NewExporter(format, options),
		stdout:      os.Stdout,
	}, nil
}

// SetOutput redirects stream output, which defaults to os.Stdout
func (p *Processor) SetOutput(w io.Writer) {
	p.stdout = w
}

// Run processes the batch files if any were given, otherwise args
func (p *Processor) Run(ctx context.Context, args []string) error {
	if len(p.flags.BatchFiles) > 0 {
		if len(args) > 0 {
			p.logger.Warn("ignoring command line numbers in batch mode", zap.Int("count", len(args)))
		}
		return p.ProcessBatch(ctx)
	}
	return p.ProcessArgs(ctx, args)
}

// ProcessArgs processes numbers given on the command line
func (p *Processor) ProcessArgs(ctx context.Context, args []string) error {
	entries, err := batch.ParseArgs(args)
	if err != nil {
		return err
	}
	return p.process(ctx, entries)
}

// ProcessBatch reads all batch files concurrently and processes their
// numbers in file order
func (p *Processor) ProcessBatch(ctx context.Context) error {
	files := p.flags.BatchFiles
	perFile := make([][]batch.Entry, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.flags.Jobs, 1))

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			entries, err := batch.ReadBatchFile(file)
			if err != nil {
				return err
			}

			p.logger.Debug("read batch file", zap.String("file", file), zap.Int("numbers", len(entries)))
			perFile[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var entries []batch.Entry
	for _, fileEntries := range perFile {
		entries = append(entries, fileEntries...)
	}

	p.logger.Info("batch files read", zap.Int("files", len(files)), zap.Int("numbers", len(entries)))
	return p.process(ctx, entries)
}

func (p *Processor) process(ctx context.Context, entries []batch.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	results, err := p.Transform(entries)
	if err != nil {
		return err
	}

	return p.export(results)
}

// Transform spells out every entry, keeping input order
func (p *Processor) Transform(entries []batch.Entry) ([]export.Result, error) {
	words, err := p.transformer.Transform(batch.Values(entries))
	if err != nil {
		return nil, fmt.Errorf("no numbers to transform: %w", err)
	}

	results := make([]export.Result, len(entries))
	for i, e := range entries {
		results[i] = export.Result{Input: e.Value, Raw: e.Raw, Words: words[i]}
	}

	p.logger.Debug("transformed numbers", zap.Int("count", len(results)))
	return results, nil
}

func (p *Processor) export(results []export.Result) error {
	if p.flags.OutputFile == "" {
		return p.exporter.Write(p.stdout, results)
	}

	if p.flags.Archive {
		archived, err := archive.ArchiveFile(p.flags.OutputFile)
		if err != nil {
			return err
		}
		if archived != "" {
			p.logger.Info("archived previous output", zap.String("path", archived))
		}
	}

	if err := p.exporter.WriteFile(p.flags.OutputFile, results); err != nil {
		return err
	}

	p.logger.Info("results written",
		zap.String("file", p.flags.OutputFile),
		zap.String("format", string(p.exporter.Format())),
		zap.Int("count", len(results)))
	return nil
}
