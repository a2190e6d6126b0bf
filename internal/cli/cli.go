package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/stackvity/csv2pipe/internal/cli/hooks"
	"github.com/stackvity/csv2pipe/pkg/converter"
)

// Run performs one conversion after configuration loading.
// Status output goes to stdout through CLIHooks; diagnostics go to logger.
// styled should be true only when stdout is a terminal.
func Run(ctx context.Context, opts converter.Options, logger *slog.Logger, stdout io.Writer, styled bool) error {
	if opts.EventHooks == nil {
		opts.EventHooks = hooks.NewCLIHooks(stdout, logger, opts.OutputFormat, styled)
	}

	report, err := converter.Convert(ctx, opts)
	if err != nil {
		logger.Error("Conversion failed",
			slog.String("input", opts.InputPath),
			slog.String("output", report.OutputPath),
			slog.Int("rowsWritten", report.RowCount),
			slog.Any("error", err),
		)
		return err
	}

	logger.Debug("Run finished",
		slog.String("output", report.OutputPath),
		slog.Int("rows", report.RowCount),
		slog.Float64("seconds", report.DurationSeconds),
	)
	return nil
}
