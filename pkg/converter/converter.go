package converter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	xencoding "golang.org/x/text/encoding"

	"github.com/stackvity/csv2pipe/pkg/converter/encoding"
)

// OutputPathFor returns the path the converted file is written to.
// No check is made that it differs from the input or does not exist yet.
func OutputPathFor(inputPath string) string {
	return inputPath + OutputSuffix
}

// Convert rewrites the comma-delimited file at opts.InputPath as a
// pipe-delimited file at OutputPathFor(opts.InputPath), preserving the header
// and the order of every row. Both files are closed before Convert returns.
//
// On failure the returned Report carries the counts reached so far and a
// partially written output file may remain on disk.
func Convert(ctx context.Context, opts Options) (Report, error) {
	// --- Initial Validation ---
	if opts.Logger == nil {
		return Report{}, fmt.Errorf("%w: Logger implementation cannot be nil", ErrConfigValidation)
	}
	logger := slog.New(opts.Logger)

	if opts.EventHooks == nil {
		return Report{}, fmt.Errorf("%w: EventHooks implementation cannot be nil (use NoOpHooks if needed)", ErrConfigValidation)
	}
	if opts.InputPath == "" {
		err := fmt.Errorf("%w: input path cannot be empty", ErrConfigValidation)
		logger.Error(err.Error())
		return Report{}, err
	}
	mode := opts.RaggedMode
	if mode == "" {
		mode = DefaultRaggedMode
	}
	if !slices.Contains([]RaggedMode{RaggedPad, RaggedStrict, RaggedPassthrough}, mode) {
		err := fmt.Errorf("%w: unknown ragged row mode '%s'", ErrConfigValidation, mode)
		logger.Error(err.Error())
		return Report{}, err
	}
	enc, encName, err := encoding.Lookup(opts.Encoding)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConfigValidation, err)
		logger.Error(err.Error())
		return Report{}, err
	}

	start := time.Now()
	report := Report{
		InputPath:     opts.InputPath,
		OutputPath:    OutputPathFor(opts.InputPath),
		Encoding:      encName,
		RaggedMode:    string(mode),
		Status:        StatusRunning,
		Timestamp:     start,
		SchemaVersion: ReportSchemaVersion,
	}

	if hookErr := opts.EventHooks.OnConversionStart(report.InputPath, report.OutputPath); hookErr != nil {
		logger.Warn("Error reported by OnConversionStart hook", slog.String("hookError", hookErr.Error()))
	}
	logger.Debug("Starting conversion",
		slog.String("input", report.InputPath),
		slog.String("output", report.OutputPath),
		slog.String("encoding", encName),
		slog.String("raggedRows", string(mode)),
	)

	err = convertFile(ctx, opts, enc, mode, &report)
	report.DurationSeconds = time.Since(start).Seconds()
	if err != nil {
		report.Status = StatusFailed
		logger.Debug("Conversion failed", slog.Int("rows", report.RowCount), slog.Any("error", err))
		return report, err
	}
	report.Status = StatusSuccess

	logger.Debug("Conversion finished",
		slog.Int("rows", report.RowCount),
		slog.Int("padded", report.PaddedRowCount),
		slog.Float64("seconds", report.DurationSeconds),
	)
	if hookErr := opts.EventHooks.OnConversionComplete(report); hookErr != nil {
		logger.Warn("Error reported by OnConversionComplete hook", slog.String("hookError", hookErr.Error()))
	}
	return report, nil
}

// convertFile owns both file handles. Each is closed on every return path.
func convertFile(ctx context.Context, opts Options, enc xencoding.Encoding, mode RaggedMode, report *Report) (err error) {
	in, err := os.Open(report.InputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer in.Close()

	out, err := os.Create(report.OutputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteFailed, cerr)
		}
	}()

	r := csv.NewReader(encoding.NewReader(in, enc))
	r.Comma = InputDelimiter
	r.FieldsPerRecord = -1 // field counts are checked by Record.Align
	r.LazyQuotes = true    // stray quotes are kept as data
	r.ReuseRecord = true

	w := newRowWriter(out, opts.UseCRLF)

	first, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrMissingHeader
		}
		return readError(err)
	}
	header := Header(slices.Clone(first))
	report.Header = header
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			_ = w.Flush()
			return err
		}
		values, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = w.Flush()
			return readError(err)
		}
		line, _ := r.FieldPos(0)
		rec := Record{Header: header, Values: values, Line: line}
		aligned, padded, err := rec.Align(mode)
		if err != nil {
			_ = w.Flush()
			return err
		}
		if err := w.Write(aligned); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		report.RowCount++
		if padded {
			report.PaddedRowCount++
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// readError classifies an error returned by the csv reader.
func readError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	return fmt.Errorf("%w: %w", ErrReadFailed, err)
}
