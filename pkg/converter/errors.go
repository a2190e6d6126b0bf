package converter

import "errors"

// These errors represent the categories of failure Convert can return.
// Callers can check against them using errors.Is.
var (
	// ErrConfigValidation indicates that the provided Options failed validation
	// before any file was opened.
	ErrConfigValidation = errors.New("invalid configuration options provided")

	// ErrReadFailed indicates that the input file could not be opened or read.
	// The underlying *fs.PathError is wrapped. No output file exists when this
	// is returned from the open step.
	ErrReadFailed = errors.New("failed to read input file")

	// ErrWriteFailed indicates that the output file could not be created,
	// written, flushed or closed. A partial output file may remain on disk.
	ErrWriteFailed = errors.New("failed to write output file")

	// ErrMissingHeader indicates that the input contained no header record.
	ErrMissingHeader = errors.New("input has no header row")

	// ErrMalformedRow indicates a record the parser rejected, or one whose field
	// count violates the configured RaggedMode. A *csv.ParseError is wrapped
	// when the parser itself failed.
	ErrMalformedRow = errors.New("malformed row")
)
