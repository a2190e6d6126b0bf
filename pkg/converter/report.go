package converter

import (
	"encoding/json"
	"io"
	"time"
)

// Report summarizes the result of a single Convert run.
type Report struct {
	InputPath       string    `json:"inputPath"`
	OutputPath      string    `json:"outputPath"`
	Header          []string  `json:"header"`
	RowCount        int       `json:"rowCount"`
	PaddedRowCount  int       `json:"paddedRowCount"`
	Encoding        string    `json:"encoding"`
	RaggedMode      string    `json:"raggedRows"`
	Status          Status    `json:"status"`
	DurationSeconds float64   `json:"durationSeconds"`
	Timestamp       time.Time `json:"timestamp"`
	SchemaVersion   string    `json:"schemaVersion,omitempty"`
}

// WriteJSON encodes the report as an indented JSON document followed by a newline.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
