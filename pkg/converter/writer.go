package converter

import (
	"bufio"
	"io"
	"strings"
)

// rowWriter writes pipe-delimited records. A field is quoted only when it
// contains the delimiter, a quote or a line break; embedded quotes are doubled.
// Leading and trailing spaces are written as they are.
type rowWriter struct {
	w          *bufio.Writer
	terminator string
}

func newRowWriter(w io.Writer, useCRLF bool) *rowWriter {
	terminator := "\n"
	if useCRLF {
		terminator = "\r\n"
	}
	return &rowWriter{w: bufio.NewWriter(w), terminator: terminator}
}

// Write writes one record followed by the line terminator.
func (rw *rowWriter) Write(record []string) error {
	// A lone empty field would otherwise become a blank line, which readers skip.
	if len(record) == 1 && record[0] == "" {
		if _, err := rw.w.WriteString(`""`); err != nil {
			return err
		}
		_, err := rw.w.WriteString(rw.terminator)
		return err
	}

	for i, field := range record {
		if i > 0 {
			if _, err := rw.w.WriteRune(OutputDelimiter); err != nil {
				return err
			}
		}
		if err := rw.writeField(field); err != nil {
			return err
		}
	}
	_, err := rw.w.WriteString(rw.terminator)
	return err
}

func (rw *rowWriter) writeField(field string) error {
	if !strings.ContainsAny(field, string(OutputDelimiter)+"\"\r\n") {
		_, err := rw.w.WriteString(field)
		return err
	}
	if err := rw.w.WriteByte('"'); err != nil {
		return err
	}
	if _, err := rw.w.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
		return err
	}
	return rw.w.WriteByte('"')
}

// Flush writes any buffered data to the underlying writer.
func (rw *rowWriter) Flush() error {
	return rw.w.Flush()
}
