package converter

import "fmt"

// Header is the ordered sequence of field names read from the first input record.
type Header []string

// Record is one data row: its values in input order plus the header they align to.
// Records share the Header slice instead of copying names per row.
type Record struct {
	Header Header
	Values []string
	Line   int
}

// Align applies mode to the record and returns the values to write.
// padded reports whether empty values were appended.
func (r Record) Align(mode RaggedMode) (values []string, padded bool, err error) {
	want, got := len(r.Header), len(r.Values)
	if got == want || mode == RaggedPassthrough {
		return r.Values, false, nil
	}
	if mode == RaggedPad && got < want {
		values = r.Values
		for len(values) < want {
			values = append(values, "")
		}
		return values, true, nil
	}
	return nil, false, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformedRow, r.Line, got, want)
}
