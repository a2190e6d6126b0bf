// Package encoding turns a named input charset into a streaming UTF-8 reader.
// The charset must be named explicitly; content is never sniffed.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// UTF8 is the canonical name reported when no transcoding takes place.
const UTF8 = "utf-8"

// ErrUnknownEncoding indicates that a charset name could not be resolved.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Lookup resolves a charset label (e.g. "latin1", "windows-1252", "Shift_JIS")
// to its decoder and canonical name. An empty label and every UTF-8 alias
// resolve to a nil Encoding, meaning the bytes are passed through untouched.
func Lookup(label string) (xencoding.Encoding, string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, UTF8, nil
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	if name == UTF8 {
		return nil, UTF8, nil
	}
	return enc, name, nil
}

// NewReader wraps r so that reads yield UTF-8 decoded with enc.
// A nil enc, as returned by Lookup for UTF-8, leaves r untouched.
func NewReader(r io.Reader, enc xencoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
