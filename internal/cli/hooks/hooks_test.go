package hooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stackvity/csv2pipe/pkg/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCLIHooks_TextMode(t *testing.T) {
	out := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}
	hooks := NewCLIHooks(out, newTestLogger(logBuf), converter.OutputFormatText, false)

	require.NoError(t, hooks.OnConversionStart("in.csv", "in.csv.pip"))
	require.NoError(t, hooks.OnConversionComplete(converter.Report{OutputPath: "in.csv.pip", RowCount: 3}))

	assert.Equal(t, converter.StartMessage+"\n"+converter.CompleteMessage+"\n", out.String(), "Text mode prints exactly two status lines")
	assert.Contains(t, logBuf.String(), `"msg":"Conversion starting"`)
	assert.Contains(t, logBuf.String(), `"rows":3`)
}

func TestCLIHooks_StyledKeepsMessageText(t *testing.T) {
	out := &bytes.Buffer{}
	hooks := NewCLIHooks(out, newTestLogger(&bytes.Buffer{}), converter.OutputFormatText, true)

	require.NoError(t, hooks.OnConversionStart("in.csv", "in.csv.pip"))
	require.NoError(t, hooks.OnConversionComplete(converter.Report{}))

	lines := bytes.Split(bytes.TrimSuffix(out.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), converter.StartMessage)
	assert.Contains(t, string(lines[1]), converter.CompleteMessage)
}

func TestCLIHooks_JSONMode(t *testing.T) {
	out := &bytes.Buffer{}
	hooks := NewCLIHooks(out, newTestLogger(&bytes.Buffer{}), converter.OutputFormatJSON, false)

	require.NoError(t, hooks.OnConversionStart("in.csv", "in.csv.pip"))
	assert.Empty(t, out.String(), "JSON mode prints nothing at start")

	require.NoError(t, hooks.OnConversionComplete(converter.Report{
		InputPath:  "in.csv",
		OutputPath: "in.csv.pip",
		RowCount:   2,
		Status:     converter.StatusSuccess,
	}))

	var decoded converter.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "in.csv.pip", decoded.OutputPath)
	assert.Equal(t, 2, decoded.RowCount)
	assert.Equal(t, converter.StatusSuccess, decoded.Status)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestCLIHooks_WriteErrorsAreReturned(t *testing.T) {
	hooks := NewCLIHooks(failingWriter{}, newTestLogger(&bytes.Buffer{}), converter.OutputFormatText, false)

	assert.EqualError(t, hooks.OnConversionStart("in.csv", "in.csv.pip"), "stdout closed")
	assert.EqualError(t, hooks.OnConversionComplete(converter.Report{}), "stdout closed")
}
