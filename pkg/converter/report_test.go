package converter_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stackvity/csv2pipe/pkg/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_WriteJSON(t *testing.T) {
	report := converter.Report{
		InputPath:       "/data/people.csv",
		OutputPath:      "/data/people.csv.pip",
		Header:          []string{"name", "age"},
		RowCount:        2,
		PaddedRowCount:  1,
		Encoding:        "utf-8",
		RaggedMode:      "pad",
		Status:          converter.StatusSuccess,
		DurationSeconds: 0.25,
		Timestamp:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		SchemaVersion:   converter.ReportSchemaVersion,
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/data/people.csv.pip", decoded["outputPath"])
	assert.Equal(t, float64(2), decoded["rowCount"])
	assert.Equal(t, float64(1), decoded["paddedRowCount"])
	assert.Equal(t, "pad", decoded["raggedRows"])
	assert.Equal(t, "success", decoded["status"])
	assert.Equal(t, "2024-01-01T10:00:00Z", decoded["timestamp"])
	assert.Equal(t, []interface{}{"name", "age"}, decoded["header"])
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")), "Report should end with a newline")
}
