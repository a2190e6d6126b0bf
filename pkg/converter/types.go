package converter

// Status defines the possible states of a conversion run.
type Status string

// Constants representing the defined run statuses.
const (
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// RaggedMode defines how data rows whose field count differs from the header are handled.
type RaggedMode string

// Constants representing the defined ragged-row policies.
const (
	// RaggedPad pads short rows with empty values and rejects rows longer than the header.
	RaggedPad RaggedMode = "pad"
	// RaggedStrict rejects any row whose field count differs from the header.
	RaggedStrict RaggedMode = "strict"
	// RaggedPassthrough writes rows positionally as they were read.
	RaggedPassthrough RaggedMode = "passthrough"
)

// OutputFormat defines how the CLI reports the outcome of a run on standard output.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)
