package converter

// Delimiters and output naming are fixed and not configurable.
const (
	// InputDelimiter separates fields in the source file.
	InputDelimiter = ','
	// OutputDelimiter separates fields in the converted file.
	OutputDelimiter = '|'
	// OutputSuffix is appended to the input path to name the converted file.
	OutputSuffix = ".pip"
)

// Constants defining default values for configuration options.
// These are used when setting up Viper defaults in the configuration loading process.
const (
	// DefaultRaggedMode pads short rows and rejects long ones.
	DefaultRaggedMode = RaggedPad
	// DefaultEncoding leaves the input bytes untouched (UTF-8).
	DefaultEncoding = ""
	// DefaultUseCRLF selects LF line endings for the output.
	DefaultUseCRLF = false
	// DefaultOutputFormat is the default format for the CLI status output.
	DefaultOutputFormat = OutputFormatText
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
)

// Status lines printed by the CLI in text mode.
const (
	StartMessage    = "Converting CSV to pipe-delimited file..."
	CompleteMessage = "Conversion complete."
)

// ReportSchemaVersion indicates the version of the JSON report structure.
const ReportSchemaVersion = "1.0"
