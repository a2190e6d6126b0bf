package converter

import "log/slog"

// Hooks defines callbacks for status updates during a conversion run.
// There are deliberately no per-row callbacks.
type Hooks interface {
	OnConversionStart(inputPath, outputPath string) error
	OnConversionComplete(report Report) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks interface.
type NoOpHooks struct{}

// OnConversionStart implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnConversionStart(inputPath, outputPath string) error { return nil }

// OnConversionComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnConversionComplete(report Report) error { return nil }

// Options holds all configuration for a Convert run.
type Options struct {
	// --- Core Paths ---
	InputPath string `mapstructure:"-"` // Required: path of the comma-delimited source file

	// --- Application Info ---
	AppVersion string `mapstructure:"-"` // Application version, echoed in logs
	// --- Behavior & Control ---
	ConfigFilePath string       `mapstructure:"-"`            // Path to the loaded config file (for reporting)
	ProfileName    string       `mapstructure:"-"`            // Name of the profile used (for reporting)
	Verbose        bool         `mapstructure:"verbose"`      // Enable debug logging
	OutputFormat   OutputFormat `mapstructure:"outputFormat"` // ("text", "json") for CLI status output

	// --- Parsing & Writing ---
	Encoding   string     `mapstructure:"encoding"`   // Input charset name; empty means UTF-8
	RaggedMode RaggedMode `mapstructure:"raggedRows"` // ("pad", "strict", "passthrough")
	UseCRLF    bool       `mapstructure:"crlf"`       // Terminate output lines with \r\n

	// --- Injected Dependencies ---
	EventHooks Hooks        `mapstructure:"-"` // Required: Callback interface
	Logger     slog.Handler `mapstructure:"-"` // Required: Logging backend
}
