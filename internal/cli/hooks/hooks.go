package hooks

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackvity/csv2pipe/pkg/converter"
)

var (
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// CLIHooks implements the converter.Hooks interface, bridging library events
// to the CLI's standard output and logger.
//
// In text mode it prints exactly two status lines per run. In JSON mode it
// prints nothing until the run completes and then writes the report.
type CLIHooks struct {
	out    io.Writer
	logger *slog.Logger
	format converter.OutputFormat
	styled bool
}

// NewCLIHooks creates a new CLIHooks instance writing to out.
// styled enables terminal colors and should only be set when out is a TTY.
func NewCLIHooks(out io.Writer, logger *slog.Logger, format converter.OutputFormat, styled bool) converter.Hooks {
	return &CLIHooks{
		out:    out,
		logger: logger,
		format: format,
		styled: styled,
	}
}

// OnConversionStart prints the opening status line.
func (h *CLIHooks) OnConversionStart(inputPath, outputPath string) error {
	h.logger.Debug("Conversion starting", slog.String("input", inputPath), slog.String("output", outputPath))
	if h.format == converter.OutputFormatJSON {
		return nil
	}
	return h.println(startStyle, converter.StartMessage)
}

// OnConversionComplete prints the closing status line, or the JSON report.
func (h *CLIHooks) OnConversionComplete(report converter.Report) error {
	h.logger.Debug("Conversion complete",
		slog.String("output", report.OutputPath),
		slog.Int("rows", report.RowCount),
		slog.Int("padded", report.PaddedRowCount),
	)
	if h.format == converter.OutputFormatJSON {
		return report.WriteJSON(h.out)
	}
	return h.println(completeStyle, converter.CompleteMessage)
}

func (h *CLIHooks) println(style lipgloss.Style, msg string) error {
	if h.styled {
		msg = style.Render(msg)
	}
	_, err := fmt.Fprintln(h.out, msg)
	return err
}
