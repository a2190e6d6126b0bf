package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stackvity/csv2pipe/internal/cli"
	"github.com/stackvity/csv2pipe/internal/cli/config"
	"github.com/stackvity/csv2pipe/pkg/converter"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRootCmd builds the csv2pipe command. Each call returns an independent
// instance, so tests can execute it without sharing flag state.
func newRootCmd() *cobra.Command {
	var (
		cfgFile     string
		profileName string
	)

	cmd := &cobra.Command{
		Use:   "csv2pipe <input.csv>",
		Short: "Converts a comma-delimited CSV file to a pipe-delimited file.",
		Long: `csv2pipe reads a comma-delimited CSV file and writes the same header and
rows, in the same order, as a pipe-delimited file named <input.csv>.pip.
An existing output file is overwritten.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; failures are not usage errors.
			cmd.SilenceUsage = true

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			opts, logger, err := config.LoadAndValidate(args[0], cfgFile, profileName, version, cmd.Flags())
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			return cli.Run(ctx, opts, logger, stdout, isTerminal(stdout))
		},
	}
	cmd.SetVersionTemplate(`{{.Name}} version {{.Version}}` + "\n")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is search ., $HOME/.config/csv2pipe/, $HOME/.csv2pipe/)")
	cmd.PersistentFlags().StringVar(&profileName, "profile", "", "Name of configuration profile to use")
	cmd.PersistentFlags().BoolP("verbose", "v", converter.DefaultVerbose, "Enable verbose (debug) logging output on stderr")

	cmd.Flags().String("encoding", converter.DefaultEncoding, `Character encoding of the input file, e.g. "windows-1252" (default UTF-8)`)
	cmd.Flags().String("ragged-rows", string(converter.DefaultRaggedMode), `Handling of rows whose field count differs from the header ("pad", "strict", "passthrough")`)
	cmd.Flags().Bool("crlf", converter.DefaultUseCRLF, "Terminate output lines with CRLF instead of LF")
	cmd.Flags().String("output-format", string(converter.DefaultOutputFormat), `Status output on stdout ("text", "json")`)

	return cmd
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command and exits non-zero on failure.
// Cobra has already printed the error to stderr by then.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
