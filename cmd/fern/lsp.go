package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fern/internal/lsp"
	"fern/internal/version"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the Fern language server over stdio",
	RunE:  runLSP,
}

func init() {
	lspCmd.Flags().CountP("verbose", "v", "log verbosity (repeat for more)")
	lspCmd.Flags().String("log-file", "", "write server logs to this file instead of stderr")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	verbosity, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return fmt.Errorf("failed to get log-file flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	opts := lsp.Options{
		Version:        version.Version,
		MaxDiagnostics: g.maxDiagnostics,
		Verbosity:      verbosity,
	}
	if logFile != "" {
		opts.LogFile = &logFile
	}
	return lsp.NewServer(opts).RunStdio()
}
