package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fern/internal/diag"
	"fern/internal/diagfmt"
	"fern/internal/source"
)

type globalFlags struct {
	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	var g globalFlags
	var err error
	pf := cmd.Root().PersistentFlags()
	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return g, nil
}

// useColorFor resolves --color for a particular writer.
func useColorFor(w io.Writer) bool {
	switch colorMode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func prettyDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	useColor := useColorFor(w)
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   2,
		ShowNotes: true,
	})
}
