package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fern/internal/ast"
	"fern/internal/diagfmt"
	"fern/internal/driver"
	"fern/internal/observ"
	"fern/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.fern|directory|->",
	Short: "Parse Fern source and print the syntax tree",
	Long: `Parse reads a program (a sequence of def/type definitions) and prints its syntax tree.
With --type, --term or --kind the whole input is parsed as a single expression instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json)")
	parseCmd.Flags().Bool("type", false, "parse the input as a single type")
	parseCmd.Flags().Bool("term", false, "parse the input as a single term")
	parseCmd.Flags().Bool("kind", false, "parse the input as a single kind")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory parsing (0=auto)")
	parseCmd.MarkFlagsMutuallyExclusive("type", "term", "kind")
}

func parseModeFlag(cmd *cobra.Command) (driver.Mode, error) {
	for _, name := range []string{"type", "term", "kind"} {
		set, err := cmd.Flags().GetBool(name)
		if err != nil {
			return driver.ModeProgram, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		if set {
			return driver.ParseMode(name)
		}
	}
	return driver.ModeProgram, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	mode, err := parseModeFlag(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	defer func() {
		if g.timings {
			fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
		}
	}()

	opts := driver.ParseOptions{MaxDiagnostics: g.maxDiagnostics, Mode: mode, Timer: timer}

	var res *driver.ParseResult
	switch {
	case target == "-":
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		res = driver.ParseSource(cmd.Context(), "<stdin>", content, opts)
	default:
		st, statErr := os.Stat(target)
		if statErr != nil {
			return fmt.Errorf("failed to stat path: %w", statErr)
		}
		if st.IsDir() {
			if mode != driver.ModeProgram {
				return fmt.Errorf("--type, --term and --kind require a single file")
			}
			return parseDirectory(cmd, target, format, jobs, g, timer)
		}
		res, err = driver.Parse(cmd.Context(), target, opts)
		if err != nil {
			return err
		}
	}

	if res.Err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Err.Error())
		return errHasDiagnostics
	}
	if res.Bag.HasErrors() {
		prettyDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet)
		return errHasDiagnostics
	}
	out := cmd.OutOrStdout()
	if res.Program != nil {
		return printProgram(out, format, res.Program, res.File)
	}
	return printNode(out, format, res.Node)
}

func parseDirectory(cmd *cobra.Command, dir, format string, jobs int, g globalFlags, timer *observ.Timer) error {
	phase := timer.Begin("parse-dir")
	fileSet, results, err := driver.ParseDir(cmd.Context(), dir, driver.DirOptions{
		MaxDiagnostics: g.maxDiagnostics,
		Jobs:           jobs,
	})
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, r := range results {
		if r.Program == nil || r.Bag.HasErrors() {
			failed = true
			prettyDiagnostics(cmd.ErrOrStderr(), r.Bag, fileSet)
			continue
		}
		if format != "json" {
			fmt.Fprintf(out, "== %s ==\n", displayPath(dir, r.Path))
		}
		if err := printProgram(out, format, r.Program, fileSet.Get(r.FileID)); err != nil {
			return err
		}
	}
	if !g.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "parsed %d files\n", len(results))
	}
	if failed {
		return errHasDiagnostics
	}
	return nil
}

func printProgram(w io.Writer, format string, prog *ast.Program, file *source.File) error {
	switch format {
	case "tree":
		return diagfmt.FormatASTTree(w, prog, file)
	case "json":
		return diagfmt.FormatASTJSON(w, prog)
	default:
		return diagfmt.FormatASTPretty(w, prog)
	}
}

func printNode(w io.Writer, format string, n ast.Node) error {
	switch format {
	case "tree":
		return diagfmt.FormatNodeTree(w, n)
	case "json":
		return diagfmt.FormatNodeJSON(w, n)
	default:
		_, err := fmt.Fprintln(w, diagfmt.SurfaceString(n))
		return err
	}
}

func displayPath(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}
