package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fern/internal/diag"
	"fern/internal/diagfmt"
	"fern/internal/driver"
	"fern/internal/project"
	"fern/internal/source"
	"fern/internal/ui"
)

const cacheApp = "fern"

var diagCmd = &cobra.Command{
	Use:   "diag [flags] [file.fern|directory]",
	Short: "Report syntax diagnostics for Fern sources",
	Long: `Diag parses a file or every *.fern file under a directory and reports diagnostics.
Without an argument the source root of the enclosing fern.toml project is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("no-cache", false, "disable the persistent diagnostics cache")
	diagCmd.Flags().String("ui", "auto", "interactive progress view (auto|on|off)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
}

// diagTarget is what diag runs on after flags and fern.toml are resolved.
type diagTarget struct {
	path           string
	maxDiagnostics int
	cache          bool
}

// resolveDiagTarget merges the CLI argument and fern.toml. Explicit flags
// win over manifest values.
func resolveDiagTarget(cmd *cobra.Command, args []string, g globalFlags) (diagTarget, error) {
	t := diagTarget{maxDiagnostics: g.maxDiagnostics, cache: true}
	start := "."
	if len(args) == 1 {
		t.path = args[0]
		start = args[0]
		if st, err := os.Stat(start); err == nil && !st.IsDir() {
			start = filepath.Dir(start)
		}
	}

	proj, ok, err := project.LoadProject(start)
	if err != nil {
		return t, err
	}
	if ok {
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && proj.Manifest.Diagnostics.Max > 0 {
			t.maxDiagnostics = proj.Manifest.Diagnostics.Max
		}
		t.cache = proj.Manifest.Cache.Enabled
		if t.path == "" {
			t.path = proj.SourceDir()
		}
	}
	if t.path == "" {
		return t, errors.New("no fern.toml found; pass a file or directory, e.g.:\n  fern diag path/to/src")
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return t, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if noCache {
		t.cache = false
	}
	return t, nil
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiMode, err := ui.ParseMode(uiValue)
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	pathModeValue, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	target, err := resolveDiagTarget(cmd, args, g)
	if err != nil {
		return err
	}
	st, err := os.Stat(target.path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var (
		fileSet *source.FileSet
		bag     *diag.Bag
		files   int
	)
	if st.IsDir() {
		var cache *driver.DiskCache
		if target.cache {
			cache, err = driver.OpenDiskCache(cacheApp)
			if err != nil && !g.quiet {
				// без кэша работаем дальше
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache unavailable: %v\n", err)
			}
		}
		opts := driver.DirOptions{MaxDiagnostics: target.maxDiagnostics, Jobs: jobs, Cache: cache}
		fileSet, bag, files, err = diagnoseDir(cmd, target.path, opts, uiMode.Enabled(isTerminal(os.Stdout)) && format == "pretty")
		if err != nil {
			return err
		}
	} else {
		res, parseErr := driver.Parse(cmd.Context(), target.path, driver.ParseOptions{MaxDiagnostics: target.maxDiagnostics})
		if parseErr != nil {
			return parseErr
		}
		fileSet, bag, files = res.FileSet, res.Bag, 1
	}
	bag.Sort()

	out := cmd.OutOrStdout()
	pathMode := diagfmt.ParsePathMode(pathModeValue)
	switch format {
	case "json":
		err = diagfmt.JSON(out, bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              target.maxDiagnostics,
			IncludeNotes:     withNotes,
		})
	case "short":
		_, err = io.WriteString(out, diag.FormatShortDiagnostics(bag.Items(), fileSet, withNotes))
	default:
		diagfmt.Pretty(out, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColorFor(out),
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
	}
	if err != nil {
		return err
	}

	if !g.quiet && format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d files: %d diagnostics\n", files, bag.Len())
	}
	if bag.HasErrors() {
		return errHasDiagnostics
	}
	return nil
}

func diagnoseDir(cmd *cobra.Command, dir string, opts driver.DirOptions, useTUI bool) (*source.FileSet, *diag.Bag, int, error) {
	var (
		fileSet *source.FileSet
		results []driver.FileResult
		err     error
	)
	if useTUI {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return nil, nil, 0, listErr
		}
		outcome := ui.RunParseDir(cmd.Context(), cmd.OutOrStdout(), "fern diag", dir, files, opts)
		fileSet, results, err = outcome.FileSet, outcome.Results, outcome.Err
	} else {
		fileSet, results, err = driver.ParseDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return nil, nil, 0, err
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	for _, r := range results {
		if r.Bag != nil {
			bag.Merge(r.Bag)
		}
	}
	return fileSet, bag, len(results), nil
}
