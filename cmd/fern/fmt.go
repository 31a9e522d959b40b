package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fern/internal/driver"
	"fern/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path|-> [path...]",
	Short: "Format Fern source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "list files that are not formatted and exit 1")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code instead of rewriting files")
	fmtCmd.Flags().Bool("ascii", false, `write \ instead of λ`)
	fmtCmd.Flags().Int("width", format.DefaultLineWidth, "line width before a definition body is wrapped (0=never)")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	ascii, err := cmd.Flags().GetBool("ascii")
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch outputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	if toStdout && check {
		return errors.New("fmt: --stdout cannot be used with --check")
	}
	if toStdout && outputFormat != "text" {
		return errors.New("fmt: --stdout is only supported with text output")
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	opt := format.Options{ASCII: ascii, LineWidth: width, BlankLines: 1}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// stdin всегда печатается в stdout
	if len(args) == 1 && args[0] == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		formatted, fmtErr := driver.FormatSource("<stdin>", content, opt)
		if fmtErr != nil {
			fmt.Fprintf(errOut, "fmt: <stdin>: %v\n", fmtErr)
			return errHasDiagnostics
		}
		if check {
			if format.Changed(content, formatted) {
				if !g.quiet {
					fmt.Fprintln(out, "<stdin>")
				}
				return errHasDiagnostics
			}
			return nil
		}
		_, err = out.Write(formatted)
		return err
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:   check,
		Stdout:  toStdout,
		Options: opt,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
		}
		if res.Changed {
			hasChanges = true
		}
	}

	if outputFormat == "json" {
		if err := renderFmtJSON(out, results, check); err != nil {
			return err
		}
	} else {
		renderFmtText(out, errOut, results, check, toStdout, g.quiet)
	}

	if hasErrors || (check && hasChanges) {
		return errHasDiagnostics
	}
	return nil
}

func renderFmtText(out, errOut io.Writer, results []driver.FormatResult, check, toStdout, quiet bool) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		switch {
		case toStdout:
			_, _ = out.Write(res.Formatted)
		case !res.Changed || quiet:
		case check:
			fmt.Fprintln(out, res.Path)
		default:
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path    string `json:"path"`
		Changed bool   `json:"changed"`
		Error   string `json:"error,omitempty"`
		Check   bool   `json:"check"`
	}
	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Check: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
