package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fern/internal/diagfmt"
	"fern/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.fern|->",
	Short: "Tokenize a Fern source file",
	Long:  `Tokenize breaks a Fern source file into its tokens and prints them with their positions`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if filePath == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result = driver.TokenizeSource("<stdin>", content, g.maxDiagnostics)
	} else {
		result, err = driver.Tokenize(filePath, g.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		prettyDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errHasDiagnostics
	}
	return nil
}
