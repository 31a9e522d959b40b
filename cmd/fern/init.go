package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fern/internal/driver"
	"fern/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new Fern project",
	Long: `Initialize a new Fern project by creating a project manifest (fern.toml)
and an example source file (main.fern). If [path|name] is omitted, initializes
the current directory. A non-existing name creates the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const exampleSource = `type Id = λa : *. a

def id : forall a : *. a -> a = λx : a. x
`

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, statErr := os.Stat(target); statErr != nil {
		if !errors.Is(statErr, os.ErrNotExist) {
			return statErr
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := filepath.Base(target)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "fern-project"
	}

	manifestPath, err := project.InitManifest(target, name)
	if err != nil {
		if errors.Is(err, project.ErrManifestExists) {
			return fmt.Errorf("project already initialized: %w", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s\n", manifestPath)

	mainPath := filepath.Join(target, "main"+driver.SourceExt)
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(exampleSource), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", mainPath, err)
		}
		fmt.Fprintf(out, "created %s\n", mainPath)
	}
	return nil
}
