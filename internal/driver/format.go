package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"fern/internal/format"
	"fern/internal/source"
)

// FormatOptions configures FormatPaths.
type FormatOptions struct {
	Check   bool
	Stdout  bool
	Options format.Options
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats the given files and directories. With Check nothing is
// written and Changed tells whether the file would change. With Stdout the
// formatted bytes come back in the result and files stay untouched.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := collectSourceFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := FormatResult{Path: path}
		formatted, changed, err := formatSingleFile(path, opts.Options)
		switch {
		case err != nil:
			res.Err = err
		case opts.Check:
			res.Changed = changed
		case opts.Stdout:
			res.Formatted = formatted
			res.Changed = changed
		case changed:
			mode := os.FileMode(0o644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
				res.Err = err
			} else {
				res.Changed = true
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// FormatSource formats content without touching the filesystem.
func FormatSource(name string, content []byte, opt format.Options) ([]byte, error) {
	fs := source.NewFileSet()
	return format.FormatFile(fs.Get(fs.AddVirtual(name, content)), opt)
}

func formatSingleFile(path string, opt format.Options) (formatted []byte, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	fs := source.NewFileSet()
	sf := fs.Get(fs.Add(path, data, 0))
	formatted, err = format.FormatFile(sf, opt)
	if err != nil {
		return nil, false, err
	}
	return formatted, format.Changed(sf.Content, formatted), nil
}

func collectSourceFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("format: %w", err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		sub, err := ListSourceFiles(p)
		if err != nil {
			return nil, err
		}
		for _, f := range sub {
			add(f)
		}
	}
	sort.Strings(files)
	return files, nil
}
