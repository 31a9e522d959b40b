package parser

import (
	"path/filepath"
	"testing"

	"fern/internal/lexer"
	"fern/internal/source"
	"fern/internal/testkit"
)

func TestParseTestdataSpans(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "testdata", "ok", "*.fern"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata files found")
	}
	fs := source.NewFileSet()
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			id, err := fs.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			sf := fs.Get(id)
			toks, err := lexer.LexFile(sf)
			if err != nil {
				t.Fatal(err)
			}
			prog, err := Parse(toks)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(prog.Defs) == 0 {
				t.Fatal("expected definitions")
			}
			if err := testkit.CheckProgram(prog, sf); err != nil {
				t.Fatal(err)
			}
		})
	}
}
