package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.fern")
	if err := os.WriteFile(path, []byte("def a = b\r\ndef c = d\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected CRLF flag")
	}
	if got := f.GetLine(2); got != "def c = d" {
		t.Fatalf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Fatalf("GetLine past end = %q", got)
	}
	if got := f.FormatPath("relative", dir); got != "main.fern" {
		t.Fatalf("relative path = %q", got)
	}
	if got, ok := fs.GetByPath(path); !ok || got.ID != id {
		t.Fatalf("GetByPath did not find the file")
	}
}

func TestFileSetVirtual(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.fern", []byte("x"))
	b := fs.AddVirtual("a.fern", []byte("y"))
	if a == b {
		t.Fatalf("every Add must create a new id")
	}
	if fs.Get(b).Flags&FileVirtual == 0 {
		t.Fatalf("expected virtual flag")
	}
	if fs.Get(a).Hash == fs.Get(b).Hash {
		t.Fatalf("different content must hash differently")
	}
	if fs.Len() != 2 {
		t.Fatalf("Len = %d", fs.Len())
	}
	if got := fs.Get(a).GetLine(1); got != "x" {
		t.Fatalf("GetLine(1) = %q", got)
	}
}
