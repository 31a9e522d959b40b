package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"fern/internal/diag"
	"fern/internal/source"
)

func sp(l1, c1, l2, c2 uint32) source.Span {
	return source.SpanOf(source.Pos{Line: l1, Col: c1}, source.Pos{Line: l2, Col: c2})
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.Add("/home/user/project/src/test.fern", []byte("def x = (y\n"), 0)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynTokenMismatch, fileID, sp(1, 8, 1, 10), "expected ) here but got EOF"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.fern:1:8"},
		{"Relative path", PathModeRelative, "src/test.fern:1:8"},
		{"Basename only", PathModeBasename, "test.fern:1:8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR SYN2002: expected ) here but got EOF") {
				t.Errorf("missing header line:\n%s", output)
			}
		})
	}
}

func TestPrettySnippetAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.fern", []byte("def a = b\ndef c = (d e\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynTokenMismatch, id, sp(2, 8, 2, 12), "expected ) here but got EOF"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	want := "main.fern:2:8: ERROR SYN2002: expected ) here but got EOF\n" +
		" 1 | def a = b\n" +
		" 2 | def c = (d e\n" +
		"   |         ^~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	// 世界 занимает по две колонки на экране, но по одной позиции в Pos
	id := fs.AddVirtual("wide.fern", []byte("def 世界 = )"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, id, sp(1, 9, 1, 9), "unexpected token ) when parsing a term"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	caret := lines[len(lines)-1]
	if want := "   | " + strings.Repeat(" ", 11) + "^"; caret != want {
		t.Fatalf("caret line = %q, want %q", caret, want)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.fern", []byte("x"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedTopLevel, id, sp(1, 0, 1, 0), "expected a definition here but got x"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{Color: false})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output contains escape codes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escape codes: %q", colored.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.fern", []byte("def = x"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynExpectIdentifier, id, sp(1, 4, 1, 4), "expected an identifier here").
		WithNote(sp(1, 0, 1, 3), "definition starts here"))

	var with, without bytes.Buffer
	Pretty(&with, bag, fs, PrettyOpts{ShowNotes: true})
	Pretty(&without, bag, fs, PrettyOpts{})
	if !strings.Contains(with.String(), "note: n.fern:1:0: definition starts here") {
		t.Fatalf("note missing:\n%s", with.String())
	}
	if strings.Contains(without.String(), "note:") {
		t.Fatalf("note printed without ShowNotes:\n%s", without.String())
	}
}
