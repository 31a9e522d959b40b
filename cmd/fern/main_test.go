package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default; cobra keeps values between
// Execute calls in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--color", "off"}, args...))
	err = rootCmd.Execute()
	traceCleanup(err)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestParseTermFromStdin(t *testing.T) {
	out, _, err := runCLI(t, "f x y", "parse", "--term", "-")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if out != "f x y\n" {
		t.Fatalf("got %q", out)
	}
}

func TestParseErrorRendering(t *testing.T) {
	_, stderr, err := runCLI(t, "def x : A = (f", "parse", "-")
	if !errors.Is(err, errHasDiagnostics) {
		t.Fatalf("expected diagnostics exit, got %v", err)
	}
	want := "Error from line 1, column 12 to line 1, column 14: expected ) here but got EOF\n"
	if stderr != want {
		t.Fatalf("stderr = %q, want %q", stderr, want)
	}
}

func TestParseJSONProgram(t *testing.T) {
	out, _, err := runCLI(t, "def id : A -> A = λx : A. x", "parse", "--format", "json", "-")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Fatalf("invalid json: %s", out)
	}
	if !strings.Contains(out, `"TermDef"`) {
		t.Fatalf("missing definition node: %s", out)
	}
}

func TestParseModesExclusive(t *testing.T) {
	if _, _, err := runCLI(t, "A", "parse", "--type", "--kind", "-"); err == nil {
		t.Fatalf("expected error for conflicting mode flags")
	}
}

func TestTokenizeJSON(t *testing.T) {
	out, _, err := runCLI(t, "λx. x", "tokenize", "--format", "json", "-")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	var toks []map[string]any
	if err := json.Unmarshal([]byte(out), &toks); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out)
	}
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(toks))
	}
}

func TestDiagDirectoryShort(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.fern"), "def a : A = x\n")
	writeFile(t, filepath.Join(dir, "b.fern"), "def b : A =\n")

	out, stderr, err := runCLI(t, "", "diag", "--no-cache", "--ui", "off", "--format", "short", "--path-mode", "basename", dir)
	if !errors.Is(err, errHasDiagnostics) {
		t.Fatalf("expected diagnostics exit, got %v", err)
	}
	if !strings.Contains(out, "error SYN2001") || !strings.Contains(out, "b.fern") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(stderr, "checked 2 files: 1 diagnostics") {
		t.Fatalf("unexpected summary %q", stderr)
	}
}

func TestDiagCleanFileQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.fern")
	writeFile(t, path, "type T : * -> * = λa : *. a\n")
	out, stderr, err := runCLI(t, "", "--quiet", "diag", "--format", "pretty", path)
	if err != nil {
		t.Fatalf("diag failed: %v", err)
	}
	if out != "" || stderr != "" {
		t.Fatalf("expected silence, got stdout=%q stderr=%q", out, stderr)
	}
}

func TestInitThenDiag(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	out, _, err := runCLI(t, "", "init", dir)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "fern.toml") || !strings.Contains(out, "main.fern") {
		t.Fatalf("unexpected init output %q", out)
	}
	if _, _, err := runCLI(t, "", "init", dir); err == nil {
		t.Fatalf("second init must fail")
	}

	// без аргумента diag берёт корень из fern.toml
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	_, stderr, err := runCLI(t, "", "diag", "--ui", "off", "--format", "short")
	if err != nil {
		t.Fatalf("diag on fresh project failed: %v\n%s", err, stderr)
	}
	if !strings.Contains(stderr, "checked 1 files: 0 diagnostics") {
		t.Fatalf("unexpected summary %q", stderr)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := runCLI(t, "", "version", "--format", "json", "--full")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if payload.Tool != "fern" || payload.Version == "" || payload.GitCommit == "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, _, err := runCLI(t, "x", "tokenize", "--format", "xml", "-"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestFmtStdin(t *testing.T) {
	out, _, err := runCLI(t, "def   id:A -> A =λx . x", "fmt", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "def id : A -> A = λx. x\n"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFmtCheckAndWrite(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.fern")
	bad := filepath.Join(dir, "bad.fern")
	writeFile(t, good, "def a = x\n")
	writeFile(t, bad, "def  b =  ((y))")

	out, _, err := runCLI(t, "", "fmt", "--check", dir)
	if !errors.Is(err, errHasDiagnostics) {
		t.Fatalf("expected errHasDiagnostics, got %v", err)
	}
	if strings.Contains(out, "good.fern") || !strings.Contains(out, "bad.fern") {
		t.Fatalf("unexpected check output: %q", out)
	}

	out, _, err = runCLI(t, "", "fmt", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "reformatted "+bad) {
		t.Fatalf("unexpected output: %q", out)
	}
	data, err := os.ReadFile(bad)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "def b = y\n" {
		t.Fatalf("file not rewritten: %q", data)
	}

	if _, _, err := runCLI(t, "", "fmt", "--check", dir); err != nil {
		t.Fatalf("formatted tree must pass --check: %v", err)
	}
}

func TestFmtParseErrorLeavesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.fern")
	writeFile(t, path, "def x = (f")

	_, errOut, err := runCLI(t, "", "fmt", path)
	if !errors.Is(err, errHasDiagnostics) {
		t.Fatalf("expected errHasDiagnostics, got %v", err)
	}
	if !strings.Contains(errOut, "broken.fern") {
		t.Fatalf("stderr lacks path: %q", errOut)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "def x = (f" {
		t.Fatalf("broken file was modified: %q", data)
	}
}

func TestFmtRejectsStdoutWithCheck(t *testing.T) {
	if _, _, err := runCLI(t, "", "fmt", "--check", "--stdout", "x.fern"); err == nil {
		t.Fatal("expected error")
	}
}

func TestTraceRingDumpsOnFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.fern"), "def a = x\n")
	writeFile(t, filepath.Join(dir, "b.fern"), "def b : A =\n")

	_, stderr, err := runCLI(t, "", "--quiet", "--trace=-", "--trace-level", "file", "--trace-mode", "ring",
		"diag", "--no-cache", "--ui", "off", "--format", "short", dir)
	if !errors.Is(err, errHasDiagnostics) {
		t.Fatalf("expected diagnostics exit, got %v", err)
	}
	for _, want := range []string{"→ fern diag", "→ parse-dir", "b.fern (error)", "← fern diag (failed: exit status 1)"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("ring dump lacks %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "→ lex") {
		t.Fatalf("phase events recorded at file level:\n%s", stderr)
	}
}

func TestTraceRingSilentOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.fern")
	writeFile(t, path, "def a = x\n")
	_, stderr, err := runCLI(t, "", "--trace=-", "--trace-mode", "ring", "parse", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if stderr != "" {
		t.Fatalf("ring mode wrote on success: %q", stderr)
	}
}

func TestTraceStreamPhases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.fern")
	writeFile(t, path, "def a = x\n")
	_, stderr, err := runCLI(t, "", "--trace=-", "parse", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, want := range []string{"→ fern parse", "← lex {tokens=5}", "← parse {defs=1}", "← fern parse (ok)"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("trace lacks %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "• tokens") {
		t.Fatalf("count events need --trace-level debug:\n%s", stderr)
	}
}

func TestTraceRejectsUnknownMode(t *testing.T) {
	if _, _, err := runCLI(t, "", "--trace=-", "--trace-mode", "both", "version"); err == nil {
		t.Fatal("expected error for unknown trace mode")
	}
}
