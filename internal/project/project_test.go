package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(root, ManifestName) {
		t.Fatalf("path = %q", path)
	}
	dir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || dir != root {
		t.Fatalf("FindProjectRoot = %q, %v, %v", dir, ok, err)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, "[package]\nname = \"demo\"\n")

	cfg, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if cfg.Package.Name != "demo" {
		t.Errorf("name = %q", cfg.Package.Name)
	}
	if cfg.Sources.Root != DefaultSourceRoot {
		t.Errorf("root = %q", cfg.Sources.Root)
	}
	if cfg.Diagnostics.Max != DefaultMaxDiagnostics {
		t.Errorf("max = %d", cfg.Diagnostics.Max)
	}
	if !cfg.Cache.Enabled {
		t.Errorf("cache should default to enabled")
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[package\n", "failed to parse TOML"},
		{"no package", "[sources]\nroot = \"src\"\n", "missing [package]"},
		{"no name", "[package]\n", "missing [package].name"},
		{"blank name", "[package]\nname = \"  \"\n", "missing [package].name"},
		{"abs root", "[package]\nname = \"x\"\n[sources]\nroot = \"/abs\"\n", "must be relative"},
		{"negative max", "[package]\nname = \"x\"\n[diagnostics]\nmax = -1\n", "non-negative"},
		{"unknown key", "[package]\nname = \"x\"\nversion = \"1\"\n", "unknown key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			_, err := LoadManifest(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestInitManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := InitManifest(dir, "calc")
	if err != nil {
		t.Fatalf("InitManifest: %v", err)
	}
	proj, ok, err := LoadProject(dir)
	if err != nil || !ok {
		t.Fatalf("LoadProject: ok=%v err=%v", ok, err)
	}
	if proj.Path != path || proj.Manifest.Package.Name != "calc" {
		t.Fatalf("unexpected project %+v", proj)
	}
	if proj.SourceDir() != filepath.Join(dir, ".") {
		t.Fatalf("SourceDir = %q", proj.SourceDir())
	}

	if _, err := InitManifest(dir, "calc"); !errors.Is(err, ErrManifestExists) {
		t.Fatalf("second InitManifest err = %v", err)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, ok, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a fern.toml may exist above the temp dir in unusual setups
	_ = ok
}

func TestDigest(t *testing.T) {
	a := DigestOf([]byte("ab"), []byte("c"))
	b := DigestOf([]byte("abc"))
	if a != b {
		t.Fatalf("DigestOf should hash the concatenation")
	}
	if a.IsZero() || len(a.String()) != 64 {
		t.Fatalf("bad digest %s", a)
	}
	if Combine(a) == Combine(a, b) {
		t.Fatalf("Combine must depend on deps")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatalf("Combine must be deterministic")
	}
}
