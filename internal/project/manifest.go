package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultSourceRoot     = "."
	DefaultMaxDiagnostics = 100
)

// ErrManifestExists is returned by InitManifest when fern.toml is already present.
var ErrManifestExists = errors.New("fern.toml already exists")

// Manifest mirrors the fern.toml layout.
type Manifest struct {
	Package     PackageConfig     `toml:"package"`
	Sources     SourcesConfig     `toml:"sources"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type SourcesConfig struct {
	Root string `toml:"root"`
}

type DiagnosticsConfig struct {
	Max int `toml:"max"`
}

type CacheConfig struct {
	Enabled bool `toml:"enabled"`
}

// Project is a loaded manifest together with its location.
type Project struct {
	Path     string
	Root     string
	Manifest Manifest
}

// SourceDir resolves [sources].root against the project root.
func (p *Project) SourceDir() string {
	return filepath.Join(p.Root, filepath.FromSlash(p.Manifest.Sources.Root))
}

func defaultManifest(name string) Manifest {
	return Manifest{
		Package:     PackageConfig{Name: name},
		Sources:     SourcesConfig{Root: DefaultSourceRoot},
		Diagnostics: DiagnosticsConfig{Max: DefaultMaxDiagnostics},
		Cache:       CacheConfig{Enabled: true},
	}
}

// LoadManifest decodes and validates fern.toml at path.
func LoadManifest(path string) (Manifest, error) {
	cfg := defaultManifest("")
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if strings.TrimSpace(cfg.Sources.Root) == "" {
		cfg.Sources.Root = DefaultSourceRoot
	}
	if filepath.IsAbs(cfg.Sources.Root) {
		return Manifest{}, fmt.Errorf("%s: [sources].root must be relative", path)
	}
	if cfg.Diagnostics.Max < 0 {
		return Manifest{}, fmt.Errorf("%s: [diagnostics].max must be non-negative", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Manifest{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// LoadProject finds fern.toml above startDir and loads it.
// ok is false when there is no manifest.
func LoadProject(startDir string) (*Project, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Project{
		Path:     manifestPath,
		Root:     filepath.Dir(manifestPath),
		Manifest: cfg,
	}, true, nil
}

// InitManifest writes a default fern.toml into dir.
func InitManifest(dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %q: %w", dir, err)
		}
		name = filepath.Base(abs)
	}
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s: %w", path, ErrManifestExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(defaultManifest(name)); err != nil {
		return "", fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
