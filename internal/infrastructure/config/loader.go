package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Loader loads engine configuration and atlas descriptions using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// DiskPath returns where name lives on disk for loaders created with NewLoader
func (l *Loader) DiskPath(name string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(name))
}

// LoadEngine loads engine.json, keeping defaults for absent fields
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	data, err := fs.ReadFile(l.fsys, "engine.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read engine.json: %w", err)
	}

	cfg := DefaultEngineConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine.json: %w", err)
	}

	return &cfg, nil
}

// LoadAtlas loads an atlas description. The format is picked from the
// file extension (.xml, .json, .yaml or .yml).
func (l *Loader) LoadAtlas(name string) (*AtlasConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas %s: %w", name, err)
	}

	cfg, err := ParseAtlas(data, path.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", name, err)
	}

	return cfg, nil
}
