// Package content loads textures and raw content files relative to a
// content root and owns the loaded textures until they are unloaded.
package content

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/younwookim/mglib/internal/domain/graphics"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for load and unload events.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// Manager caches textures by content-relative path. It is not safe for
// concurrent use.
type Manager struct {
	fsys     fs.FS
	root     string
	logger   *zap.Logger
	newImage func(image.Image) graphics.Texture
	textures map[string]graphics.Texture

	// staged holds textures loaded between Stage and Commit or Discard.
	staged map[string]graphics.Texture
}

// NewManager creates a manager reading from the directory root.
func NewManager(root string, opts ...Option) *Manager {
	return NewFSManager(os.DirFS(root), root, opts...)
}

// NewFSManager creates a manager reading from fsys. root is informational
// and is used by DiskPath.
func NewFSManager(fsys fs.FS, root string, opts ...Option) *Manager {
	m := &Manager{
		fsys:     fsys,
		root:     root,
		logger:   zap.NewNop(),
		newImage: newEbitenImage,
		textures: make(map[string]graphics.Texture),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func newEbitenImage(img image.Image) graphics.Texture {
	return ebiten.NewImageFromImage(img)
}

// Root returns the content root the manager was created with.
func (m *Manager) Root() string {
	return m.root
}

// DiskPath returns where name lives on disk for managers created with
// NewManager.
func (m *Manager) DiskPath(name string) string {
	return filepath.Join(m.root, filepath.FromSlash(cleanPath(name)))
}

// ReadFile returns the raw bytes of a content file.
func (m *Manager) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, cleanPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// LoadTexture decodes the image at name and returns it as a texture.
// Repeated loads of the same path return the cached texture. While staging,
// textures are decoded again into the staging cache.
func (m *Manager) LoadTexture(name string) (graphics.Texture, error) {
	key := cleanPath(name)
	cache := m.textures
	if m.staged != nil {
		cache = m.staged
	}
	if tex, ok := cache[key]; ok {
		return tex, nil
	}

	data, err := m.ReadFile(key)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w: %w", name, err, graphics.ErrMalformedAsset)
	}

	tex := m.newImage(img)
	cache[key] = tex

	m.logger.Debug("texture loaded",
		zap.String("path", key),
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return tex, nil
}

// Loaded returns the paths of the cached textures in sorted order.
func (m *Manager) Loaded() []string {
	names := make([]string, 0, len(m.textures))
	for name := range m.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnloadTexture releases a single texture. It reports whether the texture
// was loaded.
func (m *Manager) UnloadTexture(name string) bool {
	key := cleanPath(name)
	tex, ok := m.textures[key]
	if !ok {
		return false
	}
	release(tex)
	delete(m.textures, key)
	m.logger.Debug("texture unloaded", zap.String("path", key))
	return true
}

// Stage starts a new texture generation. Loaded textures stay valid until
// Commit; Discard drops the new generation instead.
func (m *Manager) Stage() {
	if m.staged != nil {
		releaseAll(m.staged)
	}
	m.staged = make(map[string]graphics.Texture)
}

// Commit releases the previous generation and keeps the staged textures.
// It does nothing when no generation is staged.
func (m *Manager) Commit() {
	if m.staged == nil {
		return
	}
	releaseAll(m.textures)
	m.textures = m.staged
	m.staged = nil
	m.logger.Debug("content generation committed", zap.Int("textures", len(m.textures)))
}

// Discard releases the staged textures and keeps the previous generation.
func (m *Manager) Discard() {
	if m.staged == nil {
		return
	}
	releaseAll(m.staged)
	m.staged = nil
	m.logger.Debug("content generation discarded")
}

// Unload releases every texture the manager loaded, staged ones included.
// Textures handed out earlier must not be drawn afterwards.
func (m *Manager) Unload() {
	releaseAll(m.textures)
	if m.staged != nil {
		releaseAll(m.staged)
		m.staged = nil
	}
	m.logger.Debug("content unloaded")
}

func releaseAll(textures map[string]graphics.Texture) {
	for key, tex := range textures {
		release(tex)
		delete(textures, key)
	}
}

// release frees GPU memory now instead of waiting for the finalizer.
func release(tex graphics.Texture) {
	if d, ok := tex.(interface{ Deallocate() }); ok {
		d.Deallocate()
	}
}

func cleanPath(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	return strings.TrimPrefix(s, "/")
}
