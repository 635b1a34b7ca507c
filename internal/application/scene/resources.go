package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/younwookim/mglib/internal/application/system"
	"github.com/younwookim/mglib/internal/domain/graphics"
	"github.com/younwookim/mglib/internal/infrastructure/config"
)

// TextureSource loads textures and releases all of them at once. Stage
// starts a texture generation that replaces the loaded one on Commit or is
// released on Discard. content.Manager implements it.
type TextureSource interface {
	system.TextureLoader
	Unload()
	Stage()
	Commit()
	Discard()
}

// ChangeSource reports content files changed since the last call.
// content.Watcher implements it.
type ChangeSource interface {
	Changed() []string
}

// Resources is the content shared by the demo scenes.
type Resources struct {
	Descriptions *config.Loader
	Textures     TextureSource
	Atlas        string // atlas description, relative to the content root

	// Changes is optional; when set, scenes reload the atlas after its
	// description or an image changes on disk.
	Changes ChangeSource
}

// LoadAtlas reads the atlas description and builds the atlas from it.
func (r *Resources) LoadAtlas() (*graphics.TextureAtlas, error) {
	cfg, err := r.Descriptions.LoadAtlas(r.Atlas)
	if err != nil {
		return nil, err
	}
	atlas, err := system.LoadAtlas(cfg, r.Textures)
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", r.Atlas, err)
	}
	return atlas, nil
}

// AtlasChanged drains the change source and reports whether any change
// affects the atlas.
func (r *Resources) AtlasChanged() bool {
	if r.Changes == nil {
		return false
	}
	description := filepath.Clean(r.Descriptions.DiskPath(r.Atlas))
	changed := false
	for _, name := range r.Changes.Changed() {
		name = filepath.Clean(name)
		if name == description || isImage(name) {
			changed = true
		}
	}
	return changed
}

// ReloadAtlas builds the atlas again from freshly decoded textures and hands
// it to bind. The previous textures are released only after both the atlas
// and bind succeed; on any error they stay loaded and the new ones are
// dropped. bind may be nil.
func (r *Resources) ReloadAtlas(bind func(*graphics.TextureAtlas) error) (*graphics.TextureAtlas, error) {
	cfg, err := r.Descriptions.LoadAtlas(r.Atlas)
	if err != nil {
		return nil, err
	}

	r.Textures.Stage()
	atlas, err := system.LoadAtlas(cfg, r.Textures)
	if err == nil && bind != nil {
		err = bind(atlas)
	}
	if err != nil {
		r.Textures.Discard()
		return nil, fmt.Errorf("atlas %s: %w", r.Atlas, err)
	}
	r.Textures.Commit()
	return atlas, nil
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp":
		return true
	}
	return false
}
