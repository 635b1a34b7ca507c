package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/younwookim/mglib/internal/domain/graphics"
	"github.com/younwookim/mglib/internal/infrastructure/config"
)

// TextureLoader resolves a texture path relative to the content root
type TextureLoader interface {
	LoadTexture(path string) (graphics.Texture, error)
}

// LoadAtlas converts an AtlasConfig into a TextureAtlas.
// Every region is registered before any animation is built, so frames may
// reference regions declared anywhere in the description. Any failure aborts
// the load and no atlas is returned.
func LoadAtlas(cfg *config.AtlasConfig, textures TextureLoader) (*graphics.TextureAtlas, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil atlas description: %w", graphics.ErrMalformedAsset)
	}

	texturePath := strings.TrimSpace(cfg.Texture)
	if texturePath == "" {
		return nil, fmt.Errorf("atlas description has no texture: %w", graphics.ErrMalformedAsset)
	}

	tex, err := textures.LoadTexture(texturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas texture %s: %w", texturePath, err)
	}

	atlas := graphics.NewTextureAtlas(tex)

	for _, r := range cfg.Regions {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		if _, err := atlas.AddRegion(r.Name, r.X, r.Y, r.Width, r.Height); err != nil {
			return nil, fmt.Errorf("%w: %w", graphics.ErrMalformedAsset, err)
		}
	}

	for _, a := range cfg.Animations {
		if strings.TrimSpace(a.Name) == "" {
			continue
		}

		frames := make([]*graphics.TextureRegion, 0, len(a.Frames))
		for _, f := range a.Frames {
			region, err := atlas.Region(f.Region)
			if err != nil {
				return nil, fmt.Errorf("%w: animation %q: %w", graphics.ErrMalformedAsset, a.Name, err)
			}
			frames = append(frames, region)
		}

		anim, err := graphics.NewAnimation(frames, time.Duration(a.DelayMs)*time.Millisecond)
		if err != nil {
			return nil, fmt.Errorf("%w: animation %q: %w", graphics.ErrMalformedAsset, a.Name, err)
		}
		if err := atlas.AddAnimation(a.Name, anim); err != nil {
			return nil, fmt.Errorf("%w: %w", graphics.ErrMalformedAsset, err)
		}
	}

	return atlas, nil
}
