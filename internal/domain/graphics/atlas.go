package graphics

import (
	"fmt"
	"sort"
)

// TextureAtlas indexes named regions and animations over one shared texture.
type TextureAtlas struct {
	texture    Texture
	regions    map[string]*TextureRegion
	animations map[string]*Animation
}

// NewTextureAtlas creates an empty atlas over tex.
func NewTextureAtlas(tex Texture) *TextureAtlas {
	return &TextureAtlas{
		texture:    tex,
		regions:    make(map[string]*TextureRegion),
		animations: make(map[string]*Animation),
	}
}

// Texture returns the texture every region of this atlas views.
func (a *TextureAtlas) Texture() Texture {
	return a.texture
}

// AddRegion registers a region of the atlas texture under name. Negative
// sizes are rejected.
func (a *TextureAtlas) AddRegion(name string, x, y, width, height int) (*TextureRegion, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("region %q has size %dx%d: %w", name, width, height, ErrInvalidConfiguration)
	}
	if _, ok := a.regions[name]; ok {
		return nil, fmt.Errorf("region %q: %w", name, ErrDuplicateKey)
	}
	r := NewTextureRegion(a.texture, x, y, width, height)
	a.regions[name] = r
	return r, nil
}

// Region looks up a region by name.
func (a *TextureAtlas) Region(name string) (*TextureRegion, error) {
	r, ok := a.regions[name]
	if !ok {
		return nil, fmt.Errorf("region %q: %w", name, ErrNotFound)
	}
	return r, nil
}

// RemoveRegion deletes a region and reports whether it existed.
// Animations already built from it keep their frames.
func (a *TextureAtlas) RemoveRegion(name string) bool {
	if _, ok := a.regions[name]; !ok {
		return false
	}
	delete(a.regions, name)
	return true
}

// AddAnimation registers anim under name.
func (a *TextureAtlas) AddAnimation(name string, anim *Animation) error {
	if anim == nil {
		return fmt.Errorf("animation %q is nil: %w", name, ErrInvalidConfiguration)
	}
	if _, ok := a.animations[name]; ok {
		return fmt.Errorf("animation %q: %w", name, ErrDuplicateKey)
	}
	a.animations[name] = anim
	return nil
}

// Animation looks up an animation by name.
func (a *TextureAtlas) Animation(name string) (*Animation, error) {
	anim, ok := a.animations[name]
	if !ok {
		return nil, fmt.Errorf("animation %q: %w", name, ErrNotFound)
	}
	return anim, nil
}

// RemoveAnimation deletes an animation and reports whether it existed.
func (a *TextureAtlas) RemoveAnimation(name string) bool {
	if _, ok := a.animations[name]; !ok {
		return false
	}
	delete(a.animations, name)
	return true
}

// RegionNames returns the registered region names in sorted order.
func (a *TextureAtlas) RegionNames() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AnimationNames returns the registered animation names in sorted order.
func (a *TextureAtlas) AnimationNames() []string {
	names := make([]string, 0, len(a.animations))
	for name := range a.animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateSprite creates a sprite showing the named region.
func (a *TextureAtlas) CreateSprite(regionName string) (*Sprite, error) {
	r, err := a.Region(regionName)
	if err != nil {
		return nil, err
	}
	return NewSprite(r), nil
}

// CreateAnimatedSprite creates a sprite playing the named animation.
func (a *TextureAtlas) CreateAnimatedSprite(animationName string) (*AnimatedSprite, error) {
	anim, err := a.Animation(animationName)
	if err != nil {
		return nil, err
	}
	return NewAnimatedSprite(anim)
}
