// Package scenetest provides fakes for testing scenes without a window.
package scenetest

import (
	"image"
	"testing"
	"testing/fstest"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mglib/internal/application/engine"
	"github.com/younwookim/mglib/internal/application/input"
	"github.com/younwookim/mglib/internal/application/scene"
	"github.com/younwookim/mglib/internal/domain/graphics"
	"github.com/younwookim/mglib/internal/infrastructure/config"
)

// AtlasPath is where NewResources stores the atlas description.
const AtlasPath = "images/atlas.yaml"

// AtlasYAML describes the regions and animations the demo scenes use.
const AtlasYAML = `texture: images/atlas.png
regions:
  - {name: slime-1, x: 0, y: 0, width: 16, height: 16}
  - {name: slime-2, x: 16, y: 0, width: 16, height: 16}
  - {name: bat-1, x: 32, y: 0, width: 16, height: 16}
  - {name: bat-2, x: 48, y: 0, width: 16, height: 16}
  - {name: floor, x: 0, y: 16, width: 16, height: 16}
  - {name: wall, x: 16, y: 16, width: 16, height: 16}
  - {name: logo, x: 0, y: 32, width: 80, height: 32}
animations:
  - name: slime-animation
    delay: 200
    frames: [{region: slime-1}, {region: slime-2}]
  - name: bat-animation
    delay: 200
    frames: [{region: bat-1}, {region: bat-2}]
`

// Texture is a sized texture that is never drawn.
type Texture struct {
	W, H int
}

// Bounds implements graphics.Texture.
func (t *Texture) Bounds() image.Rectangle { return image.Rect(0, 0, t.W, t.H) }

// Textures hands out a fresh Texture per load and counts unloads and
// texture generations.
type Textures struct {
	Loads    []string
	Unloads  int
	Commits  int
	Discards int
	Staging  bool
}

// LoadTexture implements scene.TextureSource.
func (t *Textures) LoadTexture(path string) (graphics.Texture, error) {
	t.Loads = append(t.Loads, path)
	return &Texture{W: 128, H: 64}, nil
}

// Unload implements scene.TextureSource.
func (t *Textures) Unload() {
	t.Unloads++
	t.Staging = false
}

// Stage implements scene.TextureSource.
func (t *Textures) Stage() { t.Staging = true }

// Commit implements scene.TextureSource. Committing releases the previous
// generation, so it also counts as an unload.
func (t *Textures) Commit() {
	if !t.Staging {
		return
	}
	t.Staging = false
	t.Commits++
	t.Unloads++
}

// Discard implements scene.TextureSource.
func (t *Textures) Discard() {
	if !t.Staging {
		return
	}
	t.Staging = false
	t.Discards++
}

// Changes returns queued paths once.
type Changes struct {
	Pending []string
}

// Changed implements scene.ChangeSource.
func (c *Changes) Changed() []string {
	out := c.Pending
	c.Pending = nil
	return out
}

// Poller serves the keyboard and mouse states set on it until changed.
type Poller struct {
	Keys  input.KeyboardState
	Mouse input.MouseState
}

// PollKeyboard implements input.Poller.
func (p *Poller) PollKeyboard() input.KeyboardState { return p.Keys }

// PollMouse implements input.Poller.
func (p *Poller) PollMouse() input.MouseState { return p.Mouse }

// SetMousePosition implements input.Poller.
func (p *Poller) SetMousePosition(x, y int) {
	p.Mouse.X, p.Mouse.Y = x, y
}

// Press holds keys until Release.
func (p *Poller) Press(keys ...ebiten.Key) {
	p.Keys = input.NewKeyboardState(keys...)
}

// Release lets go of every key.
func (p *Poller) Release() {
	p.Keys = input.KeyboardState{}
}

// Fixture bundles an engine and the fakes behind it.
type Fixture struct {
	Engine    *engine.Engine
	Poller    *Poller
	Textures  *Textures
	Changes   *Changes
	Resources *scene.Resources
}

// NewFixture creates an engine with a width x height screen over fake
// devices and content. The engine is closed when the test ends.
func NewFixture(t *testing.T, width, height int) *Fixture {
	t.Helper()

	cfg := config.DefaultEngineConfig()
	cfg.Window.ScreenWidth = width
	cfg.Window.ScreenHeight = height

	poller := &Poller{}
	e, err := engine.New(cfg, poller)
	require.NoError(t, err)
	t.Cleanup(e.Close)

	textures := &Textures{}
	changes := &Changes{}
	fsys := fstest.MapFS{AtlasPath: {Data: []byte(AtlasYAML)}}

	return &Fixture{
		Engine:   e,
		Poller:   poller,
		Textures: textures,
		Changes:  changes,
		Resources: &scene.Resources{
			Descriptions: config.NewFSLoader(fsys, "content"),
			Textures:     textures,
			Atlas:        AtlasPath,
			Changes:      changes,
		},
	}
}

// TouchAtlas queues a change of the atlas description.
func (f *Fixture) TouchAtlas() {
	f.Changes.Pending = append(f.Changes.Pending, f.Resources.Descriptions.DiskPath(AtlasPath))
}

// Frame polls input and runs one scene update, as the engine does for the
// active scene.
func (f *Fixture) Frame(t *testing.T, s scene.Scene, dt time.Duration) {
	t.Helper()
	f.Engine.Input().Update()
	require.NoError(t, s.Update(dt))
}
