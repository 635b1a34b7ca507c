package title

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mglib/internal/application/scene"
	"github.com/younwookim/mglib/internal/application/scene/scenetest"
	"github.com/younwookim/mglib/internal/domain/graphics"
	"github.com/younwookim/mglib/internal/infrastructure/config"
)

type drawCall struct {
	pos   graphics.Vec2
	src   image.Rectangle
	scale graphics.Vec2
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawRegion(tex graphics.Texture, pos graphics.Vec2, src image.Rectangle, tint color.Color,
	rotation float64, origin graphics.Vec2, scale graphics.Vec2, effects graphics.Effects, layerDepth float64) {
	r.calls = append(r.calls, drawCall{pos: pos, src: src, scale: scale})
}

type nextScene struct {
	initialized bool
}

func (s *nextScene) Initialize() error          { s.initialized = true; return nil }
func (s *nextScene) Update(time.Duration) error { return nil }
func (s *nextScene) Draw(*ebiten.Image)         {}
func (s *nextScene) Dispose()                   {}

func newTestTitle(t *testing.T, start func() scene.Scene) (*Title, *scenetest.Fixture) {
	t.Helper()
	f := scenetest.NewFixture(t, 320, 240)
	ts := New(f.Engine, f.Resources, start)
	require.NoError(t, ts.Initialize())
	return ts, f
}

func TestInitialize(t *testing.T) {
	ts, _ := newTestTitle(t, nil)

	require.NotNil(t, ts.logo)
	assert.Equal(t, graphics.Vec2{X: 40, Y: 16}, ts.logo.Origin)
	assert.Equal(t, graphics.Vec2{X: logoScale, Y: logoScale}, ts.logo.Scale)
	assert.InDelta(t, pulseMin, ts.Scale(), 1e-6)
}

func TestUpdate_PulseStaysInRange(t *testing.T) {
	ts, f := newTestTitle(t, nil)

	sawGrowth := false
	for i := 0; i < 240; i++ {
		f.Frame(t, ts, time.Second/60)
		s := ts.Scale()
		assert.GreaterOrEqual(t, s, pulseMin-1e-6)
		assert.LessOrEqual(t, s, pulseMax+1e-6)
		if s > pulseMin+0.05 {
			sawGrowth = true
		}
	}
	assert.True(t, sawGrowth)
	assert.InDelta(t, ts.Scale()*logoScale, ts.logo.Scale.X, 1e-6)
}

func TestUpdate_StartsGame(t *testing.T) {
	tests := []struct {
		name  string
		press func(p *scenetest.Poller)
	}{
		{"enter", func(p *scenetest.Poller) { p.Press(ebiten.KeyEnter) }},
		{"space", func(p *scenetest.Poller) { p.Press(ebiten.KeySpace) }},
		{"left click", func(p *scenetest.Poller) { p.Mouse.SetButton(ebiten.MouseButtonLeft, true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &nextScene{}
			ts, f := newTestTitle(t, func() scene.Scene { return next })

			f.Frame(t, ts, time.Second/60)
			assert.Nil(t, f.Engine.Active())

			tt.press(f.Poller)
			f.Frame(t, ts, time.Second/60)
			require.NoError(t, f.Engine.Update())

			assert.Same(t, next, f.Engine.Active())
			assert.True(t, next.initialized)
		})
	}
}

func TestDrawLogo(t *testing.T) {
	ts, _ := newTestTitle(t, nil)

	r := &recordingRenderer{}
	ts.drawLogo(r)

	require.Len(t, r.calls, 1)
	assert.Equal(t, graphics.Vec2{X: 160, Y: 80}, r.calls[0].pos)
	assert.Equal(t, image.Rect(0, 32, 80, 64), r.calls[0].src)
}

func TestUpdate_ReloadsChangedAtlas(t *testing.T) {
	ts, f := newTestTitle(t, nil)
	before := ts.logo

	f.TouchAtlas()
	f.Frame(t, ts, time.Second/60)

	assert.NotSame(t, before, ts.logo)
	assert.Equal(t, 1, f.Textures.Unloads)
}

func TestUpdate_KeepsLogoWhenReloadFails(t *testing.T) {
	ts, f := newTestTitle(t, nil)
	before := ts.logo

	description := strings.Replace(scenetest.AtlasYAML, "  - {name: logo, x: 0, y: 32, width: 80, height: 32}\n", "", 1)
	require.NotEqual(t, scenetest.AtlasYAML, description)
	f.Resources.Descriptions = config.NewFSLoader(fstest.MapFS{
		scenetest.AtlasPath: {Data: []byte(description)},
	}, "content")

	f.TouchAtlas()
	f.Frame(t, ts, time.Second/60)

	assert.Same(t, before, ts.logo)
	assert.Equal(t, 0, f.Textures.Unloads)
	assert.Equal(t, 1, f.Textures.Discards)
}

func TestDispose(t *testing.T) {
	ts, f := newTestTitle(t, nil)
	ts.Dispose()

	assert.Equal(t, 1, f.Textures.Unloads)
	assert.Nil(t, ts.logo)
}
