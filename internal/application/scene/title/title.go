// Package title provides the title screen shown before the game starts.
package title

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/younwookim/mglib/internal/application/engine"
	"github.com/younwookim/mglib/internal/application/scene"
	"github.com/younwookim/mglib/internal/domain/graphics"
)

// LogoRegion is the atlas region drawn as the game logo.
const LogoRegion = "logo"

const (
	logoScale     = 4
	pulseMin      = 1.0
	pulseMax      = 1.15
	pulseDuration = 0.8 // seconds per half cycle
)

// Title shows the pulsing logo until the player starts the game
type Title struct {
	engine *engine.Engine
	res    *scene.Resources
	start  func() scene.Scene

	logo    *graphics.Sprite
	pulse   *gween.Tween
	growing bool
	factor  float32
}

// New creates the title scene. start builds the scene entered on
// Enter, Space or a left click.
func New(e *engine.Engine, res *scene.Resources, start func() scene.Scene) *Title {
	return &Title{
		engine: e,
		res:    res,
		start:  start,
	}
}

// Initialize loads the logo (implements scene.Scene)
func (t *Title) Initialize() error {
	if err := t.load(); err != nil {
		return err
	}
	t.growing = true
	t.factor = pulseMin
	t.pulse = gween.New(pulseMin, pulseMax, pulseDuration, ease.InOutSine)
	t.applyScale()
	return nil
}

func (t *Title) load() error {
	atlas, err := t.res.LoadAtlas()
	if err != nil {
		return err
	}
	return t.bind(atlas)
}

func (t *Title) bind(atlas *graphics.TextureAtlas) error {
	logo, err := atlas.CreateSprite(LogoRegion)
	if err != nil {
		return err
	}
	logo.CenterOrigin()
	t.logo = logo
	t.applyScale()
	return nil
}

// Update advances the pulse and starts the game on request
// (implements scene.Scene)
func (t *Title) Update(dt time.Duration) error {
	if t.res.AtlasChanged() {
		t.reload()
	}

	value, finished := t.pulse.Update(float32(dt.Seconds()))
	t.factor = value
	if finished {
		t.growing = !t.growing
		if t.growing {
			t.pulse = gween.New(pulseMin, pulseMax, pulseDuration, ease.InOutSine)
		} else {
			t.pulse = gween.New(pulseMax, pulseMin, pulseDuration, ease.InOutSine)
		}
	}
	t.applyScale()

	kb := t.engine.Input().Keyboard
	mouse := t.engine.Input().Mouse
	if kb.WasKeyJustPressed(ebiten.KeyEnter) || kb.WasKeyJustPressed(ebiten.KeySpace) ||
		mouse.WasButtonJustPressed(ebiten.MouseButtonLeft) {
		if t.start != nil {
			t.engine.ChangeScene(t.start())
		}
	}
	return nil
}

func (t *Title) applyScale() {
	if t.logo == nil {
		return
	}
	s := float64(t.factor) * logoScale
	t.logo.Scale = graphics.Vec2{X: s, Y: s}
}

func (t *Title) reload() {
	if _, err := t.res.ReloadAtlas(t.bind); err != nil {
		t.engine.Logger().Warn("atlas reload failed", zap.Error(err))
		return
	}
	t.engine.Logger().Info("atlas reloaded", zap.String("atlas", t.res.Atlas))
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Cornflowerblue)

	batch := t.engine.Batch()
	batch.Begin(screen)
	t.drawLogo(batch)
	batch.End()

	w := t.engine.Config().Window
	ebitenutil.DebugPrintAt(screen, "Press Enter to start", w.ScreenWidth/2-60, w.ScreenHeight*3/4)
}

func (t *Title) drawLogo(r graphics.Renderer) {
	w := t.engine.Config().Window
	t.logo.Draw(r, graphics.Vec2{X: float64(w.ScreenWidth) / 2, Y: float64(w.ScreenHeight) / 3})
}

// Dispose releases the scene's textures (implements scene.Scene)
func (t *Title) Dispose() {
	t.res.Textures.Unload()
	t.logo = nil
}

// Scale returns the current pulse factor applied on top of the logo scale
func (t *Title) Scale() float64 {
	return float64(t.factor)
}

var _ scene.Scene = (*Title)(nil)
