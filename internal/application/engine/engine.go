// Package engine provides the frame loop core that owns the active Scene,
// the per-frame input snapshots and deferred scene transitions.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/mglib/internal/application/input"
	"github.com/younwookim/mglib/internal/application/scene"
	"github.com/younwookim/mglib/internal/application/state"
	"github.com/younwookim/mglib/internal/domain/graphics"
	"github.com/younwookim/mglib/internal/infrastructure/config"
)

// ErrSingleInstance is returned by New while another Engine is open.
var ErrSingleInstance = errors.New("only a single engine instance can be created")

// One frame loop and one device context exist per process.
var (
	instanceMu sync.Mutex
	instance   *Engine
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine implements ebiten.Game and manages Scene transitions.
// It is passed explicitly to the scenes that need input, the batch or
// scene changes.
type Engine struct {
	cfg    config.EngineConfig
	input  *input.Manager
	batch  *graphics.Batch
	logger *zap.Logger
	dt     time.Duration

	active scene.Scene
	next   scene.Scene
}

// New creates the engine. Only one engine may be open at a time; Close
// releases the slot.
func New(cfg config.EngineConfig, poller input.Poller, opts ...Option) (*Engine, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return nil, ErrSingleInstance
	}

	framerate := cfg.Window.Framerate
	if framerate <= 0 {
		framerate = config.DefaultEngineConfig().Window.Framerate
	}

	e := &Engine{
		cfg:    cfg,
		input:  input.NewManager(poller),
		batch:  graphics.NewBatch(),
		logger: zap.NewNop(),
		dt:     time.Second / time.Duration(framerate),
	}
	for _, opt := range opts {
		opt(e)
	}

	instance = e
	return e, nil
}

// Close disposes the active scene, drops any pending one and releases the
// single-instance slot. Calling Close more than once is harmless.
func (e *Engine) Close() {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if e.active != nil {
		e.active.Dispose()
		e.active = nil
	}
	e.next = nil

	if instance == e {
		instance = nil
	}
}

// ChangeScene requests a switch to next. The switch happens at the start of
// the following Update, so it is safe to call from inside the active scene.
// Requesting the scene that is already active does nothing; a later request
// replaces an earlier one that has not been applied yet.
func (e *Engine) ChangeScene(next scene.Scene) {
	if e.active != next {
		e.next = next
	}
}

// Update polls input, applies a pending scene change and updates the active
// scene. Implements ebiten.Game interface.
func (e *Engine) Update() error {
	e.input.Update()

	if e.cfg.Input.ExitOnEscape && e.input.Keyboard.IsKeyDown(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if e.next != nil {
		if err := e.transition(); err != nil {
			return err
		}
	}

	if e.active == nil {
		return nil
	}
	return e.active.Update(e.dt)
}

// transition disposes the old scene, swaps in the pending one and
// initializes it before it can receive Update or Draw. A scene that fails
// to initialize never becomes active.
func (e *Engine) transition() error {
	prev := e.active
	if prev != nil {
		prev.Dispose()
	}

	e.active = e.next
	e.next = nil

	if e.active == nil {
		return nil
	}
	if err := e.active.Initialize(); err != nil {
		failed := e.active
		e.active = nil
		e.logger.Error("scene initialization failed",
			zap.String("scene", sceneName(failed)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to initialize scene %s: %w", sceneName(failed), err)
	}

	e.logger.Info("scene changed",
		zap.String("from", sceneName(prev)),
		zap.String("to", sceneName(e.active)),
	)
	return nil
}

// Draw renders the active scene. Transitions never happen here.
// Implements ebiten.Game interface.
func (e *Engine) Draw(screen *ebiten.Image) {
	if e.active != nil {
		e.active.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Window.ScreenWidth, e.cfg.Window.ScreenHeight
}

// Run opens the window and drives the frame loop until the game ends,
// then closes the engine.
func (e *Engine) Run() error {
	defer e.Close()

	w := e.cfg.Window
	scale := w.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(w.ScreenWidth*scale, w.ScreenHeight*scale)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(int(time.Second / e.dt))
	ebiten.SetFullscreen(w.Fullscreen)
	if w.MouseVisible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// State reports whether a scene is active.
func (e *Engine) State() state.EngineState {
	if e.active == nil {
		return state.StateNoActiveScene
	}
	return state.StateSceneActive
}

// Active returns the active scene, or nil.
func (e *Engine) Active() scene.Scene {
	return e.active
}

// Input returns the input snapshots updated at the start of every frame.
func (e *Engine) Input() *input.Manager {
	return e.input
}

// Batch returns the shared sprite batch.
func (e *Engine) Batch() *graphics.Batch {
	return e.batch
}

// Logger returns the engine logger.
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() config.EngineConfig {
	return e.cfg
}

// Delta returns the fixed time step passed to Scene.Update.
func (e *Engine) Delta() time.Duration {
	return e.dt
}

// SetDelta sets the time step passed to Scene.Update.
// Useful for testing or custom frame rates.
func (e *Engine) SetDelta(dt time.Duration) {
	e.dt = dt
}

func sceneName(s scene.Scene) string {
	if s == nil {
		return "<none>"
	}
	return fmt.Sprintf("%T", s)
}
