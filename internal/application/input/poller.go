package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller reads raw device state.
type Poller interface {
	PollKeyboard() KeyboardState
	PollMouse() MouseState
	SetMousePosition(x, y int)
}

// EbitenPoller polls devices through Ebitengine. It must be used from the
// game loop goroutine.
type EbitenPoller struct {
	keys []ebiten.Key

	// Ebitengine cannot warp the OS cursor, so a programmatic position is
	// kept as an offset applied to every later poll.
	offsetX, offsetY int

	wheelX, wheelY float64
}

// NewEbitenPoller creates a poller for the running game.
func NewEbitenPoller() *EbitenPoller {
	return &EbitenPoller{keys: make([]ebiten.Key, 0, 16)}
}

// PollKeyboard implements Poller.
func (p *EbitenPoller) PollKeyboard() KeyboardState {
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	return NewKeyboardState(p.keys...)
}

// PollMouse implements Poller. Ebitengine reports wheel movement per tick;
// it is accumulated so MouseState carries a cumulative value.
func (p *EbitenPoller) PollMouse() MouseState {
	cx, cy := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	p.wheelX += wx
	p.wheelY += wy

	s := MouseState{
		X:      cx + p.offsetX,
		Y:      cy + p.offsetY,
		WheelX: p.wheelX,
		WheelY: p.wheelY,
	}
	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		s.SetButton(b, ebiten.IsMouseButtonPressed(b))
	}
	return s
}

// SetMousePosition implements Poller.
func (p *EbitenPoller) SetMousePosition(x, y int) {
	cx, cy := ebiten.CursorPosition()
	p.offsetX = x - cx
	p.offsetY = y - cy
}
