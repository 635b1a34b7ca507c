package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseInfo holds the mouse state of the previous and current frame.
type MouseInfo struct {
	poller   Poller
	previous MouseState
	current  MouseState
}

// NewMouseInfo creates a MouseInfo whose current state is polled immediately.
func NewMouseInfo(p Poller) *MouseInfo {
	return &MouseInfo{
		poller:  p,
		current: p.PollMouse(),
	}
}

// Update shifts the current state to previous and polls a new one.
func (m *MouseInfo) Update() {
	m.previous = m.current
	m.current = m.poller.PollMouse()
}

// PreviousState returns the state polled on the previous frame.
func (m *MouseInfo) PreviousState() MouseState {
	return m.previous
}

// CurrentState returns the state of this frame.
func (m *MouseInfo) CurrentState() MouseState {
	return m.current
}

// Position returns the cursor position.
func (m *MouseInfo) Position() image.Point {
	return m.current.Position()
}

// X returns the cursor x coordinate.
func (m *MouseInfo) X() int {
	return m.current.X
}

// Y returns the cursor y coordinate.
func (m *MouseInfo) Y() int {
	return m.current.Y
}

// PositionDelta returns how far the cursor moved since the previous frame.
func (m *MouseInfo) PositionDelta() image.Point {
	return m.current.Position().Sub(m.previous.Position())
}

// XDelta returns the horizontal cursor movement since the previous frame.
func (m *MouseInfo) XDelta() int {
	return m.current.X - m.previous.X
}

// YDelta returns the vertical cursor movement since the previous frame.
func (m *MouseInfo) YDelta() int {
	return m.current.Y - m.previous.Y
}

// WasMoved reports whether the cursor moved since the previous frame.
func (m *MouseInfo) WasMoved() bool {
	return m.PositionDelta() != image.Point{}
}

// ScrollWheel returns the cumulative vertical scroll value.
func (m *MouseInfo) ScrollWheel() float64 {
	return m.current.WheelY
}

// ScrollWheelDelta returns the vertical scroll since the previous frame.
func (m *MouseInfo) ScrollWheelDelta() float64 {
	return m.current.WheelY - m.previous.WheelY
}

// ScrollDelta returns the scroll since the previous frame on both axes.
func (m *MouseInfo) ScrollDelta() (dx, dy float64) {
	return m.current.WheelX - m.previous.WheelX, m.current.WheelY - m.previous.WheelY
}

// IsButtonDown reports whether b is held this frame.
func (m *MouseInfo) IsButtonDown(b ebiten.MouseButton) bool {
	return m.current.IsButtonDown(b)
}

// IsButtonUp reports whether b is not held this frame.
func (m *MouseInfo) IsButtonUp(b ebiten.MouseButton) bool {
	return m.current.IsButtonUp(b)
}

// WasButtonJustPressed reports whether b went down on this frame.
func (m *MouseInfo) WasButtonJustPressed(b ebiten.MouseButton) bool {
	return m.current.IsButtonDown(b) && m.previous.IsButtonUp(b)
}

// WasButtonJustReleased reports whether b went up on this frame.
func (m *MouseInfo) WasButtonJustReleased(b ebiten.MouseButton) bool {
	return m.current.IsButtonUp(b) && m.previous.IsButtonDown(b)
}

// SetPosition moves the cursor and rewrites the current state in place,
// keeping buttons and scroll, so the next delta is measured from (x, y).
func (m *MouseInfo) SetPosition(x, y int) {
	m.poller.SetMousePosition(x, y)
	m.current.X = x
	m.current.Y = y
}

// SetX moves the cursor horizontally.
func (m *MouseInfo) SetX(x int) {
	m.SetPosition(x, m.current.Y)
}

// SetY moves the cursor vertically.
func (m *MouseInfo) SetY(y int) {
	m.SetPosition(m.current.X, y)
}
