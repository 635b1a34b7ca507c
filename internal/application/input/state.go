// Package input turns raw per-frame device polls into level and
// edge-triggered queries.
//
// Each Info type keeps the previous and current raw state and is updated
// exactly once per frame by the engine. Edge queries are pure functions of
// the two states, so a press and release that both happen between two polls
// are not observed.
package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardState is a raw snapshot of which keys are held.
type KeyboardState struct {
	down [ebiten.KeyMax + 1]bool
}

// NewKeyboardState creates a snapshot with the given keys held.
func NewKeyboardState(pressed ...ebiten.Key) KeyboardState {
	var s KeyboardState
	for _, k := range pressed {
		if validKey(k) {
			s.down[k] = true
		}
	}
	return s
}

// IsKeyDown reports whether k is held.
func (s KeyboardState) IsKeyDown(k ebiten.Key) bool {
	return validKey(k) && s.down[k]
}

// IsKeyUp reports whether k is not held.
func (s KeyboardState) IsKeyUp(k ebiten.Key) bool {
	return !s.IsKeyDown(k)
}

// PressedKeys returns the held keys in ascending order.
func (s KeyboardState) PressedKeys() []ebiten.Key {
	var keys []ebiten.Key
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if s.down[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

func validKey(k ebiten.Key) bool {
	return k >= 0 && k <= ebiten.KeyMax
}

// MouseState is a raw snapshot of the cursor, buttons and scroll wheel.
type MouseState struct {
	X, Y int
	// WheelX and WheelY are cumulative scroll offsets since the poller started.
	WheelX, WheelY float64

	buttons [ebiten.MouseButtonMax + 1]bool
}

// Position returns the cursor position.
func (s MouseState) Position() image.Point {
	return image.Pt(s.X, s.Y)
}

// IsButtonDown reports whether b is held.
func (s MouseState) IsButtonDown(b ebiten.MouseButton) bool {
	return validButton(b) && s.buttons[b]
}

// IsButtonUp reports whether b is not held.
func (s MouseState) IsButtonUp(b ebiten.MouseButton) bool {
	return !s.IsButtonDown(b)
}

// SetButton records b as held or released.
func (s *MouseState) SetButton(b ebiten.MouseButton, down bool) {
	if validButton(b) {
		s.buttons[b] = down
	}
}

// PressedButtons returns the held buttons in ascending order.
func (s MouseState) PressedButtons() []ebiten.MouseButton {
	var buttons []ebiten.MouseButton
	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		if s.buttons[b] {
			buttons = append(buttons, b)
		}
	}
	return buttons
}

func validButton(b ebiten.MouseButton) bool {
	return b >= 0 && b <= ebiten.MouseButtonMax
}
