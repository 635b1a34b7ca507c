package input

import "github.com/hajimehoshi/ebiten/v2"

// KeyboardInfo holds the keyboard state of the previous and current frame.
type KeyboardInfo struct {
	poller   Poller
	previous KeyboardState
	current  KeyboardState
}

// NewKeyboardInfo creates a KeyboardInfo whose current state is polled
// immediately and whose previous state has no keys held.
func NewKeyboardInfo(p Poller) *KeyboardInfo {
	return &KeyboardInfo{
		poller:  p,
		current: p.PollKeyboard(),
	}
}

// Update shifts the current state to previous and polls a new one.
func (k *KeyboardInfo) Update() {
	k.previous = k.current
	k.current = k.poller.PollKeyboard()
}

// PreviousState returns the state polled on the previous frame.
func (k *KeyboardInfo) PreviousState() KeyboardState {
	return k.previous
}

// CurrentState returns the state polled on this frame.
func (k *KeyboardInfo) CurrentState() KeyboardState {
	return k.current
}

// IsKeyDown reports whether key is held this frame.
func (k *KeyboardInfo) IsKeyDown(key ebiten.Key) bool {
	return k.current.IsKeyDown(key)
}

// IsKeyUp reports whether key is not held this frame.
func (k *KeyboardInfo) IsKeyUp(key ebiten.Key) bool {
	return k.current.IsKeyUp(key)
}

// WasKeyJustPressed reports whether key went down on this frame.
func (k *KeyboardInfo) WasKeyJustPressed(key ebiten.Key) bool {
	return k.current.IsKeyDown(key) && k.previous.IsKeyUp(key)
}

// WasKeyJustReleased reports whether key went up on this frame.
func (k *KeyboardInfo) WasKeyJustReleased(key ebiten.Key) bool {
	return k.current.IsKeyUp(key) && k.previous.IsKeyDown(key)
}
