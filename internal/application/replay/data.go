// Package replay records raw device polls and plays them back as an
// input.Poller, so an input session can be reproduced frame by frame.
package replay

import (
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/mglib/internal/application/input"
)

// Version is written to every saved replay.
const Version = "1.0"

// FrameInput records the polled device state for a single frame
type FrameInput struct {
	F       int     `json:"f"`                 // Frame number
	Keys    []int   `json:"keys,omitempty"`    // Pressed ebiten.Key values
	MX      int     `json:"mx"`                // MouseX
	MY      int     `json:"my"`                // MouseY
	Buttons []int   `json:"buttons,omitempty"` // Pressed ebiten.MouseButton values
	WX      float64 `json:"wheelX,omitempty"`  // Cumulative horizontal wheel
	WY      float64 `json:"wheelY,omitempty"`  // Cumulative vertical wheel
}

// ReplayData contains all data needed to replay an input session
type ReplayData struct {
	Version   string       `json:"version"`
	ID        string       `json:"id"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewReplayData creates empty replay data stamped with a fresh session ID
func NewReplayData() ReplayData {
	return ReplayData{
		Version:   Version,
		ID:        uuid.NewString(),
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
	}
}

func newFrameInput(frame int, kb input.KeyboardState, ms input.MouseState) FrameInput {
	fi := FrameInput{
		F:  frame,
		MX: ms.X,
		MY: ms.Y,
		WX: ms.WheelX,
		WY: ms.WheelY,
	}
	for _, k := range kb.PressedKeys() {
		fi.Keys = append(fi.Keys, int(k))
	}
	for _, b := range ms.PressedButtons() {
		fi.Buttons = append(fi.Buttons, int(b))
	}
	return fi
}

// Keyboard rebuilds the recorded keyboard state
func (fi FrameInput) Keyboard() input.KeyboardState {
	keys := make([]ebiten.Key, len(fi.Keys))
	for i, k := range fi.Keys {
		keys[i] = ebiten.Key(k)
	}
	return input.NewKeyboardState(keys...)
}

// Mouse rebuilds the recorded mouse state
func (fi FrameInput) Mouse() input.MouseState {
	s := input.MouseState{X: fi.MX, Y: fi.MY, WheelX: fi.WX, WheelY: fi.WY}
	for _, b := range fi.Buttons {
		s.SetButton(ebiten.MouseButton(b), true)
	}
	return s
}
