// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, playing, game over, etc.) implements the Scene
// interface to own its state, content and rendering.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (title, playing, game over, etc.)
//
// The engine delegates Update and Draw calls to the active scene.
// Transitions are requested with Engine.ChangeScene and applied by the
// engine between frames, never while a scene method is running.
type Scene interface {
	// Initialize is called once each time the scene becomes active, before
	// its first Update or Draw. Content loading belongs here.
	// Returning an error terminates the game.
	Initialize() error

	// Update updates the scene state.
	// dt is the fixed frame time (1/60s at the default framerate).
	// Returns an error to terminate the game.
	Update(dt time.Duration) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// Dispose is called once when the scene is deactivated, before the next
	// scene is initialized. Owned resources must be released here.
	Dispose()
}
