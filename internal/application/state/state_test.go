package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineState_String(t *testing.T) {
	tests := []struct {
		state    EngineState
		expected string
	}{
		{StateNoActiveScene, "NoActiveScene"},
		{StateSceneActive, "SceneActive"},
		{EngineState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestEngineStateConstants(t *testing.T) {
	// The zero value means no scene
	var zero EngineState
	assert.Equal(t, StateNoActiveScene, zero)
	assert.Equal(t, EngineState(1), StateSceneActive)
}
