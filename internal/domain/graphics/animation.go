package graphics

import (
	"fmt"
	"time"
)

// Animation is an ordered, cyclic sequence of regions shown for a fixed delay each.
// It is shared between every AnimatedSprite playing it and must not be mutated.
type Animation struct {
	frames []*TextureRegion
	delay  time.Duration
}

// NewAnimation validates and creates an animation.
// It rejects an empty frame list, nil frames and a delay that is not positive.
func NewAnimation(frames []*TextureRegion, delay time.Duration) (*Animation, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("animation has no frames: %w", ErrInvalidConfiguration)
	}
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("animation frame %d is nil: %w", i, ErrInvalidConfiguration)
		}
	}
	if delay <= 0 {
		return nil, fmt.Errorf("animation delay %v must be positive: %w", delay, ErrInvalidConfiguration)
	}

	owned := make([]*TextureRegion, len(frames))
	copy(owned, frames)
	return &Animation{frames: owned, delay: delay}, nil
}

// Frames returns a copy of the frame list.
func (a *Animation) Frames() []*TextureRegion {
	out := make([]*TextureRegion, len(a.frames))
	copy(out, a.frames)
	return out
}

// Frame returns the region at index i.
func (a *Animation) Frame(i int) *TextureRegion {
	return a.frames[i]
}

// FrameCount returns the number of frames.
func (a *Animation) FrameCount() int {
	return len(a.frames)
}

// Delay returns the time each frame is displayed.
func (a *Animation) Delay() time.Duration {
	return a.delay
}

// Duration returns the length of one full cycle.
func (a *Animation) Duration() time.Duration {
	return a.delay * time.Duration(len(a.frames))
}
