package graphics

import (
	"fmt"
	"time"
)

// AnimatedSprite is a Sprite whose region is driven by an Animation.
// Playback state (frame index, elapsed time) is per instance, so many sprites
// can share one Animation.
type AnimatedSprite struct {
	Sprite

	animation *Animation
	frame     int
	elapsed   time.Duration
}

// NewAnimatedSprite creates a sprite playing anim from its first frame.
func NewAnimatedSprite(anim *Animation) (*AnimatedSprite, error) {
	s := &AnimatedSprite{Sprite: *NewSprite(nil)}
	if err := s.SetAnimation(anim); err != nil {
		return nil, err
	}
	return s, nil
}

// Animation returns the animation being played.
func (s *AnimatedSprite) Animation() *Animation {
	return s.animation
}

// SetAnimation replaces the animation and restarts playback. The first frame
// is shown immediately.
func (s *AnimatedSprite) SetAnimation(anim *Animation) error {
	if anim == nil {
		return fmt.Errorf("nil animation: %w", ErrInvalidConfiguration)
	}
	s.animation = anim
	s.frame = 0
	s.elapsed = 0
	s.SetRegion(anim.frames[0])
	return nil
}

// Frame returns the index of the frame on display.
func (s *AnimatedSprite) Frame() int {
	return s.frame
}

// Elapsed returns the time accumulated toward the next frame.
func (s *AnimatedSprite) Elapsed() time.Duration {
	return s.elapsed
}

// Update advances playback by dt. A dt spanning several delays advances
// several frames, so a stalled frame still lands on the right one.
func (s *AnimatedSprite) Update(dt time.Duration) {
	if s.animation == nil || dt <= 0 {
		return
	}

	delay := s.animation.delay
	count := len(s.animation.frames)

	s.elapsed += dt
	if s.elapsed < delay {
		return
	}

	steps := int(s.elapsed / delay % time.Duration(count))
	s.elapsed %= delay
	s.frame = (s.frame + steps) % count
	s.SetRegion(s.animation.frames[s.frame])
}
