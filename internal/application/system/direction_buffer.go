package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/mglib/internal/application/input"
	"github.com/younwookim/mglib/internal/domain/graphics"
)

// Unit movement directions in screen space
var (
	DirUp    = graphics.Vec2{X: 0, Y: -1}
	DirDown  = graphics.Vec2{X: 0, Y: 1}
	DirLeft  = graphics.Vec2{X: -1, Y: 0}
	DirRight = graphics.Vec2{X: 1, Y: 0}
)

const defaultDirectionBufferSize = 2

// DirectionBuffer queues movement directions pressed between movement ticks
// so quick successive turns are not lost when movement runs slower than input.
type DirectionBuffer struct {
	queue    []graphics.Vec2
	capacity int
}

// NewDirectionBuffer creates a buffer holding up to two directions
func NewDirectionBuffer() *DirectionBuffer {
	return NewDirectionBufferSize(defaultDirectionBufferSize)
}

// NewDirectionBufferSize creates a buffer holding up to size directions
func NewDirectionBufferSize(size int) *DirectionBuffer {
	if size < 1 {
		size = 1
	}
	return &DirectionBuffer{
		queue:    make([]graphics.Vec2, 0, size),
		capacity: size,
	}
}

// Push queues dir. Zero directions and pushes into a full buffer are dropped.
func (b *DirectionBuffer) Push(dir graphics.Vec2) bool {
	if dir == (graphics.Vec2{}) || len(b.queue) >= b.capacity {
		return false
	}
	b.queue = append(b.queue, dir)
	return true
}

// Pop removes and returns the oldest direction
func (b *DirectionBuffer) Pop() (graphics.Vec2, bool) {
	if len(b.queue) == 0 {
		return graphics.Vec2{}, false
	}
	dir := b.queue[0]
	copy(b.queue, b.queue[1:])
	b.queue = b.queue[:len(b.queue)-1]
	return dir, true
}

// Len returns the number of queued directions
func (b *DirectionBuffer) Len() int {
	return len(b.queue)
}

// Clear drops every queued direction
func (b *DirectionBuffer) Clear() {
	b.queue = b.queue[:0]
}

// ReadKeyboard queues the direction of the first arrow or WASD key pressed
// this frame. Up wins over down, down over left, left over right.
func (b *DirectionBuffer) ReadKeyboard(kb *input.KeyboardInfo) {
	switch {
	case kb.WasKeyJustPressed(ebiten.KeyUp) || kb.WasKeyJustPressed(ebiten.KeyW):
		b.Push(DirUp)
	case kb.WasKeyJustPressed(ebiten.KeyDown) || kb.WasKeyJustPressed(ebiten.KeyS):
		b.Push(DirDown)
	case kb.WasKeyJustPressed(ebiten.KeyLeft) || kb.WasKeyJustPressed(ebiten.KeyA):
		b.Push(DirLeft)
	case kb.WasKeyJustPressed(ebiten.KeyRight) || kb.WasKeyJustPressed(ebiten.KeyD):
		b.Push(DirRight)
	}
}
