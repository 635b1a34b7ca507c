// Package graphics provides texture regions, animations, sprites and the
// texture atlas that ties them together.
//
// Nothing in this package rasterizes directly. Sprites submit draw requests
// to a Renderer, which is implemented for Ebitengine by Batch.
package graphics

import (
	"image"
	"image/color"
	"time"
)

// Texture is a source image shared by every region cut from it.
// *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Vec2 is a 2D vector in screen space.
type Vec2 struct {
	X, Y float64
}

// Effects flips a region when it is drawn.
type Effects uint8

const (
	EffectNone           Effects = 0
	EffectFlipHorizontal Effects = 1 << 0
	EffectFlipVertical   Effects = 1 << 1
)

// Renderer is the only drawing primitive the sprite system needs.
type Renderer interface {
	DrawRegion(tex Texture, pos Vec2, src image.Rectangle, tint color.Color,
		rotation float64, origin Vec2, scale Vec2, effects Effects, layerDepth float64)
}

// Drawable is anything that can submit itself to a Renderer at a position.
type Drawable interface {
	Draw(r Renderer, pos Vec2)
}

// Updatable is anything that advances with frame time.
type Updatable interface {
	Update(dt time.Duration)
}
