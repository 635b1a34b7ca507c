package graphics

import (
	"image"
	"image/color"
)

// TextureRegion is an immutable rectangular view into a shared texture.
type TextureRegion struct {
	texture Texture
	source  image.Rectangle
}

// NewTextureRegion creates a region of the given texture with its top-left
// corner at (x, y). A negative width or height is treated as zero; use
// TextureAtlas.AddRegion to reject them instead.
func NewTextureRegion(tex Texture, x, y, width, height int) *TextureRegion {
	width, height = max(width, 0), max(height, 0)
	return &TextureRegion{
		texture: tex,
		source:  image.Rect(x, y, x+width, y+height),
	}
}

// Texture returns the shared source texture.
func (r *TextureRegion) Texture() Texture {
	return r.texture
}

// Source returns the source rectangle in texture pixels.
func (r *TextureRegion) Source() image.Rectangle {
	return r.source
}

// Width returns the width of the region in pixels.
func (r *TextureRegion) Width() int {
	return r.source.Dx()
}

// Height returns the height of the region in pixels.
func (r *TextureRegion) Height() int {
	return r.source.Dy()
}

// Draw submits the region at pos with the given tint and no transform.
func (r *TextureRegion) Draw(rd Renderer, pos Vec2, tint color.Color) {
	r.DrawWith(rd, pos, tint, 0, Vec2{}, Vec2{X: 1, Y: 1}, EffectNone, 0)
}

// DrawWith submits the region with full draw parameters.
func (r *TextureRegion) DrawWith(rd Renderer, pos Vec2, tint color.Color,
	rotation float64, origin Vec2, scale Vec2, effects Effects, layerDepth float64) {
	rd.DrawRegion(r.texture, pos, r.source, tint, rotation, origin, scale, effects, layerDepth)
}
