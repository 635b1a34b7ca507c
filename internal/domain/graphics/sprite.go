package graphics

import (
	"image/color"
)

// Sprite draws a single texture region with transform and tint parameters.
type Sprite struct {
	region *TextureRegion

	// Color tints the region. White leaves it unchanged.
	Color color.Color
	// Rotation in radians around Origin.
	Rotation float64
	// Scale applied on each axis.
	Scale Vec2
	// Origin is the pivot for rotation and scaling, in region pixels.
	Origin Vec2
	// Effects flips the region horizontally and/or vertically.
	Effects Effects
	// LayerDepth orders draws within a batch; lower values are drawn first.
	LayerDepth float64
}

// NewSprite creates a sprite showing region with default parameters.
func NewSprite(region *TextureRegion) *Sprite {
	return &Sprite{
		region: region,
		Color:  color.White,
		Scale:  Vec2{X: 1, Y: 1},
	}
}

// Region returns the region currently displayed.
func (s *Sprite) Region() *TextureRegion {
	return s.region
}

// SetRegion swaps the displayed region.
func (s *Sprite) SetRegion(region *TextureRegion) {
	s.region = region
}

// Width returns the drawn width, taking Scale into account.
func (s *Sprite) Width() float64 {
	if s.region == nil {
		return 0
	}
	return float64(s.region.Width()) * s.Scale.X
}

// Height returns the drawn height, taking Scale into account.
func (s *Sprite) Height() float64 {
	if s.region == nil {
		return 0
	}
	return float64(s.region.Height()) * s.Scale.Y
}

// CenterOrigin moves the origin to the middle of the current region.
func (s *Sprite) CenterOrigin() {
	if s.region == nil {
		return
	}
	s.Origin = Vec2{X: float64(s.region.Width()) / 2, Y: float64(s.region.Height()) / 2}
}

// Draw submits the sprite at pos. A sprite without a region draws nothing.
func (s *Sprite) Draw(r Renderer, pos Vec2) {
	if s.region == nil {
		return
	}
	s.region.DrawWith(r, pos, s.Color, s.Rotation, s.Origin, s.Scale, s.Effects, s.LayerDepth)
}
