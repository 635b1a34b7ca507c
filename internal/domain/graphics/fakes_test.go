package graphics

import (
	"image"
	"image/color"
)

type fakeTexture struct {
	w, h int
}

func (t *fakeTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.w, t.h)
}

type drawCall struct {
	texture    Texture
	pos        Vec2
	source     image.Rectangle
	tint       color.Color
	rotation   float64
	origin     Vec2
	scale      Vec2
	effects    Effects
	layerDepth float64
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawRegion(tex Texture, pos Vec2, src image.Rectangle, tint color.Color,
	rotation float64, origin Vec2, scale Vec2, effects Effects, layerDepth float64) {
	r.calls = append(r.calls, drawCall{tex, pos, src, tint, rotation, origin, scale, effects, layerDepth})
}

func newTestRegions(tex Texture, n int) []*TextureRegion {
	regions := make([]*TextureRegion, n)
	for i := range regions {
		regions[i] = NewTextureRegion(tex, i*16, 0, 16, 16)
	}
	return regions
}
