package graphics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSprite_Defaults(t *testing.T) {
	region := NewTextureRegion(&fakeTexture{w: 32, h: 32}, 0, 0, 16, 8)

	s := NewSprite(region)

	assert.Same(t, region, s.Region())
	assert.Equal(t, color.White, s.Color)
	assert.Equal(t, Vec2{X: 1, Y: 1}, s.Scale)
	assert.Equal(t, 16.0, s.Width())
	assert.Equal(t, 8.0, s.Height())
}

func TestSprite_ScaledSizeAndOrigin(t *testing.T) {
	s := NewSprite(NewTextureRegion(&fakeTexture{w: 32, h: 32}, 0, 0, 16, 8))
	s.Scale = Vec2{X: 2, Y: 4}

	s.CenterOrigin()

	assert.Equal(t, 32.0, s.Width())
	assert.Equal(t, 32.0, s.Height())
	assert.Equal(t, Vec2{X: 8, Y: 4}, s.Origin)
}

func TestSprite_Draw(t *testing.T) {
	tex := &fakeTexture{w: 32, h: 32}
	region := NewTextureRegion(tex, 16, 0, 16, 16)
	s := NewSprite(region)
	s.Color = color.RGBA{R: 255, A: 255}
	s.Rotation = 1.5
	s.Origin = Vec2{X: 8, Y: 8}
	s.Scale = Vec2{X: 2, Y: 2}
	s.Effects = EffectFlipHorizontal
	s.LayerDepth = 0.5
	rd := &recordingRenderer{}

	s.Draw(rd, Vec2{X: 100, Y: 50})
	s.Draw(rd, Vec2{X: 100, Y: 50})

	require.Len(t, rd.calls, 2)
	assert.Equal(t, rd.calls[0], rd.calls[1], "drawing does not mutate the sprite")
	call := rd.calls[0]
	assert.Same(t, tex, call.texture)
	assert.Equal(t, region.Source(), call.source)
	assert.Equal(t, Vec2{X: 100, Y: 50}, call.pos)
	assert.Equal(t, s.Color, call.tint)
	assert.Equal(t, 1.5, call.rotation)
	assert.Equal(t, Vec2{X: 8, Y: 8}, call.origin)
	assert.Equal(t, Vec2{X: 2, Y: 2}, call.scale)
	assert.Equal(t, EffectFlipHorizontal, call.effects)
	assert.Equal(t, 0.5, call.layerDepth)
}

func TestSprite_SetRegion(t *testing.T) {
	tex := &fakeTexture{w: 32, h: 16}
	regions := newTestRegions(tex, 2)
	s := NewSprite(regions[0])

	s.SetRegion(regions[1])

	assert.Same(t, regions[1], s.Region())
}

func TestSprite_NoRegionDrawsNothing(t *testing.T) {
	s := NewSprite(nil)
	rd := &recordingRenderer{}

	s.Draw(rd, Vec2{})
	s.CenterOrigin()

	assert.Empty(t, rd.calls)
	assert.Zero(t, s.Width())
	assert.Zero(t, s.Origin)
}

func TestSpriteCapabilities(t *testing.T) {
	var _ Drawable = (*Sprite)(nil)
	var _ Drawable = (*AnimatedSprite)(nil)
	var _ Updatable = (*AnimatedSprite)(nil)
}
