package graphics

import (
	"testing"
	"time"
)

const benchSprites = 10_000

// Layered scene: tiles at the back, sprites interleaved on two layers.
func BenchmarkBatch_SortedSubmit(b *testing.B) {
	tex := &fakeTexture{w: 256, h: 256}
	regions := newTestRegions(tex, 8)
	sprites := make([]*Sprite, benchSprites)
	for i := range sprites {
		sprites[i] = NewSprite(regions[i%len(regions)])
		sprites[i].LayerDepth = float64(i%3) * 0.5
	}

	batch := NewBatch()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		batch.Begin(nil)
		for j, s := range sprites {
			s.Draw(batch, Vec2{X: float64(j % 640), Y: float64(j / 640)})
		}
		batch.End()
	}
}

func BenchmarkAnimatedSprite_Update(b *testing.B) {
	tex := &fakeTexture{w: 256, h: 16}
	anim, err := NewAnimation(newTestRegions(tex, 8), 100*time.Millisecond)
	if err != nil {
		b.Fatal(err)
	}
	sprites := make([]*AnimatedSprite, benchSprites)
	for i := range sprites {
		if sprites[i], err = NewAnimatedSprite(anim); err != nil {
			b.Fatal(err)
		}
	}

	dt := time.Second / 60
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range sprites {
			s.Update(dt)
		}
	}
}
