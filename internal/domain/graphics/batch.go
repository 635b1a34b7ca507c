package graphics

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultBatchCap = 256

type drawCommand struct {
	texture Texture
	source  image.Rectangle
	op      ebiten.DrawImageOptions
	depth   float64
	order   int
}

// Batch is the Ebitengine Renderer. Draws are queued between Begin and End
// and submitted in LayerDepth order, ties keeping submission order.
type Batch struct {
	target   *ebiten.Image
	commands []drawCommand
	drawing  bool
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{commands: make([]drawCommand, 0, defaultBatchCap)}
}

// Begin starts collecting draws for target.
func (b *Batch) Begin(target *ebiten.Image) {
	if b.drawing {
		panic("graphics: Begin called twice without End")
	}
	b.target = target
	b.commands = b.commands[:0]
	b.drawing = true
}

// DrawRegion implements Renderer.
func (b *Batch) DrawRegion(tex Texture, pos Vec2, src image.Rectangle, tint color.Color,
	rotation float64, origin Vec2, scale Vec2, effects Effects, layerDepth float64) {
	if !b.drawing {
		panic("graphics: DrawRegion called outside Begin/End")
	}

	cmd := drawCommand{
		texture: tex,
		source:  src,
		depth:   layerDepth,
		order:   len(b.commands),
	}
	cmd.op.Filter = ebiten.FilterNearest

	w, h := float64(src.Dx()), float64(src.Dy())
	if effects&EffectFlipHorizontal != 0 {
		cmd.op.GeoM.Scale(-1, 1)
		cmd.op.GeoM.Translate(w, 0)
	}
	if effects&EffectFlipVertical != 0 {
		cmd.op.GeoM.Scale(1, -1)
		cmd.op.GeoM.Translate(0, h)
	}
	cmd.op.GeoM.Translate(-origin.X, -origin.Y)
	cmd.op.GeoM.Scale(scale.X, scale.Y)
	cmd.op.GeoM.Rotate(rotation)
	cmd.op.GeoM.Translate(pos.X, pos.Y)
	if tint != nil {
		cmd.op.ColorScale.ScaleWithColor(tint)
	}

	b.commands = append(b.commands, cmd)
}

// Len returns the number of queued draws.
func (b *Batch) Len() int {
	return len(b.commands)
}

// End sorts the queued draws and submits them to the target.
// Regions whose texture is not an *ebiten.Image are skipped.
func (b *Batch) End() {
	if !b.drawing {
		panic("graphics: End called without Begin")
	}
	b.drawing = false
	b.sort()

	if b.target != nil {
		for i := range b.commands {
			cmd := &b.commands[i]
			img, ok := cmd.texture.(*ebiten.Image)
			if !ok || img == nil {
				continue
			}
			sub := img.SubImage(cmd.source).(*ebiten.Image)
			b.target.DrawImage(sub, &cmd.op)
		}
	}

	b.commands = b.commands[:0]
	b.target = nil
}

func (b *Batch) sort() {
	sort.SliceStable(b.commands, func(i, j int) bool {
		return b.commands[i].depth < b.commands[j].depth
	})
}
