// Package playing provides the main gameplay scene: a slime that grows by
// eating a bat bouncing around a walled room.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/younwookim/mglib/internal/application/engine"
	"github.com/younwookim/mglib/internal/application/scene"
	"github.com/younwookim/mglib/internal/application/system"
	"github.com/younwookim/mglib/internal/domain/graphics"
)

const (
	tileScale    = 2
	moveInterval = 200 * time.Millisecond
	batSpeed     = 120.0 // pixels per second
	scorePerBat  = 100
	minRoomTiles = 5
)

// Layer depths; higher draws on top
const (
	depthTiles = 0
	depthSlime = 0.5
	depthBat   = 0.6
)

// Atlas names the scene draws with
const (
	SlimeAnimation = "slime-animation"
	BatAnimation   = "bat-animation"
	FloorRegion    = "floor"
	WallRegion     = "wall"
)

type phase int

const (
	phasePlaying phase = iota
	phasePaused
	phaseGameOver
)

// SlimeSegment is one body cell of the slime. During a movement cycle the
// segment travels from At to To, both in tile coordinates.
type SlimeSegment struct {
	At  image.Point
	To  image.Point
	Dir image.Point
}

// ReverseDir returns the direction the segment is not allowed to turn to.
func (s SlimeSegment) ReverseDir() image.Point {
	return image.Pt(-s.Dir.X, -s.Dir.Y)
}

// Playing is the main gameplay scene
type Playing struct {
	engine *engine.Engine
	res    *scene.Resources
	back   func() scene.Scene

	atlas *graphics.TextureAtlas
	slime *graphics.AnimatedSprite
	bat   *graphics.AnimatedSprite
	floor *graphics.TextureRegion
	wall  *graphics.TextureRegion

	buffer *system.DirectionBuffer
	rng    *rand.Rand

	tileSize   int
	cols, rows int

	segments  []SlimeSegment
	moveTimer time.Duration
	grow      bool

	batPos graphics.Vec2
	batVel graphics.Vec2

	phase phase
	score int
}

// New creates a new Playing scene. back, when not nil, builds the scene
// shown after leaving the game over screen.
func New(e *engine.Engine, res *scene.Resources, back func() scene.Scene) *Playing {
	seed := uint64(time.Now().UnixNano())
	return &Playing{
		engine: e,
		res:    res,
		back:   back,
		buffer: system.NewDirectionBuffer(),
		rng:    rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

// Initialize loads the atlas and lays out the room (implements scene.Scene)
func (p *Playing) Initialize() error {
	atlas, err := p.res.LoadAtlas()
	if err != nil {
		return err
	}
	if err := p.bind(atlas); err != nil {
		return err
	}

	w := p.engine.Config().Window
	p.cols = w.ScreenWidth / p.tileSize
	p.rows = w.ScreenHeight / p.tileSize
	if p.cols < minRoomTiles || p.rows < minRoomTiles {
		return fmt.Errorf("screen %dx%d is too small for %dpx tiles", w.ScreenWidth, w.ScreenHeight, p.tileSize)
	}

	p.reset()
	p.engine.Logger().Info("playing scene initialized",
		zap.Int("columns", p.cols),
		zap.Int("rows", p.rows),
		zap.Int("tileSize", p.tileSize),
	)
	return nil
}

// bind takes the sprites and tiles from atlas. The tile size is fixed by
// the first atlas; later atlases are scaled to it.
func (p *Playing) bind(atlas *graphics.TextureAtlas) error {
	slime, err := atlas.CreateAnimatedSprite(SlimeAnimation)
	if err != nil {
		return err
	}
	bat, err := atlas.CreateAnimatedSprite(BatAnimation)
	if err != nil {
		return err
	}
	floor, err := atlas.Region(FloorRegion)
	if err != nil {
		return err
	}
	wall, err := atlas.Region(WallRegion)
	if err != nil {
		return err
	}

	base := slime.Region().Width()
	if base <= 0 {
		return fmt.Errorf("%s has an empty first frame: %w", SlimeAnimation, graphics.ErrMalformedAsset)
	}
	if p.tileSize == 0 {
		p.tileSize = base * tileScale
	}

	scale := float64(p.tileSize) / float64(base)
	slime.Scale = graphics.Vec2{X: scale, Y: scale}
	slime.LayerDepth = depthSlime
	bat.Scale = graphics.Vec2{X: scale, Y: scale}
	bat.LayerDepth = depthBat

	p.atlas = atlas
	p.slime = slime
	p.bat = bat
	p.floor = floor
	p.wall = wall
	return nil
}

func (p *Playing) reset() {
	p.phase = phasePlaying
	p.score = 0
	p.grow = false
	p.moveTimer = 0
	p.buffer.Clear()

	center := image.Pt(p.cols/2, p.rows/2)
	right := image.Pt(1, 0)
	p.segments = []SlimeSegment{{At: center, To: center.Add(right), Dir: right}}
	p.placeBat()
}

// placeBat moves the bat to a random floor tile away from the slime head
// and gives it a random heading.
func (p *Playing) placeBat() {
	head := p.segments[0].To
	for {
		cell := image.Pt(1+p.rng.IntN(p.cols-2), 1+p.rng.IntN(p.rows-2))
		if cell != head {
			p.batPos = p.tileOrigin(cell)
			break
		}
	}

	angle := p.rng.Float64() * 2 * math.Pi
	p.batVel = graphics.Vec2{X: math.Cos(angle) * batSpeed, Y: math.Sin(angle) * batSpeed}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt time.Duration) error {
	if p.res.AtlasChanged() {
		p.reload()
	}

	kb := p.engine.Input().Keyboard
	mouse := p.engine.Input().Mouse

	switch p.phase {
	case phasePaused:
		if kb.WasKeyJustPressed(ebiten.KeyP) || mouse.WasButtonJustPressed(ebiten.MouseButtonLeft) {
			p.phase = phasePlaying
		}
		return nil
	case phaseGameOver:
		switch {
		case kb.WasKeyJustPressed(ebiten.KeyEnter) || mouse.WasButtonJustPressed(ebiten.MouseButtonLeft):
			p.reset()
		case kb.WasKeyJustPressed(ebiten.KeyBackspace) && p.back != nil:
			p.engine.ChangeScene(p.back())
		}
		return nil
	}

	if kb.WasKeyJustPressed(ebiten.KeyP) {
		p.phase = phasePaused
		return nil
	}

	p.buffer.ReadKeyboard(kb)
	p.slime.Update(dt)
	p.bat.Update(dt)

	p.moveTimer += dt
	for p.moveTimer >= moveInterval && p.phase == phasePlaying {
		p.moveTimer -= moveInterval
		p.step()
	}
	if p.phase != phasePlaying {
		return nil
	}

	p.updateBat(dt)
	p.checkBatCollision()
	return nil
}

// step runs one movement cycle: the head advances one tile and every other
// segment moves into the cell the segment ahead of it occupied.
func (p *Playing) step() {
	head := p.segments[0]
	dir := head.Dir
	if next, ok := p.buffer.Pop(); ok {
		d := image.Pt(int(next.X), int(next.Y))
		if d != head.ReverseDir() {
			dir = d
		}
	}

	moved := make([]SlimeSegment, 0, len(p.segments)+1)
	moved = append(moved, SlimeSegment{At: head.To, To: head.To.Add(dir), Dir: dir})
	for i := 1; i < len(p.segments); i++ {
		from, to := p.segments[i].To, p.segments[i-1].To
		moved = append(moved, SlimeSegment{At: from, To: to, Dir: to.Sub(from)})
	}
	if p.grow {
		tail := p.segments[len(p.segments)-1]
		moved = append(moved, SlimeSegment{At: tail.To, To: tail.To, Dir: tail.Dir})
		p.grow = false
	}
	p.segments = moved

	newHead := moved[0].To
	if p.isWall(newHead) {
		p.gameOver("wall")
		return
	}
	for _, seg := range moved[1:] {
		if seg.To == newHead {
			p.gameOver("body")
			return
		}
	}
}

func (p *Playing) isWall(cell image.Point) bool {
	return cell.X <= 0 || cell.Y <= 0 || cell.X >= p.cols-1 || cell.Y >= p.rows-1
}

func (p *Playing) gameOver(cause string) {
	p.phase = phaseGameOver
	p.engine.Logger().Info("game over",
		zap.String("cause", cause),
		zap.Int("score", p.score),
		zap.Int("length", len(p.segments)),
	)
}

// updateBat moves the bat and bounces it off the inner side of the walls
func (p *Playing) updateBat(dt time.Duration) {
	secs := dt.Seconds()
	p.batPos.X += p.batVel.X * secs
	p.batPos.Y += p.batVel.Y * secs

	size := float64(p.tileSize)
	minPos := size
	maxX := float64(p.cols-1)*size - size
	maxY := float64(p.rows-1)*size - size

	if p.batPos.X < minPos {
		p.batPos.X = minPos
		p.batVel.X = math.Abs(p.batVel.X)
	} else if p.batPos.X > maxX {
		p.batPos.X = maxX
		p.batVel.X = -math.Abs(p.batVel.X)
	}
	if p.batPos.Y < minPos {
		p.batPos.Y = minPos
		p.batVel.Y = math.Abs(p.batVel.Y)
	} else if p.batPos.Y > maxY {
		p.batPos.Y = maxY
		p.batVel.Y = -math.Abs(p.batVel.Y)
	}
}

func (p *Playing) checkBatCollision() {
	head := p.segmentPosition(p.segments[0])
	if !p.bounds(head).Overlaps(p.bounds(p.batPos)) {
		return
	}

	p.score += scorePerBat
	p.grow = true
	p.placeBat()
	p.engine.Logger().Debug("bat eaten", zap.Int("score", p.score))
}

// bounds returns the tile-sized box at pos, shrunk so touching edges do not
// count as a hit.
func (p *Playing) bounds(pos graphics.Vec2) image.Rectangle {
	inset := p.tileSize / 4
	topLeft := image.Pt(int(pos.X)+inset, int(pos.Y)+inset)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(p.tileSize-2*inset, p.tileSize-2*inset))}
}

func (p *Playing) tileOrigin(cell image.Point) graphics.Vec2 {
	return graphics.Vec2{X: float64(cell.X * p.tileSize), Y: float64(cell.Y * p.tileSize)}
}

// segmentPosition interpolates between At and To by the movement progress
func (p *Playing) segmentPosition(seg SlimeSegment) graphics.Vec2 {
	t := float64(p.moveTimer) / float64(moveInterval)
	at, to := p.tileOrigin(seg.At), p.tileOrigin(seg.To)
	return graphics.Vec2{
		X: at.X + (to.X-at.X)*t,
		Y: at.Y + (to.Y-at.Y)*t,
	}
}

func (p *Playing) reload() {
	if _, err := p.res.ReloadAtlas(p.bind); err != nil {
		p.engine.Logger().Warn("atlas reload failed", zap.Error(err))
		return
	}
	p.engine.Logger().Info("atlas reloaded", zap.String("atlas", p.res.Atlas))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Cornflowerblue)

	batch := p.engine.Batch()
	batch.Begin(screen)
	p.drawWorld(batch)
	batch.End()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", p.score), 8, 4)
	switch p.phase {
	case phasePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", 8, 20)
	case phaseGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - Enter to retry, Backspace for title", 8, 20)
	}
}

// drawWorld submits the room, the slime and the bat to r
func (p *Playing) drawWorld(r graphics.Renderer) {
	scale := graphics.Vec2{
		X: float64(p.tileSize) / float64(p.floor.Width()),
		Y: float64(p.tileSize) / float64(p.floor.Height()),
	}
	for y := 0; y < p.rows; y++ {
		for x := 0; x < p.cols; x++ {
			cell := image.Pt(x, y)
			region := p.floor
			if p.isWall(cell) {
				region = p.wall
			}
			region.DrawWith(r, p.tileOrigin(cell), color.White, 0, graphics.Vec2{}, scale, graphics.EffectNone, depthTiles)
		}
	}

	for _, seg := range p.segments {
		p.slime.Draw(r, p.segmentPosition(seg))
	}
	p.bat.Draw(r, p.batPos)
}

// Dispose releases the scene's textures (implements scene.Scene)
func (p *Playing) Dispose() {
	p.res.Textures.Unload()
	p.atlas = nil
	p.engine.Logger().Debug("playing scene disposed", zap.Int("score", p.score))
}

// Score returns the current score
func (p *Playing) Score() int {
	return p.score
}

// Length returns the number of slime segments
func (p *Playing) Length() int {
	return len(p.segments)
}

// GameOver reports whether the slime has crashed
func (p *Playing) GameOver() bool {
	return p.phase == phaseGameOver
}

var _ scene.Scene = (*Playing)(nil)
