package replay

import (
	"bytes"
	"encoding/json"
	"image"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mglib/internal/application/input"
)

// framePoller serves one scripted frame per keyboard+mouse poll pair.
type framePoller struct {
	keys   []input.KeyboardState
	mouse  []input.MouseState
	frame  int
	setPos []image.Point
}

func (p *framePoller) PollKeyboard() input.KeyboardState {
	if p.frame >= len(p.keys) {
		return input.KeyboardState{}
	}
	return p.keys[p.frame]
}

func (p *framePoller) PollMouse() input.MouseState {
	if p.frame >= len(p.mouse) {
		return input.MouseState{}
	}
	s := p.mouse[p.frame]
	p.frame++
	return s
}

func (p *framePoller) SetMousePosition(x, y int) {
	p.setPos = append(p.setPos, image.Pt(x, y))
}

func mouseAt(x, y int, buttons ...ebiten.MouseButton) input.MouseState {
	s := input.MouseState{X: x, Y: y}
	for _, b := range buttons {
		s.SetButton(b, true)
	}
	return s
}

func scriptedSession() *framePoller {
	return &framePoller{
		keys: []input.KeyboardState{
			{},
			input.NewKeyboardState(ebiten.KeySpace),
			input.NewKeyboardState(ebiten.KeySpace, ebiten.KeyA),
			{},
		},
		mouse: []input.MouseState{
			mouseAt(10, 10),
			mouseAt(12, 10, ebiten.MouseButtonLeft),
			mouseAt(12, 15),
			{X: 12, Y: 15, WheelY: 2},
		},
	}
}

func TestNewReplayData(t *testing.T) {
	data := NewReplayData()

	assert.Equal(t, Version, data.Version)
	assert.NotEmpty(t, data.StartTime)
	assert.Empty(t, data.Frames)
	_, err := uuid.Parse(data.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, data.ID, NewReplayData().ID)
}

func TestFrameInput_JSONFieldNames(t *testing.T) {
	fi := FrameInput{F: 3, Keys: []int{int(ebiten.KeyA)}, MX: 1, MY: 2, Buttons: []int{0}, WX: 0.5, WY: -1}

	raw, err := json.Marshal(fi)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, name := range []string{"f", "keys", "mx", "my", "buttons", "wheelX", "wheelY"} {
		assert.Contains(t, fields, name)
	}
}

func TestFrameInput_RebuildsStates(t *testing.T) {
	kb := input.NewKeyboardState(ebiten.KeyLeft, ebiten.KeyW)
	ms := mouseAt(5, 6, ebiten.MouseButtonRight)
	ms.WheelY = 3

	fi := newFrameInput(7, kb, ms)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, kb, fi.Keyboard())
	assert.Equal(t, ms, fi.Mouse())
}

func TestRecorder_RecordsOneFramePerPollPair(t *testing.T) {
	rec := NewRecorder(scriptedSession())
	m := input.NewManager(rec)
	for i := 0; i < 3; i++ {
		m.Update()
	}

	// NewManager polls once, then three updates.
	require.Equal(t, 4, rec.FrameCount())
	frames := rec.Data().Frames
	for i, f := range frames {
		assert.Equal(t, i, f.F)
	}
	assert.Equal(t, []int{int(ebiten.KeySpace)}, frames[1].Keys)
	assert.Equal(t, []int{int(ebiten.MouseButtonLeft)}, frames[1].Buttons)
	assert.Equal(t, 2.0, frames[3].WY)
}

func TestRecorder_StopKeepsForwarding(t *testing.T) {
	source := scriptedSession()
	rec := NewRecorder(source)

	rec.PollKeyboard()
	rec.PollMouse()
	rec.Stop()
	assert.False(t, rec.IsRecording())

	rec.PollKeyboard()
	ms := rec.PollMouse()
	assert.Equal(t, 12, ms.X)
	assert.Equal(t, 1, rec.FrameCount())

	rec.SetMousePosition(3, 4)
	assert.Equal(t, []image.Point{{3, 4}}, source.setPos)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(&framePoller{})
	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "r.json")))
}

func TestReplay_ReproducesSession(t *testing.T) {
	rec := NewRecorder(scriptedSession())
	live := input.NewManager(rec)

	type observation struct {
		spacePressed, spaceReleased bool
		leftPressed                 bool
		delta                       image.Point
		scroll                      float64
	}
	observe := func(m *input.Manager) observation {
		return observation{
			spacePressed:  m.Keyboard.WasKeyJustPressed(ebiten.KeySpace),
			spaceReleased: m.Keyboard.WasKeyJustReleased(ebiten.KeySpace),
			leftPressed:   m.Mouse.WasButtonJustPressed(ebiten.MouseButtonLeft),
			delta:         m.Mouse.PositionDelta(),
			scroll:        m.Mouse.ScrollWheelDelta(),
		}
	}

	var want []observation
	for i := 0; i < 3; i++ {
		live.Update()
		want = append(want, observe(live))
	}

	var buf bytes.Buffer
	require.NoError(t, rec.Write(&buf))
	data, err := ReadReplay(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().ID, data.ID)

	player := NewReplayer(*data)
	replayed := input.NewManager(player)
	var got []observation
	for i := 0; i < 3; i++ {
		replayed.Update()
		got = append(got, observe(replayed))
	}

	assert.Equal(t, want, got)
	assert.True(t, player.Done())
}

func TestReplayer_AfterLastFrame(t *testing.T) {
	data := NewReplayData()
	data.Frames = []FrameInput{
		{F: 0, Keys: []int{int(ebiten.KeyA)}, MX: 40, MY: 50, Buttons: []int{0}},
	}
	r := NewReplayer(data)

	assert.True(t, r.PollKeyboard().IsKeyDown(ebiten.KeyA))
	r.PollMouse()
	assert.True(t, r.Done())
	assert.Equal(t, 1, r.CurrentFrame())

	assert.Empty(t, r.PollKeyboard().PressedKeys())
	ms := r.PollMouse()
	assert.Equal(t, image.Pt(40, 50), ms.Position())
	assert.Empty(t, ms.PressedButtons())
	assert.Equal(t, 1, r.CurrentFrame())
}

func TestReplayer_Reset(t *testing.T) {
	data := NewReplayData()
	data.Frames = []FrameInput{{F: 0, MX: 1}, {F: 1, MX: 2}}
	r := NewReplayer(data)

	r.PollMouse()
	r.PollMouse()
	assert.True(t, r.Done())
	assert.Equal(t, 2, r.TotalFrames())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.Equal(t, 1, r.PollMouse().X)
}

func TestReplayer_Empty(t *testing.T) {
	r := NewReplayer(ReplayData{})
	assert.True(t, r.Done())
	assert.Equal(t, input.MouseState{}, r.PollMouse())
}

func TestSaveAndLoadReplay(t *testing.T) {
	rec := NewRecorder(scriptedSession())
	input.NewManager(rec).Update()

	filename := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(filename))

	data, err := LoadReplay(filename)
	require.NoError(t, err)
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, rec.Data().Frames, data.Frames)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
