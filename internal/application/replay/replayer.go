package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/mglib/internal/application/input"
)

// Replayer is an input.Poller that plays back recorded frames. Each frame
// is served by one PollKeyboard followed by one PollMouse. Once the
// recording is exhausted every key and button reads as released and the
// cursor stays where it was last recorded.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// ReadReplay decodes replay data from r
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// PollKeyboard implements input.Poller.
func (r *Replayer) PollKeyboard() input.KeyboardState {
	if r.Done() {
		return input.KeyboardState{}
	}
	return r.data.Frames[r.frame].Keyboard()
}

// PollMouse implements input.Poller and advances to the next frame.
func (r *Replayer) PollMouse() input.MouseState {
	if r.Done() {
		return r.idleMouse()
	}
	ms := r.data.Frames[r.frame].Mouse()
	r.frame++
	return ms
}

// SetMousePosition implements input.Poller. Recorded frames already carry
// the moved position, so nothing is applied here.
func (r *Replayer) SetMousePosition(x, y int) {}

func (r *Replayer) idleMouse() input.MouseState {
	if len(r.data.Frames) == 0 {
		return input.MouseState{}
	}
	last := r.data.Frames[len(r.data.Frames)-1]
	return input.MouseState{X: last.MX, Y: last.MY, WheelX: last.WX, WheelY: last.WY}
}

// Done reports whether every recorded frame has been served
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// ID returns the recorded session ID
func (r *Replayer) ID() string {
	return r.data.ID
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
