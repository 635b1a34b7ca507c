package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/mglib/internal/application/input"
)

// Recorder is an input.Poller that forwards to another poller and records
// every frame it polls. A frame is complete once both the keyboard and
// the mouse have been polled, which is the order input.Manager uses.
type Recorder struct {
	source    input.Poller
	data      ReplayData
	keyboard  input.KeyboardState
	recording bool
}

// NewRecorder creates a recorder over source
func NewRecorder(source input.Poller) *Recorder {
	return &Recorder{
		source:    source,
		data:      NewReplayData(),
		recording: true,
	}
}

// PollKeyboard implements input.Poller.
func (r *Recorder) PollKeyboard() input.KeyboardState {
	r.keyboard = r.source.PollKeyboard()
	return r.keyboard
}

// PollMouse implements input.Poller and completes the current frame.
func (r *Recorder) PollMouse() input.MouseState {
	ms := r.source.PollMouse()
	if r.recording {
		r.data.Frames = append(r.data.Frames, newFrameInput(len(r.data.Frames), r.keyboard, ms))
	}
	return ms
}

// SetMousePosition implements input.Poller. The moved position shows up in
// the next recorded frame.
func (r *Recorder) SetMousePosition(x, y int) {
	r.source.SetMousePosition(x, y)
}

// Write encodes the replay data as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Write(file)
}

// Stop stops recording; polls are still forwarded
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
