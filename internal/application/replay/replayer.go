package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Left  bool
	Right bool
	Jump  bool
	Throw bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return decode(file)
}

// LoadReplayFS loads replay data from a file in fsys
func LoadReplayFS(fsys fs.FS, filename string) (*ReplayData, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return decode(file)
}

func decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Left:  fi.L,
		Right: fi.R,
		Jump:  fi.J,
		Throw: fi.T,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewReplayData creates empty replay data for a new session
func NewReplayData(seed int64, level string) ReplayData {
	return ReplayData{
		Version:   FormatVersion,
		SessionID: uuid.NewString(),
		Seed:      seed,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
	}
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, level string) ReplayData {
	data := NewReplayData(12345, level)
	for i := 0; i < frames; i++ {
		data.Frames = append(data.Frames, FrameInput{F: i})
	}
	return data
}
