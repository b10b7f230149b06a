package entity

// BarMode selects how a status bar maps its value to a frame index.
type BarMode int

const (
	// BarPercent buckets a 0..100 value into six frames.
	BarPercent BarMode = iota
	// BarAmount shows a count clamped to 0..5.
	BarAmount
)

// BarFrames is the number of frames every status bar image set has.
const BarFrames = 6

// StatusBar is a HUD projection of one value.
type StatusBar struct {
	X, Y          float64
	Width, Height float64
	Mode          BarMode
	Frames        Animation

	value int
	index int
}

// NewStatusBar creates a bar at a fixed screen position.
func NewStatusBar(x, y, w, h float64, mode BarMode, frames Animation) *StatusBar {
	return &StatusBar{X: x, Y: y, Width: w, Height: h, Mode: mode, Frames: frames}
}

// Set updates the projected value and recomputes the frame index.
func (s *StatusBar) Set(value int) {
	s.value = value
	switch s.Mode {
	case BarPercent:
		s.index = PercentIndex(value)
	case BarAmount:
		s.index = AmountIndex(value)
	}
}

// Value returns the last value set.
func (s *StatusBar) Value() int {
	return s.value
}

// Index returns the frame index in [0, BarFrames).
func (s *StatusBar) Index() int {
	return s.index
}

// Frame returns the sprite for the current index, or "" if none is configured.
func (s *StatusBar) Frame() string {
	if s.index < len(s.Frames) {
		return s.Frames[s.index]
	}
	return ""
}

// PercentIndex maps a percentage to a bar frame.
func PercentIndex(p int) int {
	switch {
	case p >= 100:
		return 5
	case p > 80:
		return 4
	case p > 60:
		return 3
	case p > 40:
		return 2
	case p > 20:
		return 1
	default:
		return 0
	}
}

// AmountIndex clamps a count to a bar frame.
func AmountIndex(n int) int {
	if n < 0 {
		return 0
	}
	if n > BarFrames-1 {
		return BarFrames - 1
	}
	return n
}
