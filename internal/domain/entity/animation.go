package entity

// Animation is an ordered list of sprite frame paths.
type Animation []string

// Animator selects frames by counter modulo the list length.
// One counter is shared by every list an entity plays, so switching
// lists keeps the phase instead of restarting at frame zero.
type Animator struct {
	counter int
	frame   string
}

// Play advances the counter and selects the frame from frames.
// An empty list keeps the previous frame.
func (a *Animator) Play(frames Animation) {
	if len(frames) == 0 {
		return
	}
	a.frame = frames[a.counter%len(frames)]
	a.counter++
}

// Show pins a single frame without touching the counter.
func (a *Animator) Show(frame string) {
	a.frame = frame
}

// Frame returns the current sprite path.
func (a *Animator) Frame() string {
	return a.frame
}

// Counter returns the number of Play calls since the last reset.
func (a *Animator) Counter() int {
	return a.counter
}

// SetCounter overrides the counter.
func (a *Animator) SetCounter(n int) {
	a.counter = n
}
