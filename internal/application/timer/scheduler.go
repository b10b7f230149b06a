// Package timer provides a tick-driven registry of recurring and delayed jobs.
//
// Every job of a session is registered on one Scheduler and runs from
// Tick in registration order, so each tick is deterministic. CancelAll
// stops the whole registry at once and is safe to call any number of times.
package timer

import "time"

// Handle identifies a registered job.
type Handle uint64

type job struct {
	id       Handle
	fn       func()
	interval uint64
	next     uint64
	once     bool
	done     bool
}

// Scheduler runs jobs on a fixed tick rate.
type Scheduler struct {
	tps       int
	tick      uint64
	jobs      []*job
	nextID    Handle
	cancelled bool
}

// New creates a scheduler running at tps ticks per second.
func New(tps int) *Scheduler {
	if tps <= 0 {
		tps = 60
	}
	return &Scheduler{tps: tps}
}

// TPS returns the tick rate.
func (s *Scheduler) TPS() int {
	return s.tps
}

// Ticks converts a duration to a whole number of ticks, rounding to nearest.
// Any positive duration is at least one tick.
func (s *Scheduler) Ticks(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	n := (uint64(d)*uint64(s.tps) + uint64(time.Second)/2) / uint64(time.Second)
	if n == 0 {
		n = 1
	}
	return n
}

// Every registers fn to run every interval ticks, first on the
// interval-th tick from now.
func (s *Scheduler) Every(interval uint64, fn func()) Handle {
	if interval == 0 {
		interval = 1
	}
	return s.add(&job{fn: fn, interval: interval, next: s.tick + interval})
}

// After registers fn to run once, delay ticks from now.
// A zero delay runs on the next tick.
func (s *Scheduler) After(delay uint64, fn func()) Handle {
	if delay == 0 {
		delay = 1
	}
	return s.add(&job{fn: fn, next: s.tick + delay, once: true})
}

func (s *Scheduler) add(j *job) Handle {
	if s.cancelled {
		return 0
	}
	s.nextID++
	j.id = s.nextID
	s.jobs = append(s.jobs, j)
	return j.id
}

// Cancel stops one job. Unknown handles are ignored.
func (s *Scheduler) Cancel(h Handle) {
	for _, j := range s.jobs {
		if j.id == h {
			j.done = true
			return
		}
	}
}

// Tick advances the clock by one tick and runs every due job.
// Jobs registered during a tick first run on a later tick.
// If a job cancels the scheduler, the remaining jobs of the tick are skipped.
func (s *Scheduler) Tick() {
	if s.cancelled {
		return
	}
	s.tick++

	n := len(s.jobs)
	for i := 0; i < n; i++ {
		j := s.jobs[i]
		if j.done || j.next > s.tick {
			continue
		}
		if j.once {
			j.done = true
		} else {
			j.next += j.interval
		}
		j.fn()
		if s.cancelled {
			return
		}
	}
	s.compact()
}

func (s *Scheduler) compact() {
	live := s.jobs[:0]
	for _, j := range s.jobs {
		if !j.done {
			live = append(live, j)
		}
	}
	for i := len(live); i < len(s.jobs); i++ {
		s.jobs[i] = nil
	}
	s.jobs = live
}

// CancelAll stops every job, including pending one-shot jobs.
// Later registrations are ignored.
func (s *Scheduler) CancelAll() {
	if s.cancelled {
		return
	}
	s.cancelled = true
	for _, j := range s.jobs {
		j.done = true
	}
	s.jobs = nil
}

// Cancelled reports whether CancelAll has been called.
func (s *Scheduler) Cancelled() bool {
	return s.cancelled
}

// Now returns the number of ticks run so far.
func (s *Scheduler) Now() uint64 {
	return s.tick
}

// Elapsed returns the simulated time since the scheduler started.
func (s *Scheduler) Elapsed() time.Duration {
	return time.Duration(s.tick) * time.Second / time.Duration(s.tps)
}

// Len returns the number of live jobs.
func (s *Scheduler) Len() int {
	return len(s.jobs)
}
