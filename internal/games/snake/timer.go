package snake

import (
	"time"

	"github.com/vovakirdan/brickgame/internal/policy"
)

// Timer gates moves on wall-clock time. It keeps the leveled base
// interval apart from the effective one so a speed-up can be released
// without losing the level pace.
type Timer struct {
	now      func() time.Time
	last     time.Time
	base     time.Duration
	interval time.Duration
	boosted  bool
	running  bool
}

// NewTimer creates a stopped timer at the level 1 interval.
func NewTimer(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	t := &Timer{now: now}
	t.Reset()
	return t
}

// Reset stops the timer and restores the level 1 interval.
func (t *Timer) Reset() {
	t.base = policy.SnakeBaseInterval
	t.interval = t.base
	t.boosted = false
	t.running = false
}

// Start runs the timer from now.
func (t *Timer) Start() {
	t.running = true
	t.last = t.now()
}

// Stop halts the timer; Due reports false until the next Start.
func (t *Timer) Stop() {
	t.running = false
}

// Running reports whether the timer is started.
func (t *Timer) Running() bool {
	return t.running
}

// Due reports whether an interval has elapsed since the last move and,
// if so, moves the reference point to now.
func (t *Timer) Due() bool {
	if !t.running {
		return false
	}
	now := t.now()
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// SetBase changes the leveled interval. The effective interval follows
// unless the speed-up is held.
func (t *Timer) SetBase(d time.Duration) {
	t.base = d
	if !t.boosted {
		t.interval = d
	}
}

// Boost engages or releases the speed-up. Repeating a state is a no-op.
func (t *Timer) Boost(on bool) {
	switch {
	case on && !t.boosted:
		t.boosted = true
		t.interval = policy.SnakeBoostInterval
	case !on && t.boosted:
		t.boosted = false
		t.interval = t.base
	}
}

// Base returns the leveled interval.
func (t *Timer) Base() time.Duration {
	return t.base
}

// Interval returns the effective interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Boosted reports whether the speed-up is held.
func (t *Timer) Boosted() bool {
	return t.boosted
}
