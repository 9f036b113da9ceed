package core

import (
	"math"
	"time"
)

// Session is the timer engine for a single focus sitting. It tracks the
// configured total, the accumulated elapsed time, and the running flag.
//
// The engine owns no goroutine and no ticker: every method that depends on
// the clock takes now explicitly, and the caller drives it once per frame
// with Advance. This keeps the engine deterministic under test and leaves
// scheduling to the UI loop.
type Session struct {
	total time.Duration
	// accum is the elapsed time banked across previous run segments, so a
	// resume continues from where the pause left off.
	accum   time.Duration
	anchor  time.Time
	running bool
	done    bool
}

// NewSession creates an idle session with the given total duration and zero
// elapsed time.
func NewSession(total time.Duration) *Session {
	return &Session{total: total}
}

// Start transitions to Running, anchoring the current run segment at now.
// Starting a session that is already running, or one that has completed and
// not been reset, is a no-op.
func (s *Session) Start(now time.Time) {
	if s.running || s.done {
		return
	}
	s.anchor = now
	s.running = true
}

// Pause banks the elapsed time of the current run segment and stops the
// session. Pausing an idle session is a no-op.
func (s *Session) Pause(now time.Time) {
	if !s.running {
		return
	}
	s.accum = s.elapsedAt(now)
	s.running = false
}

// Reset returns the session to Idle with zero elapsed time. The configured
// total is untouched.
func (s *Session) Reset() {
	s.running = false
	s.done = false
	s.accum = 0
}

// SetTotal changes the configured duration. Changing the duration always
// implies a Reset.
func (s *Session) SetTotal(total time.Duration) {
	s.total = total
	s.Reset()
}

// Advance performs one frame step. It reports true exactly once per run, on
// the step where elapsed reaches the total: elapsed is clamped to the total,
// the session stops, and the run is marked completed until the next Reset or
// SetTotal. Advancing an idle session reports false.
func (s *Session) Advance(now time.Time) bool {
	if !s.running {
		return false
	}
	if s.accum+now.Sub(s.anchor) < s.total {
		return false
	}
	s.accum = s.total
	s.running = false
	s.done = true
	return true
}

// elapsedAt returns the elapsed time at now, clamped to [0, total].
func (s *Session) elapsedAt(now time.Time) time.Duration {
	e := s.accum
	if s.running {
		e += now.Sub(s.anchor)
	}
	if e < 0 {
		e = 0
	}
	if e > s.total {
		e = s.total
	}
	return e
}

// Elapsed returns the elapsed time at now, clamped to [0, total].
func (s *Session) Elapsed(now time.Time) time.Duration {
	return s.elapsedAt(now)
}

// Remaining returns the displayed countdown in whole seconds:
// ceil(total − elapsed), clamped to ≥ 0. It reaches 0 exactly when the
// elapsed time has reached the total.
func (s *Session) Remaining(now time.Time) int {
	rem := s.total - s.elapsedAt(now)
	if rem <= 0 {
		return 0
	}
	return int(math.Ceil(rem.Seconds()))
}

// Fraction returns elapsed/total clamped to [0,1], or 0 when the total is
// not positive.
func (s *Session) Fraction(now time.Time) float64 {
	if s.total <= 0 {
		return 0
	}
	return s.elapsedAt(now).Seconds() / s.total.Seconds()
}

// Running reports whether the frame loop should be driving this session.
func (s *Session) Running() bool {
	return s.running
}

// Completed reports whether the current run finished naturally. It stays
// true until Reset or SetTotal.
func (s *Session) Completed() bool {
	return s.done
}

// Total returns the configured duration.
func (s *Session) Total() time.Duration {
	return s.total
}
