package models

// BreakNone is the explicit "no break" choice. It is also the value a break
// selection returns to when the session duration changes.
const BreakNone = 0

// SessionConfig holds the user-selected session parameters. Durations come
// from the fixed preset set; Break is a length in minutes from the
// recommendation row for the current duration, or BreakNone.
type SessionConfig struct {
	// DurationMin is the selected session length in minutes.
	DurationMin int
	// BreakMin is the selected break length in minutes, BreakNone if unset.
	BreakMin int
}

// SessionStats accumulates per-process session outcomes. Nothing here
// survives a restart.
type SessionStats struct {
	// Completed counts natural (non-reset) session completions.
	Completed int
	// FocusMinutes sums the minutes of completed sessions.
	FocusMinutes int
}
