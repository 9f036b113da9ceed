package core

import "github.com/flowstate-dev/focusring/pkg/models"

// Durations is the fixed set of selectable session lengths in minutes, in
// the order the UI cycles through them. The set is intentionally not
// configurable.
var Durations = []int{15, 25, 30, 45, 60, 90, 120}

// breakTable keys each preset duration to its recommended break lengths in
// minutes. The options offered to the user are exactly the row for the
// current duration plus the explicit no-break choice.
var breakTable = map[int][]int{
	15:  {3, 5},
	25:  {5, 10},
	30:  {5, 10},
	45:  {10, 15},
	60:  {10, 15},
	90:  {15, 20},
	120: {20, 30},
}

// BreakOptions returns the selectable break lengths for a session duration:
// the recommendation row for that duration followed by models.BreakNone.
// A duration outside the preset set gets only the no-break option.
func BreakOptions(durationMin int) []int {
	row := breakTable[durationMin]
	opts := make([]int, 0, len(row)+1)
	opts = append(opts, row...)
	return append(opts, models.BreakNone)
}

// IsPresetDuration reports whether minutes is a member of the fixed
// duration set.
func IsPresetDuration(minutes int) bool {
	for _, d := range Durations {
		if d == minutes {
			return true
		}
	}
	return false
}

// DurationIndex returns the position of minutes in Durations, or 0 when it
// is not a member.
func DurationIndex(minutes int) int {
	for i, d := range Durations {
		if d == minutes {
			return i
		}
	}
	return 0
}
