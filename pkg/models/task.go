package models

import "time"

// Task is a single checklist entry for the current sitting. Tasks live only
// in memory for the lifetime of the process; there is no persistence and no
// delete affordance.
type Task struct {
	ID      string
	Text    string
	Done    bool
	Created time.Time
}
