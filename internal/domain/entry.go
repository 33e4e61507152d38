package domain

import "time"

// Entry is an immutable record of one completed timed interval.
// DurationSec is stored redundantly and always equals EndedAt − StartedAt
// floored to whole seconds.
type Entry struct {
	ID          int64
	ProjectID   int64
	StartedAt   time.Time
	EndedAt     time.Time
	DurationSec int64
	Note        string
}

// Duration returns the recorded duration as a time.Duration.
func (e *Entry) Duration() time.Duration {
	return time.Duration(e.DurationSec) * time.Second
}

// Totals are rolled-up entry durations for the two standard reporting
// windows: the current local calendar day and the current ISO week
// (Monday 00:00 local through now).
type Totals struct {
	TodaySeconds int64
	WeekSeconds  int64
}
