package domain

import "time"

// Session is the transient record of a currently running timer. It lives only
// in memory; stopping the timer converts it into an Entry. ID is a uuid
// handle used to correlate log events, never persisted.
type Session struct {
	ID          string
	ProjectID   int64
	ProjectName string
	StartedAt   time.Time
}
