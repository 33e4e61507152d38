package service

import "errors"

var (
	// ErrTimerRunning is returned by Start when a session is already active.
	ErrTimerRunning = errors.New("timer already running")

	// ErrTimerNotRunning is returned by Stop when no session is active.
	ErrTimerNotRunning = errors.New("no timer running")
)
