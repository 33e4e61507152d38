package testutil

import "time"

// FakeClock is a manually advanced clock for deterministic timer tests.
type FakeClock struct {
	now time.Time
}

// NewFakeClock starts a FakeClock at the given instant.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to the given instant.
func (c *FakeClock) Set(t time.Time) {
	c.now = t
}
