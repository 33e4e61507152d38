// Package clock abstracts wall-clock access so timer and rollup logic stay
// deterministic in tests.
package clock

import "time"

// Clock returns the current instant. The tracker and report services take a
// Clock instead of calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// System reads the local wall clock. Day and week boundaries in this tool are
// local-time concepts, so no UTC conversion happens here.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
