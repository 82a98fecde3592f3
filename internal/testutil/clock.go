// Package testutil provides test doubles shared across packages.
package testutil

import "time"

// Clock is a manually advanced fake clock for deterministic timing tests.
type Clock struct {
	now time.Time
}

// NewClock creates a fake clock starting at the given instant.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time. Pass this method as a clock function.
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the fake time forward.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
