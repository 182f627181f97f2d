// Package frameloop drives an engine from wall-clock time: it decides how
// many motion steps are due per frame, measures the frame rate and composes
// the final image with markers and the FPS label.
//
// Nothing in this package is safe for concurrent use; each viewer owns one
// Driver.
package frameloop

import "time"

// maxCatchUp bounds the motion steps one frame may replay after a stall.
const maxCatchUp = 10

// Clock converts elapsed time into a number of fixed-interval steps.
// The first call to Due only starts the clock.
type Clock struct {
	every   time.Duration
	next    time.Time
	started bool
}

// NewClock creates a clock that fires once per every. A non-positive
// interval never fires.
func NewClock(every time.Duration) *Clock {
	return &Clock{every: every}
}

// Due returns how many steps have elapsed up to now and advances the clock
// past them. After a long stall at most maxCatchUp steps are reported and
// the remainder is dropped.
func (c *Clock) Due(now time.Time) int {
	if c.every <= 0 {
		return 0
	}
	if !c.started {
		c.started = true
		c.next = now.Add(c.every)
		return 0
	}
	if now.Before(c.next) {
		return 0
	}
	n := int(now.Sub(c.next)/c.every) + 1
	if n > maxCatchUp {
		c.next = now.Add(c.every)
		return maxCatchUp
	}
	c.next = c.next.Add(time.Duration(n) * c.every)
	return n
}
