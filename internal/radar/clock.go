package radar

import "time"

// Clock measures monotonic time since start, excluding paused spans.
// Now never returns 0, so a recorded hit is always distinguishable from
// "never hit".
type Clock struct {
	start    time.Time
	pausedAt time.Time
	paused   time.Duration
	now      func() time.Time
}

// NewClock starts a clock at the current time.
func NewClock() *Clock {
	return newClockWith(time.Now)
}

func newClockWith(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Now returns the running time since start.
func (c *Clock) Now() time.Duration {
	ref := c.now()
	if !c.pausedAt.IsZero() {
		ref = c.pausedAt
	}
	d := ref.Sub(c.start) - c.paused
	if d <= 0 {
		d = 1
	}
	return d
}

// Pause freezes Now until Resume.
func (c *Clock) Pause() {
	if c.pausedAt.IsZero() {
		c.pausedAt = c.now()
	}
}

// Resume continues a paused clock.
func (c *Clock) Resume() {
	if c.pausedAt.IsZero() {
		return
	}
	c.paused += c.now().Sub(c.pausedAt)
	c.pausedAt = time.Time{}
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return !c.pausedAt.IsZero()
}
