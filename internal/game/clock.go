package game

import (
	"time"
)

// Clock derives elapsed song time from frame timestamps. The start
// instant is latched on the first Elapsed call after a Reset, so the
// first rendered frame of a session is at elapsed zero. It is started
// together with the audio stream but never resynchronized against it.
type Clock struct {
	start time.Time
}

func (c *Clock) Reset() {
	c.start = time.Time{}
}

func (c *Clock) Started() bool {
	return !c.start.IsZero()
}

func (c *Clock) Elapsed(now time.Time) time.Duration {
	if c.start.IsZero() {
		c.start = now
		return 0
	}
	return now.Sub(c.start)
}
