package core

import "time"

// Clock reports monotonic time elapsed since an arbitrary fixed origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures wall time elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose origin is the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the monotonic time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration { return time.Since(c.start) }

// Ticker tracks an absolute deadline for the next generation. It is polled
// once per frame rather than firing callbacks.
type Ticker struct {
	interval time.Duration
	deadline time.Duration
}

// NewTicker constructs a Ticker whose first deadline is now, so the first
// poll after construction is already due.
func NewTicker(interval time.Duration, now time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval, deadline: now}
}

// Interval returns the fixed spacing between generations.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Deadline returns the absolute time of the next scheduled generation.
func (t *Ticker) Deadline() time.Duration { return t.deadline }

// Remaining returns deadline - now. Zero or negative means the tick is due.
func (t *Ticker) Remaining(now time.Duration) time.Duration { return t.deadline - now }

// Due reports whether the deadline has been reached.
func (t *Ticker) Due(now time.Duration) bool { return t.Remaining(now) <= 0 }

// Rearm schedules the next deadline one interval after now.
func (t *Ticker) Rearm(now time.Duration) { t.deadline = now + t.interval }
