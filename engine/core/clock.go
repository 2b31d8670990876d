package core

import "time"

// Clock returns seconds elapsed since an arbitrary, fixed reference point.
type Clock interface {
	Now() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) Now() float64 { return f() }

type monotonicClock struct{ start time.Time }

// NewClock returns a monotonic clock anchored at the moment of the call.
func NewClock() Clock { return monotonicClock{start: time.Now()} }

func (c monotonicClock) Now() float64 { return time.Since(c.start).Seconds() }
