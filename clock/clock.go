// Package clock provides the time source consumed by the store.
//
// Time is an unsigned count of units since an arbitrary epoch. The store never reads
// wall-clock time itself; it only asks its Clock.
package clock

//go:generate mockgen -source=clock.go -destination=mock/clock.go -package=mock

import (
	"sync/atomic"
	"time"
)

// Clock returns the current time.
// Implementations must be monotonic non-decreasing; a clock that moves backwards
// resurrects entries that were already considered expired.
type Clock interface {
	Now() uint64
}

// Func adapts an ordinary function to the Clock interface.
type Func func() uint64

// Now calls f.
func (f Func) Now() uint64 {
	return f()
}

// System returns a Clock counting unix seconds.
func System() Clock {
	return Func(func() uint64 {
		return uint64(time.Now().Unix())
	})
}

// make sure Manual implements the Clock interface
var _ Clock = (*Manual)(nil)

// Manual is a clock that only moves when told to.
type Manual struct {
	t atomic.Uint64
}

// NewManual returns a Manual clock starting at t.
func NewManual(t uint64) *Manual {
	m := &Manual{}
	m.t.Store(t)

	return m
}

func (m *Manual) Now() uint64 {
	return m.t.Load()
}

// Set moves the clock to t.
func (m *Manual) Set(t uint64) {
	m.t.Store(t)
}

// Advance moves the clock forward by d units.
func (m *Manual) Advance(d uint64) {
	m.t.Add(d)
}
