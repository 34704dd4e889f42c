// Package clock supplies elapsed time to the simulation loop and gates
// physics updates to a fixed refresh interval.
package clock

import "time"

// Clock reports monotonically increasing elapsed time.
type Clock interface {
	Now() time.Duration
}

// Wall measures elapsed time since it was created.
type Wall struct{ start time.Time }

func NewWall() *Wall { return &Wall{start: time.Now()} }

func (w *Wall) Now() time.Duration { return time.Since(w.start) }

// Manual is advanced explicitly; used by headless runs and tests.
type Manual struct{ now time.Duration }

func (m *Manual) Now() time.Duration { return m.now }

func (m *Manual) Advance(d time.Duration) { m.now += d }

func (m *Manual) Set(d time.Duration) { m.now = d }
