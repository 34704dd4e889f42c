package clock

import "time"

// DefaultInterval is the reference physics refresh rate of 240 Hz.
const DefaultInterval = time.Second / 240

// Gate lets a step through once at least Interval has passed since the last
// accepted tick. The whole elapsed delta is handed to the caller: leftover
// time is not carried over and a stall is not subdivided, it simply shows up
// as one large delta.
type Gate struct {
	Interval time.Duration
	last     time.Duration
	started  bool
}

func NewGate(interval time.Duration) *Gate {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Gate{Interval: interval}
}

// Start sets the reference time without producing a step.
func (g *Gate) Start(now time.Duration) {
	g.last = now
	g.started = true
}

// Tick reports the delta since the last accepted tick and whether it reached
// the interval. The first call only starts the gate.
func (g *Gate) Tick(now time.Duration) (time.Duration, bool) {
	if !g.started {
		g.Start(now)
		return 0, false
	}
	dt := now - g.last
	if dt < g.Interval {
		return dt, false
	}
	g.last = now
	return dt, true
}

// Reset forgets the reference time.
func (g *Gate) Reset() { g.started = false }
