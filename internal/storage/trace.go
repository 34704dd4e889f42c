package storage

import (
	"time"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/vecmath"
)

// Sample is the current position of one trajectory at one tick.
type Sample struct {
	Tick       uint64          `json:"tick"`
	Time       float64         `json:"time"`
	Trajectory int             `json:"trajectory"`
	Position   vecmath.Vector3 `json:"position"`
}

// Trace is the sampled history of a headless run. It is an export only and
// is never fed back into a simulation.
type Trace struct {
	Samples []Sample `json:"samples"`
}

// Capture records the current point of every trajectory. Its signature
// matches driver.Observer.
func (t *Trace) Capture(tick uint64, elapsed time.Duration, a *attractor.Attractor) {
	for i, tr := range a.Trajectories() {
		t.Samples = append(t.Samples, Sample{
			Tick:       tick,
			Time:       elapsed.Seconds(),
			Trajectory: i,
			Position:   tr.Last(),
		})
	}
}

// Series returns one trajectory's samples in time order.
func (t *Trace) Series(trajectory int) []Sample {
	var out []Sample
	for _, s := range t.Samples {
		if s.Trajectory == trajectory {
			out = append(out, s)
		}
	}
	return out
}

// Axis extracts a coordinate (0 = x, 1 = y, 2 = z) from samples.
func Axis(samples []Sample, axis int) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		switch axis {
		case 0:
			out[i] = float64(s.Position.X)
		case 1:
			out[i] = float64(s.Position.Y)
		default:
			out[i] = float64(s.Position.Z)
		}
	}
	return out
}

// Trajectories returns the number of distinct trajectories in the trace.
func (t *Trace) Trajectories() int {
	n := 0
	for _, s := range t.Samples {
		if s.Trajectory+1 > n {
			n = s.Trajectory + 1
		}
	}
	return n
}
