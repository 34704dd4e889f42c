// Package driver runs the frame loop: it gates physics updates on the clock
// and hands every frame to a render sink.
package driver

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/clock"
	"github.com/san-kum/attractor/internal/render"
)

// StallFactor is how many intervals a single delta may span before it is
// logged as a stall.
const StallFactor = 10

type Driver struct {
	attractor *attractor.Attractor
	renderer  render.Renderer
	clock     clock.Clock
	gate      *clock.Gate
	logger    *log.Logger
	paused    bool
	lastDt    time.Duration
}

type Option func(*Driver)

func WithClock(c clock.Clock) Option      { return func(d *Driver) { d.clock = c } }
func WithLogger(l *log.Logger) Option     { return func(d *Driver) { d.logger = l } }
func WithInterval(i time.Duration) Option { return func(d *Driver) { d.gate = clock.NewGate(i) } }

func New(a *attractor.Attractor, r render.Renderer, opts ...Option) *Driver {
	d := &Driver{
		attractor: a,
		renderer:  r,
		gate:      clock.NewGate(clock.DefaultInterval),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.clock == nil {
		d.clock = clock.NewWall()
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	d.gate.Start(d.clock.Now())
	return d
}

// Advance runs at most one physics step and reports whether it did.
func (d *Driver) Advance() bool {
	dt, ok := d.gate.Tick(d.clock.Now())
	if !ok {
		return false
	}
	if d.paused {
		return false
	}
	if dt > StallFactor*d.gate.Interval {
		d.logger.Debug("frame stall", "dt", dt, "interval", d.gate.Interval)
	}
	d.lastDt = dt
	d.attractor.Update(float32(dt.Seconds()))
	return true
}

// Frame advances the simulation if the gate allows and draws into sink.
// Paused drivers still draw.
func (d *Driver) Frame(sink render.Sink) bool {
	stepped := d.Advance()
	d.renderer.Draw(sink, d.attractor)
	return stepped
}

func (d *Driver) Pause()                { d.paused = true }
func (d *Driver) Resume()               { d.paused = false }
func (d *Driver) TogglePause()          { d.paused = !d.paused }
func (d *Driver) Paused() bool          { return d.paused }
func (d *Driver) LastDt() time.Duration { return d.lastDt }

// TogglePaths flips trail rendering for every trajectory.
func (d *Driver) TogglePaths() { d.attractor.SetShowPath(!d.attractor.ShowPath()) }

// Reset reseeds the population and restarts the gate.
func (d *Driver) Reset() {
	d.attractor.Reset()
	d.gate.Reset()
	d.gate.Start(d.clock.Now())
	d.logger.Info("simulation reset", "population", d.attractor.Len())
}

func (d *Driver) Attractor() *attractor.Attractor { return d.attractor }
func (d *Driver) Renderer() render.Renderer       { return d.renderer }
func (d *Driver) Interval() time.Duration         { return d.gate.Interval }
