package attractor

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/san-kum/attractor/internal/trajectory"
	"github.com/san-kum/attractor/internal/vecmath"
)

const (
	DefaultTrailLength  = 50
	DefaultPhysicsScale = 0.2
)

// ErrInvalidPopulation is returned when an attractor is asked for no points.
var ErrInvalidPopulation = errors.New("attractor: population must be at least 1")

// Seeding box for initial points.
const (
	seedXYMin, seedXYMax = 0, 10
	seedZMin, seedZMax   = 10, 20
)

// Attractor advances a population of independent points through the Lorenz
// system with forward Euler steps.
type Attractor struct {
	trajectories []*trajectory.Trajectory
	params       Params
	physicsScale float32
	trailLength  int
	showPath     bool
	rng          *rand.Rand
	pcg          *rand.PCG // source behind rng, nil when set through WithRand
	ticks        uint64
}

type Option func(*Attractor)

// WithTrailLength sets how many points each trajectory retains.
func WithTrailLength(n int) Option { return func(a *Attractor) { a.trailLength = n } }

// WithPhysicsScale sets the factor between wall-clock delta and simulated time.
func WithPhysicsScale(s float32) Option { return func(a *Attractor) { a.physicsScale = s } }

func WithShowPath(show bool) Option { return func(a *Attractor) { a.showPath = show } }

// WithRand sets the source used to seed initial points.
func WithRand(r *rand.Rand) Option { return func(a *Attractor) { a.rng, a.pcg = r, nil } }

// WithSeed seeds initial points deterministically.
func WithSeed(seed uint64) Option {
	return func(a *Attractor) { a.usePCG(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func (a *Attractor) usePCG(p *rand.PCG) {
	a.pcg = p
	a.rng = rand.New(p)
}

// New creates populationSize trajectories with random starting points in
// x, y ∈ [0, 10), z ∈ [10, 20).
func New(populationSize int, params Params, opts ...Option) (*Attractor, error) {
	if populationSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPopulation, populationSize)
	}
	a := &Attractor{
		params:       params,
		physicsScale: DefaultPhysicsScale,
		trailLength:  DefaultTrailLength,
		showPath:     true,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.usePCG(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	a.trajectories = make([]*trajectory.Trajectory, populationSize)
	if err := a.seed(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Attractor) seed() error {
	for i := range a.trajectories {
		t, err := trajectory.New(a.randomPoint(), a.trailLength, a.showPath)
		if err != nil {
			return err
		}
		a.trajectories[i] = t
	}
	return nil
}

func (a *Attractor) randomPoint() vecmath.Vector3 {
	return vecmath.Vector3{
		X: uniform(a.rng, seedXYMin, seedXYMax),
		Y: uniform(a.rng, seedXYMin, seedXYMax),
		Z: uniform(a.rng, seedZMin, seedZMax),
	}
}

// uniform samples [lo, hi); float32 rounding may land on hi, which is pulled back.
func uniform(r *rand.Rand, lo, hi float32) float32 {
	v := lo + float32(r.Float64())*(hi-lo)
	if v >= hi {
		v = math.Nextafter32(hi, lo)
	}
	return v
}

// Step returns the point following p after an Euler step of dt seconds.
func (a *Attractor) Step(p vecmath.Vector3, dt float32) vecmath.Vector3 {
	d := a.params.Derive(p)
	d.ScaleAssign(dt * a.physicsScale)
	return p.Add(d)
}

// Update advances every trajectory by one step and appends the result.
// It does not allocate.
func (a *Attractor) Update(dt float32) {
	for _, t := range a.trajectories {
		t.AddPoint(a.Step(t.Last(), dt))
	}
	a.ticks++
}

// Reset reseeds every trajectory from the attractor's random source.
func (a *Attractor) Reset() {
	for _, t := range a.trajectories {
		show := t.ShowPath()
		*t = *must(trajectory.New(a.randomPoint(), a.trailLength, show))
	}
	a.ticks = 0
}

// SetShowPath toggles trail rendering for the whole population.
func (a *Attractor) SetShowPath(show bool) {
	a.showPath = show
	for _, t := range a.trajectories {
		t.SetShowPath(show)
	}
}

func (a *Attractor) Params() Params        { return a.params }
func (a *Attractor) PhysicsScale() float32 { return a.physicsScale }
func (a *Attractor) TrailLength() int      { return a.trailLength }
func (a *Attractor) ShowPath() bool        { return a.showPath }
func (a *Attractor) Len() int              { return len(a.trajectories) }
func (a *Attractor) Ticks() uint64         { return a.ticks }

func (a *Attractor) Trajectory(i int) *trajectory.Trajectory { return a.trajectories[i] }

// Trajectories exposes the population for read-only iteration.
func (a *Attractor) Trajectories() []*trajectory.Trajectory { return a.trajectories }

// Clone deep-copies the population. The clone shares no state with a. With
// a built-in source the clone copies its state, so both reset to the same
// points and a's sequence is untouched. A source given through WithRand
// cannot be copied; the clone is then seeded with two draws from it.
func (a *Attractor) Clone() *Attractor {
	c := *a
	c.trajectories = make([]*trajectory.Trajectory, len(a.trajectories))
	for i, t := range a.trajectories {
		c.trajectories[i] = t.Clone()
	}
	if a.pcg != nil {
		p := *a.pcg
		c.usePCG(&p)
	} else {
		c.rng = rand.New(rand.NewPCG(a.rng.Uint64(), a.rng.Uint64()))
	}
	return &c
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
