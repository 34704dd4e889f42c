// Package trajectory keeps the bounded recent history of one simulated point.
package trajectory

import (
	"errors"
	"fmt"

	"github.com/san-kum/attractor/internal/vecmath"
)

// ErrInvalidCapacity is returned when a trajectory is asked to hold no points.
var ErrInvalidCapacity = errors.New("trajectory: max points must be at least 1")

// Trajectory is a fixed-capacity ring of positions, oldest to newest.
// It always holds at least the point it was created with.
type Trajectory struct {
	data     []vecmath.Vector3
	head     int // index of the oldest point
	size     int
	showPath bool
}

// New creates a trajectory seeded with initial. maxPoints below 1 is rejected.
func New(initial vecmath.Vector3, maxPoints int, showPath bool) (*Trajectory, error) {
	if maxPoints < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxPoints)
	}
	t := &Trajectory{
		data:     make([]vecmath.Vector3, maxPoints),
		size:     1,
		showPath: showPath,
	}
	t.data[0] = initial
	return t, nil
}

// AddPoint appends p, evicting the oldest point once the trajectory is full.
func (t *Trajectory) AddPoint(p vecmath.Vector3) {
	n := len(t.data)
	if t.size < n {
		t.data[(t.head+t.size)%n] = p
		t.size++
		return
	}
	t.data[t.head] = p
	t.head = (t.head + 1) % n
}

func (t *Trajectory) Len() int       { return t.size }
func (t *Trajectory) Cap() int       { return len(t.data) }
func (t *Trajectory) ShowPath() bool { return t.showPath }

func (t *Trajectory) SetShowPath(show bool) { t.showPath = show }

// At returns the i-th retained point, 0 being the oldest.
func (t *Trajectory) At(i int) vecmath.Vector3 {
	if i < 0 || i >= t.size {
		panic(fmt.Sprintf("trajectory: index %d out of range [0, %d)", i, t.size))
	}
	return t.data[(t.head+i)%len(t.data)]
}

// Last returns the current position.
func (t *Trajectory) Last() vecmath.Vector3 {
	return t.data[(t.head+t.size-1)%len(t.data)]
}

// Points appends the retained points to dst in insertion order and returns
// the extended slice. Passing dst[:0] from a previous call avoids allocation.
func (t *Trajectory) Points(dst []vecmath.Vector3) []vecmath.Vector3 {
	n := len(t.data)
	end := t.head + t.size
	if end <= n {
		return append(dst, t.data[t.head:end]...)
	}
	dst = append(dst, t.data[t.head:]...)
	return append(dst, t.data[:end-n]...)
}

// Each calls fn for every retained point, oldest first.
func (t *Trajectory) Each(fn func(i int, p vecmath.Vector3)) {
	n := len(t.data)
	for i := 0; i < t.size; i++ {
		fn(i, t.data[(t.head+i)%n])
	}
}

// Clone returns an independent copy.
func (t *Trajectory) Clone() *Trajectory {
	c := *t
	c.data = make([]vecmath.Vector3, len(t.data))
	copy(c.data, t.data)
	return &c
}
