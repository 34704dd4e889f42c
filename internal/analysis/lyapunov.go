package analysis

import (
	"math"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/vecmath"
)

// LyapunovExponent estimates the largest Lyapunov exponent of a's flow
// starting from x0, in units of simulated time. A positive value indicates
// chaos.
//
// Two points d0 apart are advanced with a.Step; after every step the log of
// their separation growth is accumulated and the perturbed point is pulled
// back to distance d0 along the current separation.
func LyapunovExponent(a *attractor.Attractor, x0 vecmath.Vector3, dt float32, steps int, d0 float32) float64 {
	if steps <= 0 || d0 <= 0 {
		return 0
	}

	x := x0
	xp := x0.Add(vecmath.New(d0, 0, 0))

	sumLog := 0.0
	count := 0
	for i := 0; i < steps; i++ {
		x = a.Step(x, dt)
		xp = a.Step(xp, dt)

		diff := xp.Sub(x)
		sep := diff.Magnitude()
		if sep == 0 || !x.IsFinite() || !xp.IsFinite() {
			break
		}
		sumLog += math.Log(float64(sep / d0))
		count++

		diff.ScaleAssign(d0 / sep)
		xp = x.Add(diff)
	}

	if count == 0 {
		return 0
	}
	simulated := float64(count) * float64(dt) * float64(a.PhysicsScale())
	return sumLog / simulated
}
