package analysis

import (
	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/vecmath"
)

// BifurcationPoint holds the distinct z maxima reached at one rho.
type BifurcationPoint struct {
	Rho    float64
	Maxima []float64
}

type SweepConfig struct {
	RhoMin, RhoMax float32
	Steps          int
	Dt             float32
	Transient      int // steps discarded before recording
	Record         int
	Start          vecmath.Vector3
}

// RhoSweep varies rho over [RhoMin, RhoMax] keeping sigma and beta from base
// and records the local maxima of z for each value. Periodic orbits show a
// handful of distinct maxima; chaos fills a band.
func RhoSweep(base attractor.Params, physicsScale float32, cfg SweepConfig) []BifurcationPoint {
	steps := cfg.Steps
	if steps <= 1 {
		steps = 2
	}
	span := (cfg.RhoMax - cfg.RhoMin) / float32(steps-1)

	results := make([]BifurcationPoint, 0, steps)
	for i := 0; i < steps; i++ {
		params := base
		params.Rho = cfg.RhoMin + float32(i)*span

		a, err := attractor.New(1, params, attractor.WithPhysicsScale(physicsScale), attractor.WithSeed(0))
		if err != nil {
			return results
		}

		p := cfg.Start
		for k := 0; k < cfg.Transient; k++ {
			p = a.Step(p, cfg.Dt)
		}

		maxima := make([]float64, 0, 16)
		seen := make(map[int]bool)
		prev, curr := p, a.Step(p, cfg.Dt)
		for k := 0; k < cfg.Record; k++ {
			next := a.Step(curr, cfg.Dt)
			if curr.Z > prev.Z && curr.Z >= next.Z {
				key := int(curr.Z * 100)
				if !seen[key] {
					seen[key] = true
					maxima = append(maxima, float64(curr.Z))
				}
			}
			prev, curr = curr, next
		}

		results = append(results, BifurcationPoint{Rho: float64(params.Rho), Maxima: maxima})
	}
	return results
}

// BifurcationToASCII plots rho on the horizontal axis against z maxima.
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	var pts []Point
	for _, b := range data {
		for _, v := range b.Maxima {
			pts = append(pts, Point{X: b.Rho, Y: v})
		}
	}
	if len(pts) == 0 {
		return ""
	}
	return plotASCII(pts, width, height, false)
}
