package attractor

import "github.com/san-kum/attractor/internal/vecmath"

// Params are the Lorenz system coefficients.
type Params struct {
	Sigma float32 `json:"sigma"`
	Rho   float32 `json:"rho"`
	Beta  float32 `json:"beta"`
}

// DefaultParams returns the classic chaotic regime.
func DefaultParams() Params { return Params{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0} }

// Derive calculates the Lorenz derivatives at p.
func (l Params) Derive(p vecmath.Vector3) vecmath.Vector3 {
	return vecmath.Vector3{
		X: l.Sigma * (p.Y - p.X),
		Y: p.X*(l.Rho-p.Z) - p.Y,
		Z: p.X*p.Y - l.Beta*p.Z,
	}
}

func (l Params) Map() map[string]float64 {
	return map[string]float64{"sigma": float64(l.Sigma), "rho": float64(l.Rho), "beta": float64(l.Beta)}
}
