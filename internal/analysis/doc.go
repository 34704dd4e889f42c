// Package analysis characterizes recorded and simulated Lorenz trajectories.
//
//   - [Summarize]: per-axis mean, deviation and range of a trace
//   - [PowerSpectrum] and [DominantFrequency]: spectral content of one axis
//   - [LyapunovExponent]: largest exponent via two-trajectory separation
//   - [RhoSweep]: z maxima across a range of rho, for bifurcation plots
//   - [PhasePortrait] and [PoincareSection]: 2D views of a trace
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(a, x0, dt, 20000, 1e-3)
//	if lambda > 0 {
//	    // chaotic
//	}
package analysis
