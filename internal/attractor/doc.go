// Package attractor integrates a population of independent points through
// the Lorenz system:
//
//	dx/dt = sigma * (y - x)
//	dy/dt = x * (rho - z) - y
//	dz/dt = x*y - beta*z
//
// Each [Attractor.Update] performs one explicit Euler step per point,
//
//	next = current + derivative(current) * dt * physicsScale
//
// and appends the result to that point's [trajectory.Trajectory]. The
// physics scale decouples wall-clock delta from simulated time so trails
// remain visible at interactive frame rates.
//
// Points never interact, so iteration order is irrelevant and the update
// runs without allocating. Only the initial seeding is random; stepping is
// deterministic.
package attractor
