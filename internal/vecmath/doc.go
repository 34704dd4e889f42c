// Package vecmath provides the float32 [Vector3] value type used for
// attractor positions.
//
// All methods on a value receiver return new vectors; the *Assign methods
// mutate in place. Division by an exact zero panics with [ErrDivideByZero].
// [Vector3.Normalize] does not guard the zero vector and yields NaN
// components, matching plain IEEE-754 division.
package vecmath
