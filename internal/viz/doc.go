// Package viz shows a running attractor in the terminal.
//
// [TermSink] implements the render sink on a braille [Canvas]: every cell
// is 2x4 sub-pixels and is coloured by the brightest point drawn into it,
// blended between the theme's background and trail colours. [Model] is the
// Bubble Tea program that ticks the driver and draws the status panel.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reseed every point
//	P     - Toggle trails
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q/Esc - Quit
package viz
