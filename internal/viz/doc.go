// Package viz renders Newton iterations in the terminal.
//
// [Stepper] is a Bubble Tea model that advances a root search one update
// at a time and shows the iterates, a residual graph and a sparkline.
//
// # Key Bindings
//
//	n/Space - Take one Newton step
//	a       - Run to the iteration limit
//	r       - Reset to the initial guess
//	q       - Quit
package viz
