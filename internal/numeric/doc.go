// Package numeric provides the arbitrary-precision scalar used by the
// numerical routines in this module.
//
// The package defines:
//
//   - [Scalar]: an immutable decimal value
//   - [Context]: a precision context passed explicitly to every operation
//   - [Func]: a caller-supplied function of one scalar
//   - [Snap]: the noise-suppression rule applied to float64 results
//
// # Precision
//
// There is no global precision setting. Each top-level call builds its own
// [Context] and hands it to the functions it evaluates, so concurrent
// callers never observe each other's precision:
//
//	c, _ := numeric.NewContext(56)
//	y, err := c.Mul(x, x)
package numeric
