// Package calculus provides finite-difference differentiation and Newton
// root finding over [numeric.Scalar] values.
//
//   - [Derivative]: forward-difference derivative with noise rounding
//   - [FindRoot]: fixed-iteration Newton's method
//   - [Trace]: Newton's method recording every iterate
//   - [Sample]: f and f' over a uniform grid, evaluated concurrently
//
// # Example
//
//	f := func(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
//	    sq, err := c.Mul(x, x)
//	    if err != nil {
//	        return numeric.Scalar{}, err
//	    }
//	    return c.Sub(sq, numeric.FromInt(4))
//	}
//	root, err := calculus.FindRoot(f, numeric.FromInt(3), 10, calculus.DefaultOptions())
//
// Every call builds its own precision context, so all functions here are
// safe for concurrent use provided f is.
package calculus
