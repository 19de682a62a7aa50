package numeric

import (
	"fmt"
	"math"
)

// Func is a function of one scalar. It receives the precision context of
// the call evaluating it and should do its arithmetic through c.
type Func func(c *Context, x Scalar) (Scalar, error)

// FloatFunc adapts a float64 function. The argument is rounded to float64
// before fn runs, so results carry float64 round-off; pair it with a step
// size float64 can resolve and with rounding enabled.
//
// NaN or infinite results are reported as ErrDomain.
func FloatFunc(fn func(float64) float64) Func {
	return func(_ *Context, x Scalar) (Scalar, error) {
		in := x.Float64()
		out := fn(in)
		if math.IsNaN(out) || math.IsInf(out, 0) {
			return Scalar{}, fmt.Errorf("%w: f(%v) = %v", ErrDomain, in, out)
		}
		return FromFloat(out)
	}
}
