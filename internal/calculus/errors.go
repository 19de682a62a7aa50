package calculus

import (
	"fmt"

	"github.com/san-kum/numkit/internal/numeric"
)

// ErrStationary reports a forward difference that vanished at the working
// precision. It matches numeric.ErrDivisionByZero.
var ErrStationary = fmt.Errorf("%w: derivative vanished", numeric.ErrDivisionByZero)

// IterationError wraps a failure with the Newton iteration it occurred in.
type IterationError struct {
	Iteration int
	X         numeric.Scalar
	Wrapped   error
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("newton iteration %d (x=%s): %v", e.Iteration, e.X, e.Wrapped)
}

func (e *IterationError) Unwrap() error {
	return e.Wrapped
}
