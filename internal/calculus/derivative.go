package calculus

import (
	"fmt"

	"github.com/san-kum/numkit/internal/numeric"
)

// Options controls a derivative evaluation. Newton iteration forwards the
// same options to every derivative it takes.
type Options struct {
	// Step is the forward-difference increment dx. It must be positive.
	Step numeric.Scalar
	// Precision is the number of significant digits carried.
	Precision int
	// Round discards the digits of the quotient finer than the step size
	// can resolve. Disable it for functions that are exact in decimal.
	Round bool
}

// DefaultStep is the forward-difference increment used by DefaultOptions.
var DefaultStep = numeric.New(1, -25)

func DefaultOptions() Options {
	return Options{
		Step:      DefaultStep,
		Precision: numeric.DefaultPrecision,
		Round:     true,
	}
}

// Validate reports the first violated precondition.
func (o Options) Validate() error {
	if o.Precision <= 0 {
		return fmt.Errorf("%w: precision must be positive, got %d", numeric.ErrInvalidArgument, o.Precision)
	}
	switch o.Step.Sign() {
	case 0:
		return fmt.Errorf("%w: step size is zero", numeric.ErrDivisionByZero)
	case -1:
		return fmt.Errorf("%w: step size must be positive, got %s", numeric.ErrInvalidArgument, o.Step)
	}
	return nil
}

// SignificantDigits returns floor(-log10(Step)), clamped to at least 1.
// It is the number of digits kept when Round is set.
func (o Options) SignificantDigits() int {
	// floor(-log10 dx) = -ceil(log10 dx)
	digits := -o.Step.Magnitude()
	if !o.Step.IsPowerOfTen() {
		digits--
	}
	if digits < 1 {
		return 1
	}
	return int(digits)
}

// Derivative estimates f'(x0) as (f(x0+dx) - f(x0)) / dx.
//
// A zero step fails with numeric.ErrDivisionByZero. Errors returned by f
// are wrapped with the evaluation point and keep their identity.
func Derivative(f numeric.Func, x0 numeric.Scalar, opts Options) (numeric.Scalar, error) {
	if err := opts.Validate(); err != nil {
		return numeric.Scalar{}, err
	}
	c, err := numeric.NewContext(opts.Precision)
	if err != nil {
		return numeric.Scalar{}, err
	}
	return derivative(c, f, x0, opts)
}

func derivative(c *numeric.Context, f numeric.Func, x0 numeric.Scalar, opts Options) (numeric.Scalar, error) {
	x1, err := c.Add(x0, opts.Step)
	if err != nil {
		return numeric.Scalar{}, err
	}

	y1, err := f(c, x1)
	if err != nil {
		return numeric.Scalar{}, fmt.Errorf("evaluate f(%s): %w", x1, err)
	}
	y0, err := f(c, x0)
	if err != nil {
		return numeric.Scalar{}, fmt.Errorf("evaluate f(%s): %w", x0, err)
	}

	diff, err := c.Sub(y1, y0)
	if err != nil {
		return numeric.Scalar{}, err
	}
	slope, err := c.Quo(diff, opts.Step)
	if err != nil {
		return numeric.Scalar{}, err
	}

	if !opts.Round {
		return slope, nil
	}
	return c.RoundSig(slope, opts.SignificantDigits())
}
