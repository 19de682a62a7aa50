package calculus

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/san-kum/numkit/internal/numeric"
)

// Iterate records one Newton update x → Next = x - FX/DFX.
type Iterate struct {
	N    int
	X    numeric.Scalar
	FX   numeric.Scalar
	DFX  numeric.Scalar
	Next numeric.Scalar
}

// Result is the outcome of a traced Newton run.
type Result struct {
	Guess    numeric.Scalar
	Root     numeric.Scalar
	Iterates []Iterate
}

// FindRoot applies exactly iterations Newton updates starting at guess and
// returns the final estimate. There is no convergence test: the caller picks
// the iteration budget and is responsible for a guess away from stationary
// points.
//
// A zero derivative fails with an *IterationError wrapping
// numeric.ErrDivisionByZero.
func FindRoot(f numeric.Func, guess numeric.Scalar, iterations int, opts Options) (numeric.Scalar, error) {
	res, err := run(f, guess, iterations, opts, false)
	if err != nil {
		return numeric.Scalar{}, err
	}
	return res.Root, nil
}

// Trace runs the same iteration as FindRoot and keeps every iterate.
func Trace(f numeric.Func, guess numeric.Scalar, iterations int, opts Options) (*Result, error) {
	return run(f, guess, iterations, opts, true)
}

// NewtonStep performs a single update from x. n is only used to label the
// iterate and any error.
func NewtonStep(f numeric.Func, x numeric.Scalar, n int, opts Options) (Iterate, error) {
	if err := opts.Validate(); err != nil {
		return Iterate{}, err
	}
	c, err := numeric.NewContext(opts.Precision)
	if err != nil {
		return Iterate{}, err
	}
	return step(c, f, x, n, opts)
}

func run(f numeric.Func, guess numeric.Scalar, iterations int, opts Options, keep bool) (*Result, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iteration count must be non-negative, got %d", numeric.ErrInvalidArgument, iterations)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c, err := numeric.NewContext(opts.Precision)
	if err != nil {
		return nil, err
	}

	res := &Result{Guess: guess, Root: guess}
	if keep {
		res.Iterates = make([]Iterate, 0, iterations)
	}

	x := guess
	for n := 1; n <= iterations; n++ {
		it, err := step(c, f, x, n, opts)
		if err != nil {
			return nil, err
		}
		slog.Debug("newton iteration",
			"n", n,
			"x", it.X.String(),
			"fx", it.FX.String(),
			"dfx", it.DFX.String())
		if keep {
			res.Iterates = append(res.Iterates, it)
		}
		x = it.Next
	}

	res.Root = x
	return res, nil
}

func step(c *numeric.Context, f numeric.Func, x numeric.Scalar, n int, opts Options) (Iterate, error) {
	fail := func(err error) (Iterate, error) {
		return Iterate{}, &IterationError{Iteration: n, X: x, Wrapped: err}
	}

	fx, err := f(c, x)
	if err != nil {
		return fail(fmt.Errorf("evaluate f(%s): %w", x, err))
	}
	dfx, err := derivative(c, f, x, opts)
	if err != nil {
		return fail(err)
	}
	if dfx.IsZero() {
		return fail(ErrStationary)
	}

	delta, err := c.Quo(fx, dfx)
	if err != nil {
		return fail(err)
	}
	next, err := c.Sub(x, delta)
	if err != nil {
		return fail(err)
	}

	return Iterate{N: n, X: x, FX: fx, DFX: dfx, Next: next}, nil
}

// IsStationary reports whether err came from a vanishing derivative, as
// opposed to f itself dividing by zero.
func IsStationary(err error) bool {
	return errors.Is(err, ErrStationary)
}
