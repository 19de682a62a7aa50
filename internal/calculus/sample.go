package calculus

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/numkit/internal/numeric"
)

// GridPoint is f and f' at one grid point.
type GridPoint struct {
	X     float64
	Value float64
	Slope float64
}

// Sample evaluates f and its derivative at n evenly spaced points of
// [from, to], both ends included. Points are evaluated concurrently; the
// first error cancels the remaining work.
func Sample(ctx context.Context, f numeric.Func, from, to float64, n int, opts Options) ([]GridPoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 sample points, got %d", numeric.ErrInvalidArgument, n)
	}
	if !(from < to) {
		return nil, fmt.Errorf("%w: empty interval [%g, %g]", numeric.ErrInvalidArgument, from, to)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := make([]GridPoint, n)
	h := (to - from) / float64(n-1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			xf := from + float64(i)*h
			if i == n-1 {
				xf = to
			}
			x, err := numeric.FromFloat(xf)
			if err != nil {
				return err
			}
			c, err := numeric.NewContext(opts.Precision)
			if err != nil {
				return err
			}
			y, err := f(c, x)
			if err != nil {
				return fmt.Errorf("evaluate f(%s): %w", x, err)
			}
			dy, err := derivative(c, f, x, opts)
			if err != nil {
				return err
			}
			out[i] = GridPoint{X: xf, Value: y.Float64(), Slope: dy.Float64()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
