package coords

import (
	"fmt"
	"math"

	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/series"
)

// ToCartesian converts a radius and n-1 angles to an n-dimensional point.
// With no angles the result is the one-dimensional point [r].
func ToCartesian(r float64, angles []float64) (Point, error) {
	if err := checkFinite("radius", r); err != nil {
		return nil, err
	}
	if err := checkFinite("angle", angles...); err != nil {
		return nil, err
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: negative radius %v", numeric.ErrInvalidArgument, r)
	}

	n := len(angles) + 1
	if n == 1 {
		return Point{numeric.Snap(r)}, nil
	}

	phi := make([]float64, len(angles))
	for i, a := range angles {
		if i == len(angles)-1 {
			phi[i] = NormalizeAzimuth(a)
		} else {
			phi[i] = NormalizePolar(a)
		}
	}

	x := make(Point, n)
	for i := 0; i < n; i++ {
		sines, err := series.RawProductFunc(phi, math.Sin, 0, i-1)
		if err != nil {
			return nil, err
		}
		v := r * sines
		if i < n-1 {
			v *= math.Cos(phi[i])
		}
		x[i] = numeric.Snap(v)
	}
	return x, nil
}

// ToSpherical converts an n-dimensional point to a radius and n-1 angles.
//
// When every coordinate from some index onward is zero the angle at that
// index is undefined. It is set to 0, the conversion completes, and the
// full result is returned together with a *DegenerateInputError naming the
// first such index. The error matches numeric.ErrDivisionByZero.
func ToSpherical(p Point) (Spherical, error) {
	if len(p) == 0 {
		return Spherical{}, fmt.Errorf("%w: empty point", numeric.ErrInvalidArgument)
	}
	if err := checkFinite("coordinate", p...); err != nil {
		return Spherical{}, err
	}

	n := len(p)
	if n == 1 {
		return Spherical{R: math.Abs(p[0]), Angles: []float64{}}, nil
	}

	out := Spherical{R: norm(p), Angles: make([]float64, n-1)}

	var degenerate error
	for i := 0; i < n-1; i++ {
		rem := norm(p[i:])
		if rem == 0 {
			if degenerate == nil {
				degenerate = &DegenerateInputError{Index: i}
			}
			continue
		}
		ratio := math.Max(-1, math.Min(1, p[i]/rem))
		out.Angles[i] = numeric.Snap(math.Acos(ratio))
	}

	if p[n-1] < 0 {
		last := n - 2
		out.Angles[last] = NormalizeAzimuth(twoPi - out.Angles[last])
	}

	return out, degenerate
}

// norm returns sqrt(Σ xs[k]²), scaled by the largest magnitude so that
// neither tiny nor huge components underflow or overflow when squared. It
// is exactly 0 only when every component is 0.
func norm(xs []float64) float64 {
	scale := 0.0
	for _, v := range xs {
		scale = max(scale, math.Abs(v))
	}
	if scale == 0 {
		return 0
	}
	sum, _ := series.RawSumFunc(xs, func(v float64) float64 {
		v /= scale
		return v * v
	}, 0, len(xs)-1)
	return scale * math.Sqrt(sum)
}
