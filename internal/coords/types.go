package coords

import (
	"fmt"
	"math"

	"github.com/san-kum/numkit/internal/numeric"
)

// Point is a Cartesian point of any dimension.
type Point []float64

func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

func (p Point) Norm() float64 {
	return norm(p)
}

// Spherical is a radius and the n-1 angles of an n-dimensional point.
type Spherical struct {
	R      float64
	Angles []float64
}

// Dim returns the dimension of the Cartesian space the point lives in.
func (s Spherical) Dim() int {
	return len(s.Angles) + 1
}

// DegenerateInputError reports an angle that is undefined because every
// coordinate from Index onward is zero. The conversion still completes with
// that angle set to 0.
type DegenerateInputError struct {
	Index int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("coords: angle %d undefined, trailing coordinates are all zero", e.Index)
}

func (e *DegenerateInputError) Unwrap() error {
	return numeric.ErrDivisionByZero
}

func checkFinite(what string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite %s %v", numeric.ErrInvalidArgument, what, v)
		}
	}
	return nil
}
