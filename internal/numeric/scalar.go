package numeric

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Scalar is an immutable arbitrary-precision decimal. The zero value is 0.
//
// Operations never modify their operands; every result is freshly
// allocated, so Scalars can be shared freely between goroutines.
type Scalar struct {
	d *apd.Decimal
}

// New returns coeff × 10^exp.
func New(coeff int64, exp int32) Scalar {
	return Scalar{d: apd.New(coeff, exp)}
}

// FromInt converts an integer exactly.
func FromInt(i int64) Scalar {
	return Scalar{d: apd.New(i, 0)}
}

// FromFloat converts f using its shortest decimal representation, so
// FromFloat(0.1) is exactly 0.1 rather than the binary approximation.
func FromFloat(f float64) (Scalar, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Scalar{}, fmt.Errorf("%w: non-finite value %v", ErrInvalidArgument, f)
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return Scalar{d: d}, nil
}

// MustFromFloat is FromFloat for values known to be finite.
func MustFromFloat(f float64) Scalar {
	s, err := FromFloat(f)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse reads a decimal literal such as "3", "-0.25" or "1e-25".
func Parse(s string) (Scalar, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: invalid decimal %q", ErrInvalidArgument, s)
	}
	if d.Form != apd.Finite {
		return Scalar{}, fmt.Errorf("%w: non-finite decimal %q", ErrInvalidArgument, s)
	}
	return Scalar{d: d}, nil
}

// MustParse is Parse for constants; it panics on malformed input.
func MustParse(s string) Scalar {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s Scalar) dec() *apd.Decimal {
	if s.d == nil {
		return apd.New(0, 0)
	}
	return s.d
}

// Decimal returns a copy of the underlying apd value.
func (s Scalar) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(s.dec())
}

func (s Scalar) String() string {
	return s.dec().String()
}

// Float64 returns the nearest float64. Values out of float64 range become
// ±Inf or 0.
func (s Scalar) Float64() float64 {
	f, _ := s.dec().Float64()
	return f
}

func (s Scalar) IsZero() bool {
	return s.dec().IsZero()
}

func (s Scalar) Sign() int {
	return s.dec().Sign()
}

// Cmp compares s and o numerically and returns -1, 0 or +1.
func (s Scalar) Cmp(o Scalar) int {
	return s.dec().Cmp(o.dec())
}

func (s Scalar) Neg() Scalar {
	return Scalar{d: new(apd.Decimal).Neg(s.dec())}
}

func (s Scalar) Abs() Scalar {
	return Scalar{d: new(apd.Decimal).Abs(s.dec())}
}

// Magnitude returns floor(log10(|s|)), the decimal exponent of the leading
// significant digit. It is undefined for zero and returns 0 there.
func (s Scalar) Magnitude() int64 {
	d := s.dec()
	if d.IsZero() {
		return 0
	}
	return int64(d.Exponent) + d.NumDigits() - 1
}

// IsPowerOfTen reports whether |s| is exactly 10^k for some integer k.
func (s Scalar) IsPowerOfTen() bool {
	d := s.dec()
	if d.IsZero() {
		return false
	}
	r, _ := new(apd.Decimal).Reduce(d)
	return r.Coeff.Cmp(apd.NewBigInt(1)) == 0
}
