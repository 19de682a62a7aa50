package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant digits carried when the
// caller does not choose one.
const DefaultPrecision = 56

// Context carries the working precision for a group of operations.
// A Context is never mutated after construction and is safe for
// concurrent use.
type Context struct {
	apd apd.Context
}

// NewContext returns a context rounding half-even to precision significant
// digits.
func NewContext(precision int) (*Context, error) {
	if precision <= 0 {
		return nil, fmt.Errorf("%w: precision must be positive, got %d", ErrInvalidArgument, precision)
	}
	c := apd.BaseContext.WithPrecision(uint32(precision))
	c.Rounding = apd.RoundHalfEven
	return &Context{apd: *c}, nil
}

// Precision returns the number of significant digits carried.
func (c *Context) Precision() int {
	return int(c.apd.Precision)
}

func (c *Context) Add(x, y Scalar) (Scalar, error) {
	d := new(apd.Decimal)
	if _, err := c.apd.Add(d, x.dec(), y.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: add: %w", err)
	}
	return Scalar{d: d}, nil
}

func (c *Context) Sub(x, y Scalar) (Scalar, error) {
	d := new(apd.Decimal)
	if _, err := c.apd.Sub(d, x.dec(), y.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: sub: %w", err)
	}
	return Scalar{d: d}, nil
}

func (c *Context) Mul(x, y Scalar) (Scalar, error) {
	d := new(apd.Decimal)
	if _, err := c.apd.Mul(d, x.dec(), y.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: mul: %w", err)
	}
	return Scalar{d: d}, nil
}

// Quo returns x / y. A zero y fails with ErrDivisionByZero.
func (c *Context) Quo(x, y Scalar) (Scalar, error) {
	if y.IsZero() {
		return Scalar{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, x)
	}
	d := new(apd.Decimal)
	if _, err := c.apd.Quo(d, x.dec(), y.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: quo: %w", err)
	}
	return Scalar{d: d}, nil
}

// Pow returns x^y. Integer exponents are exact up to the precision.
func (c *Context) Pow(x, y Scalar) (Scalar, error) {
	if x.IsZero() && y.Sign() < 0 {
		return Scalar{}, fmt.Errorf("%w: 0 raised to %s", ErrDivisionByZero, y)
	}
	d := new(apd.Decimal)
	if _, err := c.apd.Pow(d, x.dec(), y.dec()); err != nil {
		return Scalar{}, fmt.Errorf("%w: pow(%s, %s): %v", ErrDomain, x, y, err)
	}
	return Scalar{d: d}, nil
}

func (c *Context) Sqrt(x Scalar) (Scalar, error) {
	if x.Sign() < 0 {
		return Scalar{}, fmt.Errorf("%w: sqrt(%s)", ErrDomain, x)
	}
	d := new(apd.Decimal)
	if _, err := c.apd.Sqrt(d, x.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: sqrt: %w", err)
	}
	return Scalar{d: d}, nil
}

func (c *Context) Exp(x Scalar) (Scalar, error) {
	d := new(apd.Decimal)
	if _, err := c.apd.Exp(d, x.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: exp: %w", err)
	}
	return Scalar{d: d}, nil
}

// Ln returns the natural logarithm; x must be positive.
func (c *Context) Ln(x Scalar) (Scalar, error) {
	if x.Sign() <= 0 {
		return Scalar{}, fmt.Errorf("%w: ln(%s)", ErrDomain, x)
	}
	d := new(apd.Decimal)
	if _, err := c.apd.Ln(d, x.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: ln: %w", err)
	}
	return Scalar{d: d}, nil
}

// Log10 returns the base-10 logarithm; x must be positive.
func (c *Context) Log10(x Scalar) (Scalar, error) {
	if x.Sign() <= 0 {
		return Scalar{}, fmt.Errorf("%w: log10(%s)", ErrDomain, x)
	}
	d := new(apd.Decimal)
	if _, err := c.apd.Log10(d, x.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: log10: %w", err)
	}
	return Scalar{d: d}, nil
}

// Floor returns the largest integer not greater than x.
func (c *Context) Floor(x Scalar) (Scalar, error) {
	d := new(apd.Decimal)
	if _, err := c.apd.Floor(d, x.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: floor: %w", err)
	}
	return Scalar{d: d}, nil
}

// RoundSig rounds x half-even to digits significant figures.
func (c *Context) RoundSig(x Scalar, digits int) (Scalar, error) {
	if digits < 1 {
		return Scalar{}, fmt.Errorf("%w: significant digits must be positive, got %d", ErrInvalidArgument, digits)
	}
	if x.IsZero() {
		return x, nil
	}
	rc := c.apd
	rc.Precision = uint32(digits)
	d := new(apd.Decimal)
	if _, err := rc.Round(d, x.dec()); err != nil {
		return Scalar{}, fmt.Errorf("numeric: round: %w", err)
	}
	return Scalar{d: d}, nil
}
