// Package registry names the functions the CLI can differentiate, solve
// and plot.
package registry

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/numkit/internal/numeric"
)

// Entry is a named function with a one-line description.
type Entry struct {
	Name        string
	Description string
	Func        numeric.Func
}

type Registry struct {
	funcs map[string]Entry
}

func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Entry)}

	r.add("square", "x^2", Poly(1, 0, 0))
	r.add("cube", "x^3", Poly(1, 0, 0, 0))
	r.add("x^2-2", "x^2 - 2, roots ±√2", Poly(1, 0, -2))
	r.add("x^2-4", "x^2 - 4, roots ±2", Poly(1, 0, -4))
	r.add("cubic", "x^3 - 2x - 5, Newton's own example", Poly(1, 0, -2, -5))
	r.add("exp", "e^x", func(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
		return c.Exp(x)
	})
	r.add("exp-minus-2", "e^x - 2, root ln 2", func(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
		e, err := c.Exp(x)
		if err != nil {
			return numeric.Scalar{}, err
		}
		return c.Sub(e, numeric.FromInt(2))
	})
	r.add("ln", "natural logarithm, x > 0", func(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
		return c.Ln(x)
	})
	r.add("sqrt", "square root, x >= 0", func(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
		return c.Sqrt(x)
	})
	r.add("reciprocal", "1/x", func(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
		return c.Quo(numeric.FromInt(1), x)
	})
	r.add("sin", "sine (float64 precision)", numeric.FloatFunc(math.Sin))
	r.add("cos", "cosine (float64 precision)", numeric.FloatFunc(math.Cos))

	return r
}

func (r *Registry) add(name, desc string, f numeric.Func) {
	r.funcs[name] = Entry{Name: name, Description: desc, Func: f}
}

func (r *Registry) Get(name string) (numeric.Func, error) {
	e, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("unknown function: %s", name)
	}
	return e.Func, nil
}

// List returns all entries sorted by name.
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.funcs))
	for _, e := range r.funcs {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Poly returns the polynomial with the given integer coefficients, highest
// degree first, evaluated by Horner's rule.
func Poly(coeffs ...int64) numeric.Func {
	return func(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
		var acc numeric.Scalar
		for _, k := range coeffs {
			m, err := c.Mul(acc, x)
			if err != nil {
				return numeric.Scalar{}, err
			}
			acc, err = c.Add(m, numeric.FromInt(k))
			if err != nil {
				return numeric.Scalar{}, err
			}
		}
		return acc, nil
	}
}
