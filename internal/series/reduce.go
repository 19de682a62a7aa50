// Package series provides sum and product reductions over an inclusive
// index range of a slice.
package series

import (
	"fmt"

	"github.com/san-kum/numkit/internal/numeric"
)

// Real is any built-in integer or floating-point type.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// bounds clips [start, end] to the slice. ok is false when the range is empty.
func bounds(n, start, end int) (lo, hi int, ok bool, err error) {
	if start < 0 {
		return 0, 0, false, fmt.Errorf("%w: start index %d is negative", numeric.ErrInvalidArgument, start)
	}
	if end >= n {
		end = n - 1
	}
	if end < start {
		return 0, 0, false, nil
	}
	return start, end, true, nil
}

// Sum adds xs[start..end] inclusive. An end past the slice is clipped and
// an empty range sums to 0. Results below numeric.NoiseFloor snap to 0.
func Sum[T Real](xs []T, start, end int) (float64, error) {
	return SumFunc(xs, func(v T) float64 { return float64(v) }, start, end)
}

// SumFunc adds f(xs[i]) over the inclusive range.
func SumFunc[T any](xs []T, f func(T) float64, start, end int) (float64, error) {
	sum, err := RawSumFunc(xs, f, start, end)
	if err != nil {
		return 0, err
	}
	return numeric.Snap(sum), nil
}

// RawSumFunc is SumFunc without the final snap, for intermediate values
// whose small magnitude is meaningful.
func RawSumFunc[T any](xs []T, f func(T) float64, start, end int) (float64, error) {
	lo, hi, ok, err := bounds(len(xs), start, end)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	if ok {
		for _, v := range xs[lo : hi+1] {
			sum += f(v)
		}
	}
	return sum, nil
}

// Product multiplies xs[start..end] inclusive. An empty range gives 1.
// Results below numeric.NoiseFloor snap to 0.
func Product[T Real](xs []T, start, end int) (float64, error) {
	return ProductFunc(xs, func(v T) float64 { return float64(v) }, start, end)
}

// ProductFunc multiplies f(xs[i]) over the inclusive range.
func ProductFunc[T any](xs []T, f func(T) float64, start, end int) (float64, error) {
	prod, err := RawProductFunc(xs, f, start, end)
	if err != nil {
		return 0, err
	}
	return numeric.Snap(prod), nil
}

// RawProductFunc is ProductFunc without the final snap.
func RawProductFunc[T any](xs []T, f func(T) float64, start, end int) (float64, error) {
	lo, hi, ok, err := bounds(len(xs), start, end)
	if err != nil {
		return 0, err
	}
	prod := 1.0
	if ok {
		for _, v := range xs[lo : hi+1] {
			prod *= f(v)
		}
	}
	return prod, nil
}
