package numeric

import "errors"

// Failure classes shared by every package in the module.
var (
	// ErrInvalidArgument indicates malformed input: bad bounds, bad
	// precision, a dimension mismatch or a non-finite value.
	ErrInvalidArgument = errors.New("numeric: invalid argument")

	// ErrDivisionByZero indicates a zero divisor: a zero step size, a zero
	// derivative or a zero-magnitude coordinate remainder.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrDomain indicates a function evaluated outside its domain.
	ErrDomain = errors.New("numeric: argument outside function domain")
)
