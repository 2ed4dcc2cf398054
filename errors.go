package radix

import "github.com/zeebo/errs"

// Error classes returned by this package.
// Use the Has method of a class to check the kind of a returned error:
//
//	if radix.ErrDivisionByZero.Has(err) {
//		...
//	}
var (
	// ErrFormat is returned for an invalid digit character, a sign
	// character outside the leading position, or more than one radix point.
	ErrFormat = errs.Class("invalid format")

	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrSystemMismatch is returned when the operands of a binary operation
	// belong to numeral systems with different bases.
	ErrSystemMismatch = errs.Class("numeral system mismatch")

	// ErrInvalidWidth is returned when a complement is requested with a
	// non-positive number of digits.
	ErrInvalidWidth = errs.Class("invalid width")

	// ErrSystem is returned for invalid numeral system descriptors and
	// unknown numeral system names.
	ErrSystem = errs.Class("invalid numeral system")
)
