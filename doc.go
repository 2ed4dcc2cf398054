/*
Package radix implements immutable arbitrary-precision signed numbers in
positional numeral systems of any base.
It is designed for values that exceed the range or the precision of machine
integers and floats, with exact control over the number of fractional digits.

# Representation

[Number] is a struct with four fields:

  - System: the [System] that defines the base, the digit characters, the
    sign characters and the radix point character.
  - Sign: a boolean indicating whether the number is negative.
  - Magnitude: the digits of the number without the radix point,
    of unlimited length.
  - Scale: a non-negative integer indicating how many of the least
    significant digits lie after the radix point.
    For example, in base 10, a number with a magnitude of 12345 and a scale
    of 2 represents the value 123.45.

The numerical value of a number is calculated as:

  - -Magnitude / Base^Scale, if Sign is true.
  - Magnitude / Base^Scale, if Sign is false.

Numbers are always canonical: leading zeros of the magnitude and trailing
zeros of the fractional part are removed, and zero has exactly one
representation, which is non-negative and has a scale of 0.
As a result, "000123.4500" is parsed as 123.45 and "-0.000" as 0.

# Numeral Systems

The package provides [Base8], [Base10], [Base16] and [Base36], which use the
characters 0-9 and a-z for digits, '-' and '+' for signs and '.' for the
radix point. [Lookup] maps the names "8", "10", "16" and "36" to them, and
[NewSystem] builds a system from any alphabet.

There is no default numeral system: every constructor takes one explicitly.
The only exception is the zero value of [Number], which is 0 in [Base10].

# Operations

All binary operations require operands of the same base and return an error
of class [ErrSystemMismatch] otherwise.
Use [Number.ConvertTo] to change the base of a number first.

  - [Number.Add], [Number.Sub] and [Number.Mul] are exact.
  - [Number.Quo] truncates the quotient towards zero to a requested scale.
  - [Number.Round], [Number.Floor], [Number.Ceil], [Number.SetScale] and
    [Number.Trunc] reduce the scale.
  - [Number.Cmp] and [Number.Equal] compare numbers.
  - [Number.Complement] and [Number.ComplementWidth] return the radix
    complement of the magnitude.

Multiplication uses the schoolbook method and division uses long division
by repeated subtraction. The cost of an operation grows with the length of
its operands; callers bound the cost by bounding the operand size.

# Rounding

[Number.Round] inspects only the first discarded digit.
Non-negative numbers are rounded up when that digit is at least half of the
base, negative numbers only when it is strictly greater than half of the
base:

	 2.25 -> 2.3
	-2.25 -> -2.2
	-2.26 -> -2.3

[Number.Quo] and [Number.ConvertTo] never round, they truncate.

# Errors

Errors are grouped in classes built with [github.com/zeebo/errs]:
[ErrFormat], [ErrDivisionByZero], [ErrSystemMismatch], [ErrInvalidWidth]
and [ErrSystem]. Use the Has method of a class to test an error:

	_, err := x.Quo(y, 2)
	if radix.ErrDivisionByZero.Has(err) {
		...
	}
*/
package radix
