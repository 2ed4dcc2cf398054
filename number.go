package radix

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/errs"
)

// Number is an exact signed number in a positional numeral system.
// It is designed to be safe for concurrent use by multiple goroutines:
// every method returns a new value and none of them modifies the receiver.
//
// A number is a struct with four parameters:
//
//   - System: the numeral system that defines the base and the characters.
//   - Sign: a boolean indicating whether the number is negative.
//   - Magnitude: the digits of the number without the radix point.
//   - Scale: the number of least significant magnitude digits that lie after
//     the radix point.
//
// For example, in base 10, a number with a magnitude of 12345 and a scale of 2
// represents the value 123.45.
//
// Numbers are always kept in canonical form: the magnitude has no leading
// zeros, the fractional part has no trailing zeros, and zero is never negative
// and always has scale 0.
// Consequently, 1, 1.0 and 1.00 all have the same representation.
//
// The zero value is the number 0 in [Base10].
type Number struct {
	sys   System // nil means Base10
	neg   bool   // indicates whether the number is negative
	mag   digits // canonical magnitude, nil means zero
	scale int    // the position of the radix point
}

// newNumber is the only place where numbers are constructed from kernel
// results. It strips leading zeros and trailing fractional zeros from mag.
func newNumber(sys System, neg bool, mag digits, scale int) Number {
	mag = trim(mag)
	if isZero(mag) {
		return Number{sys: sys, mag: zeroDigits}
	}
	i := 0
	for i < scale && mag[i] == 0 {
		i++
	}
	return Number{sys: sys, neg: neg, mag: mag[i:], scale: scale - i}
}

// Zero returns the number 0 in the numeral system sys.
func Zero(sys System) Number {
	return Number{sys: sys, mag: zeroDigits}
}

// One returns the number 1 in the numeral system sys.
func One(sys System) Number {
	return Number{sys: sys, mag: oneDigits}
}

// Half returns the number 1/2 in the numeral system sys, that is a single
// fractional digit equal to half of the base.
// Half returns an error of class [ErrSystem] if the base of sys is odd,
// because 1/2 has no finite representation in such a system.
func Half(sys System) (Number, error) {
	b := sys.Base()
	if b%2 != 0 {
		return Number{}, ErrSystem.New("1/2 is not representable in base %v", b)
	}
	return newNumber(sys, false, digits{b / 2}, 1), nil
}

// Parse converts a string to a number in the numeral system sys.
// The input string must have the following format:
//
//	number ::= [sign] { digit } [ point { digit } ]
//
// where sign is sys.NegativeChar() or sys.PositiveChar(), digit is any
// character accepted by sys.ToDigit, and point is sys.RadixPointChar().
// A sign character is recognized only as the very first character.
// An empty digit sequence is parsed as zero.
//
// Parse returns an error of class [ErrFormat] if the string contains an
// invalid digit or more than one radix point, and an error of class
// [ErrSystem] if sys is nil.
func Parse(text string, sys System) (Number, error) {
	if sys == nil {
		return Number{}, ErrSystem.New("no numeral system for %q", text)
	}
	runes := []rune(text)

	// Sign
	neg := false
	if len(runes) > 0 {
		switch runes[0] {
		case sys.NegativeChar():
			neg = true
			runes = runes[1:]
		case sys.PositiveChar():
			runes = runes[1:]
		}
	}

	// Radix point
	point := -1
	for i, ch := range runes {
		if ch != sys.RadixPointChar() {
			continue
		}
		if point >= 0 {
			return Number{}, ErrFormat.New("more than one %q in %q", ch, text)
		}
		point = i
	}
	scale := 0
	if point >= 0 {
		scale = len(runes) - point - 1
		runes = append(runes[:point:point], runes[point+1:]...)
	}

	// Digits
	mag := make(digits, len(runes))
	for i, ch := range runes {
		d, err := sys.ToDigit(ch)
		if err != nil {
			return Number{}, ErrFormat.New("parsing %q: %v", text, errs.Unwrap(err))
		}
		mag[len(runes)-1-i] = d
	}

	return newNumber(sys, neg, mag, scale), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(text string, sys System) Number {
	n, err := Parse(text, sys)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", text, err))
	}
	return n
}

// String implements the [fmt.Stringer] interface and returns the
// representation of n in its numeral system.
// It is the inverse of [Parse]: the magnitude is written most significant
// digit first, zero-padded so that at least one digit precedes the radix point,
// and prefixed with the negative sign character if n is negative.
// Zero is written as the single zero character.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	sys := n.System()
	mag := n.magnitude()
	if isZero(mag) {
		return string(sys.Min())
	}

	var b strings.Builder

	// Sign
	if n.neg {
		b.WriteRune(sys.NegativeChar())
	}

	// Digits and radix point
	width := max(len(mag), n.scale+1)
	for i := width - 1; i >= 0; i-- {
		if n.scale > 0 && i == n.scale-1 {
			b.WriteRune(sys.RadixPointChar())
		}
		d := 0
		if i < len(mag) {
			d = mag[i]
		}
		b.WriteRune(sys.ToChar(d))
	}

	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1a.w
//	%q:    "-1a.w"
//
// The width flag pads the result with spaces, on the left by default or on
// the right with the '-' flag.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Number) Format(state fmt.State, verb rune) {
	s := n.String()
	switch verb {
	case 's', 'S', 'v', 'V':
		// as is
	case 'q', 'Q':
		s = strconv.Quote(s)
	default:
		s = "%!" + string(verb) + "(radix.Number=" + s + ")"
	}
	if w, ok := state.Width(); ok {
		if pad := w - utf8.RuneCountInString(s); pad > 0 {
			if state.Flag('-') {
				s = s + strings.Repeat(" ", pad)
			} else {
				s = strings.Repeat(" ", pad) + s
			}
		}
	}
	_, _ = io.WriteString(state, s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The text is parsed in the numeral system of n, which is [Base10] for the
// zero value.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Number) UnmarshalText(text []byte) error {
	var err error
	*n, err = Parse(string(text), n.System())
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed in the numeral system of n, which is
// [Base10] for the zero value; integers are converted with [NewFromInt64].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Number) Scan(value any) error {
	var err error
	switch v := value.(type) {
	case string:
		*n, err = Parse(v, n.System())
	case []byte:
		*n, err = Parse(string(v), n.System())
	case int64:
		*n = NewFromInt64(v, n.System())
	default:
		err = ErrFormat.New("cannot scan %T into %T", value, n)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The number is stored as its string representation.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Number) Value() (driver.Value, error) {
	return n.String(), nil
}

// System returns the numeral system of n.
func (n Number) System() System {
	if n.sys == nil {
		return Base10
	}
	return n.sys
}

func (n Number) base() int {
	return n.System().Base()
}

func (n Number) magnitude() digits {
	if len(n.mag) == 0 {
		return zeroDigits
	}
	return n.mag
}

// Scale returns the number of digits after the radix point.
func (n Number) Scale() int {
	return n.scale
}

// Prec returns the number of digits in the magnitude of n.
// Prec assumes that 0 has no digits.
func (n Number) Prec() int {
	if n.IsZero() {
		return 0
	}
	return len(n.mag)
}

// Digits returns the digit values of the magnitude of n, most significant
// first. The radix point is not included; see [Number.Scale].
func (n Number) Digits() []int {
	mag := n.magnitude()
	z := make([]int, len(mag))
	for i, d := range mag {
		z[len(mag)-1-i] = d
	}
	return z
}

// IsZero returns true if n == 0.
func (n Number) IsZero() bool {
	return isZero(n.magnitude())
}

// IsOneish returns true if the magnitude of n is the single digit 1,
// regardless of the sign and the scale.
// For example, it returns true for 1, -1, 0.1 and -0.001.
func (n Number) IsOneish() bool {
	return isOne(n.magnitude())
}

// IsOne returns true if the magnitude of n is the single digit 1 and n is
// not negative. As with [Number.IsOneish], the scale is ignored.
func (n Number) IsOne() bool {
	return !n.neg && n.IsOneish()
}

// IsInt returns true if the fractional part of n is zero.
func (n Number) IsInt() bool {
	mag := n.magnitude()
	for i := 0; i < n.scale && i < len(mag); i++ {
		if mag[i] != 0 {
			return false
		}
	}
	return true
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.neg
}

// IsPos returns true if n > 0.
func (n Number) IsPos() bool {
	return !n.neg && !n.IsZero()
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n == 0
//	+1 if n > 0
func (n Number) Sign() int {
	switch {
	case n.neg:
		return -1
	case n.IsZero():
		return 0
	}
	return 1
}

// Neg returns n with the opposite sign.
// The negation of zero is zero.
func (n Number) Neg() Number {
	if n.IsZero() {
		return n
	}
	n.neg = !n.neg
	return n
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number {
	n.neg = false
	return n
}

// ValidateSystem returns an error of class [ErrSystemMismatch] if d and e
// belong to numeral systems with different bases.
func (d Number) ValidateSystem(e Number) error {
	if d.base() != e.base() {
		return ErrSystemMismatch.New("base %v and base %v", d.base(), e.base())
	}
	return nil
}

// align returns the magnitudes of d and e shifted to the larger of their
// scales, and that scale.
func align(d, e Number) (dmag, emag digits, scale int) {
	dmag, emag = d.magnitude(), e.magnitude()
	switch {
	case d.scale < e.scale:
		return lsh(dmag, e.scale-d.scale), emag, e.scale
	case d.scale > e.scale:
		return dmag, lsh(emag, d.scale-e.scale), d.scale
	}
	return dmag, emag, d.scale
}

// Add returns the exact sum of d and e.
// The result belongs to the numeral system of d.
//
// Add returns an error of class [ErrSystemMismatch] if d and e have
// different bases.
func (d Number) Add(e Number) (Number, error) {
	if err := d.ValidateSystem(e); err != nil {
		return Number{}, ErrSystemMismatch.New("computing [%v + %v]: %v", d, e, errs.Unwrap(err))
	}
	return d.add(e), nil
}

func (d Number) add(e Number) Number {
	sys := d.System()

	// Special cases
	switch {
	case d.IsZero():
		e.sys = sys
		return e
	case e.IsZero():
		return d
	}

	// General case
	dmag, emag, scale := align(d, e)
	b := sys.Base()
	if d.neg == e.neg {
		return newNumber(sys, d.neg, add(b, dmag, emag), scale)
	}
	switch cmp(dmag, emag) {
	case 1:
		return newNumber(sys, d.neg, sub(b, dmag, emag), scale)
	case -1:
		return newNumber(sys, e.neg, sub(b, emag, dmag), scale)
	}
	return Zero(sys)
}

// Sub returns the exact difference of d and e, computed as d + (-e).
// The result belongs to the numeral system of d.
//
// Sub returns an error of class [ErrSystemMismatch] if d and e have
// different bases.
func (d Number) Sub(e Number) (Number, error) {
	if err := d.ValidateSystem(e); err != nil {
		return Number{}, ErrSystemMismatch.New("computing [%v - %v]: %v", d, e, errs.Unwrap(err))
	}
	return d.add(e.Neg()), nil
}

// Mul returns the exact product of d and e.
// The scale of the product is the sum of the scales of d and e, before
// trailing zeros are removed.
//
// Mul returns an error of class [ErrSystemMismatch] if d and e have
// different bases.
func (d Number) Mul(e Number) (Number, error) {
	if err := d.ValidateSystem(e); err != nil {
		return Number{}, ErrSystemMismatch.New("computing [%v * %v]: %v", d, e, errs.Unwrap(err))
	}
	sys := d.System()

	// Special cases
	if d.IsZero() || e.IsZero() {
		return Zero(sys), nil
	}
	neg := d.neg != e.neg
	scale := d.scale + e.scale
	switch {
	case d.IsOneish():
		return newNumber(sys, neg, e.mag, scale), nil
	case e.IsOneish():
		return newNumber(sys, neg, d.mag, scale), nil
	}

	// General case
	return newNumber(sys, neg, mul(sys.Base(), d.mag, e.mag), scale), nil
}

// Quo returns the quotient of d and e truncated towards zero to the given
// number of digits after the radix point.
// A negative scale is treated as 0.
//
// The scales of d and e are first reduced together while both of them have
// fractional digits. Any fractional digits left in e are then moved into d
// by shifting its magnitude, so that the long division only ever sees an
// integer divisor.
//
// Quo returns an error if:
//   - e is 0, of class [ErrDivisionByZero];
//   - d and e have different bases, of class [ErrSystemMismatch].
func (d Number) Quo(e Number, scale int) (Number, error) {
	if err := d.ValidateSystem(e); err != nil {
		return Number{}, ErrSystemMismatch.New("computing [%v / %v]: %v", d, e, errs.Unwrap(err))
	}
	if e.IsZero() {
		return Number{}, ErrDivisionByZero.New("computing [%v / %v]", d, e)
	}
	if d.IsZero() {
		return d, nil
	}
	if scale < 0 {
		scale = 0
	}
	sys := d.System()

	// Reduce the scales in lockstep
	dscale, escale := d.scale, e.scale
	m := min(dscale, escale)
	dscale -= m
	escale -= m

	// Move the remaining divisor scale into the dividend
	dmag := d.magnitude()
	if escale > 0 {
		dmag = lsh(dmag, escale)
	}

	// Extend the dividend to the requested scale
	if scale > dscale {
		dmag = lsh(dmag, scale-dscale)
		dscale = scale
	}

	if !e.IsOneish() {
		dmag, _ = quoRem(sys.Base(), dmag, e.magnitude())
	}

	return newNumber(sys, d.neg != e.neg, rsh(dmag, dscale-scale), scale), nil
}

// Round returns n rounded to the specified number of digits after the
// radix point. A negative scale is treated as 0.
// If n already has no more than scale fractional digits, n is returned.
//
// Only the first discarded digit is inspected. A non-negative number is
// rounded up in magnitude when that digit is at least half of the base,
// a negative number only when the digit is strictly greater than half of the
// base. For example, in base 10:
//
//	2.25 rounds to 2.3
//	-2.25 rounds to -2.2
//	-2.26 rounds to -2.3
func (n Number) Round(scale int) Number {
	if scale < 0 {
		scale = 0
	}
	if n.scale <= scale {
		return n
	}
	sys := n.System()
	b := sys.Base()
	mag := n.magnitude()
	cut := n.scale - scale
	d := 0
	if cut-1 < len(mag) {
		d = mag[cut-1]
	}
	z := rsh(mag, cut)
	if !n.neg && 2*d >= b || n.neg && 2*d > b {
		z = add(b, z, oneDigits)
	}
	return newNumber(sys, n.neg, z, scale)
}

// Floor returns the largest integer less than or equal to n.
func (n Number) Floor() Number {
	if n.IsInt() {
		return n
	}
	sys := n.System()
	z := rsh(n.magnitude(), n.scale)
	if n.neg {
		z = add(sys.Base(), z, oneDigits)
	}
	return newNumber(sys, n.neg, z, 0)
}

// Ceil returns the smallest integer greater than or equal to n.
func (n Number) Ceil() Number {
	if n.IsInt() {
		return n
	}
	sys := n.System()
	z := rsh(n.magnitude(), n.scale)
	if !n.neg {
		z = add(sys.Base(), z, oneDigits)
	}
	return newNumber(sys, n.neg, z, 0)
}

// SetScale returns n truncated to the specified number of digits after the
// radix point. A negative scale is treated as 0.
// If n already has no more than scale fractional digits, n is returned:
// the scale is never increased.
//
// If roundUp is true, one unit of the new last digit is added in magnitude
// after truncation, whatever the discarded digits were.
// Also see methods [Number.Round] and [Number.Trunc].
func (n Number) SetScale(scale int, roundUp bool) Number {
	if scale < 0 {
		scale = 0
	}
	if n.scale <= scale {
		return n
	}
	sys := n.System()
	z := rsh(n.magnitude(), n.scale-scale)
	if roundUp {
		z = add(sys.Base(), z, oneDigits)
	}
	return newNumber(sys, n.neg, z, scale)
}

// Trunc returns n truncated towards zero to the specified number of digits
// after the radix point. It is equivalent to n.SetScale(scale, false).
func (n Number) Trunc(scale int) Number {
	return n.SetScale(scale, false)
}

// Complement returns the radix complement of the magnitude of n, computed
// over as many digits as the magnitude has. The sign and the scale of n are
// kept.
// Also see method [Number.ComplementWidth].
func (n Number) Complement() Number {
	z, _ := n.ComplementWidth(len(n.magnitude()))
	return z
}

// ComplementWidth returns the radix complement of the magnitude of n over
// exactly width digits: every digit d becomes base - 1 - d, missing high
// digits count as zeros and extra high digits are dropped.
// The sign and the scale of n are kept.
//
// ComplementWidth returns an error of class [ErrInvalidWidth] if width is
// not positive.
func (n Number) ComplementWidth(width int) (Number, error) {
	sys := n.System()
	z, err := complement(sys.Base(), n.magnitude(), width)
	if err != nil {
		return Number{}, ErrInvalidWidth.New("complementing %v: %v", n, errs.Unwrap(err))
	}
	return newNumber(sys, n.neg, z, n.scale), nil
}

// ConvertTo returns n in the numeral system sys.
// If the bases are equal, the value, its digits and its scale are unchanged
// and only the numeral system is replaced, so the result is written with the
// characters of sys. For example, converting 12.5 in [Base10] to a base-10
// system with other digit characters relabels its digits.
// Otherwise the integer magnitude is converted, and if n has fractional
// digits, it is divided by base^scale in the target base, keeping the same
// number of fractional digits. Fractional digits that do not fit are
// truncated, since a finite fraction in one base may not be finite in another.
func (n Number) ConvertTo(sys System) Number {
	from, to := n.base(), sys.Base()
	if from == to {
		n.sys = sys
		return n
	}
	z := convert(n.magnitude(), from, to)
	if n.scale > 0 {
		unit := convert(lsh(oneDigits, n.scale), from, to)
		z, _ = quoRem(to, lsh(z, n.scale), unit)
	}
	return newNumber(sys, n.neg, z, n.scale)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Cmp returns an error of class [ErrSystemMismatch] if d and e have
// different bases.
// Also see method [Number.Equal].
func (d Number) Cmp(e Number) (int, error) {
	if err := d.ValidateSystem(e); err != nil {
		return 0, ErrSystemMismatch.New("comparing %v and %v: %v", d, e, errs.Unwrap(err))
	}
	return d.cmp(e), nil
}

func (d Number) cmp(e Number) int {
	dmag, emag, _ := align(d, e)
	switch {
	case d.neg && e.neg:
		return -cmp(dmag, emag)
	case d.neg:
		return -1
	case e.neg:
		return 1
	}
	return cmp(dmag, emag)
}

// Equal returns true if d and e have the same base, the same scale and the
// same value. Unlike [Number.Cmp], it never fails: numbers of different
// bases are simply not equal.
func (d Number) Equal(e Number) bool {
	return d.base() == e.base() && d.scale == e.scale && d.cmp(e) == 0
}
