package radix

// digits is an unsigned integer x of the form
//
//	x = x[n-1]*base^(n-1) + ... + x[1]*base + x[0]
//
// with 0 <= x[i] < base, stored least significant digit first.
// The base is not part of the value and is passed to every function.
//
// A magnitude is canonical if it has no most significant zero digits,
// except for the canonical zero, which is the single digit [0].
// Functions below never modify their arguments.
type digits []int

// zeroDigits is the canonical zero magnitude.
var zeroDigits = digits{0}

// oneDigits is the magnitude of one unit.
var oneDigits = digits{1}

// trim returns x without most significant zero digits.
func trim(x digits) digits {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	if n == 0 {
		return zeroDigits
	}
	return x[:n]
}

// isZero returns true if x represents 0.
// isZero assumes that x is canonical.
func isZero(x digits) bool {
	return len(x) == 0 || len(x) == 1 && x[0] == 0
}

// isOne returns true if x represents 1.
// isOne assumes that x is canonical.
func isOne(x digits) bool {
	return len(x) == 1 && x[0] == 1
}

// add calculates l + r.
// The length of the result is max(len(l), len(r)), plus one if the final
// carry is not zero.
func add(base int, l, r digits) digits {
	n := max(len(l), len(r))
	z := make(digits, n, n+1)
	carry := 0
	for i := 0; i < n; i++ {
		s := carry
		if i < len(l) {
			s += l[i]
		}
		if i < len(r) {
			s += r[i]
		}
		carry = 0
		if s >= base {
			s -= base
			carry = 1
		}
		z[i] = s
	}
	if carry > 0 {
		z = append(z, carry)
	}
	return z
}

// sub calculates l - r, where l >= r, using the radix complement:
//
//	l - r = l + complement(r) + 1 (mod base^len(l))
//
// The overflow digit of the first addition is discarded before adding one.
// The result has len(l) digits and may have most significant zeros.
func sub(base int, l, r digits) digits {
	n := len(l)
	if n == 0 {
		return zeroDigits
	}
	c, _ := complement(base, r, n)
	z := add(base, l, c)
	if len(z) > n {
		z = z[:n]
	}
	z = add(base, z, oneDigits)
	// l == r wraps around to base^n
	if len(z) > n {
		z = z[:n]
	}
	return z
}

// subBorrow calculates l - r, where l >= r, propagating borrows digit by digit.
// A negative most significant digit is clamped to 0.
// The result has len(l) digits and may have most significant zeros.
func subBorrow(base int, l, r digits) digits {
	z := make(digits, len(l))
	borrow := 0
	for i := range l {
		d := l[i] - borrow
		if i < len(r) {
			d -= r[i]
		}
		if d < 0 && i < len(l)-1 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = d
	}
	if n := len(z); n > 0 && z[n-1] < 0 {
		z[n-1] = 0
	}
	return z
}

// complement calculates the digit-wise radix complement of x, that is
// base - 1 - x[i], over exactly width digits.
// x is zero-padded or truncated to width.
func complement(base int, x digits, width int) (digits, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth.New("expected at least 1 digit, got %v", width)
	}
	z := make(digits, width)
	for i := range z {
		d := 0
		if i < len(x) {
			d = x[i]
		}
		z[i] = base - 1 - d
	}
	return z, nil
}

// mul calculates l * r using the schoolbook method.
// The result has len(l) + len(r) digits and may have most significant zeros.
func mul(base int, l, r digits) digits {
	z := make(digits, len(l)+len(r))
	for i, x := range l {
		if x == 0 {
			continue
		}
		carry := 0
		for j, y := range r {
			t := z[i+j] + x*y + carry
			z[i+j] = t % base
			carry = t / base
		}
		for k := i + len(r); carry > 0; k++ {
			t := z[k] + carry
			z[k] = t % base
			carry = t / base
		}
	}
	return z
}

// quoRem calculates q = ⌊l / r⌋ and rem = l - r * q using long division.
// Every quotient digit is found by repeated subtraction of r from the
// running remainder.
// quoRem assumes that r is not zero.
func quoRem(base int, l, r digits) (q, rem digits) {
	r = trim(r)
	q = make(digits, len(l))
	rem = zeroDigits
	for i := len(l) - 1; i >= 0; i-- {
		// Bring down the next digit
		next := make(digits, len(rem)+1)
		next[0] = l[i]
		copy(next[1:], rem)
		rem = trim(next)
		// Quotient digit
		d := 0
		for cmp(rem, r) >= 0 {
			rem = trim(subBorrow(base, rem, r))
			d++
		}
		q[i] = d
	}
	return q, rem
}

// lsh (Left Shift) calculates x * base^shift by prepending zero digits.
func lsh(x digits, shift int) digits {
	switch {
	case shift == 0:
		return x
	case shift < 0:
		return rsh(x, -shift)
	}
	z := make(digits, len(x)+shift)
	copy(z[shift:], x)
	return z
}

// rsh (Right Shift) calculates ⌊x / base^shift⌋ by removing the least
// significant digits.
// Shifting past the length of x results in the canonical zero.
func rsh(x digits, shift int) digits {
	switch {
	case shift == 0:
		return x
	case shift < 0:
		return lsh(x, -shift)
	case shift >= len(x):
		return zeroDigits
	}
	return x[shift:]
}

// cmp compares l and r and returns:
//
//	-1 if l < r
//	 0 if l == r
//	+1 if l > r
//
// cmp assumes that both l and r are canonical.
func cmp(l, r digits) int {
	switch {
	case len(l) < len(r):
		return -1
	case len(l) > len(r):
		return 1
	}
	for i := len(l) - 1; i >= 0; i-- {
		switch {
		case l[i] < r[i]:
			return -1
		case l[i] > r[i]:
			return 1
		}
	}
	return 0
}

// convert returns the digits of x, given in base from, in base to.
// Each pass divides the whole number by to, carrying the remainder across
// the digits, and emits one digit of the result, least significant first.
func convert(x digits, from, to int) digits {
	// Most significant digit first
	q := make(digits, len(x))
	for i, d := range x {
		q[len(x)-1-i] = d
	}
	var z digits
	for len(q) > 0 {
		next := make(digits, 0, len(q))
		carry := 0
		for _, d := range q {
			carry = carry*from + d
			if v := carry / to; v != 0 || len(next) > 0 {
				next = append(next, v)
			}
			carry %= to
		}
		z = append(z, carry)
		q = next
	}
	return trim(z)
}
