package radix

import "math/big"

// NewFromInt64 returns the integer v in the numeral system sys.
func NewFromInt64(v int64, sys System) Number {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	b := uint64(sys.Base())
	var mag digits
	for u != 0 {
		mag = append(mag, int(u%b))
		u /= b
	}
	return newNumber(sys, neg, mag, 0)
}

// NewFromBigInt returns the integer x in the numeral system sys.
func NewFromBigInt(x *big.Int, sys System) Number {
	var (
		b    = big.NewInt(int64(sys.Base()))
		q    = new(big.Int).Abs(x)
		r    = new(big.Int)
		mag  digits
		zero big.Int
	)
	for q.Cmp(&zero) != 0 {
		q.QuoRem(q, b, r)
		mag = append(mag, int(r.Int64()))
	}
	return newNumber(sys, x.Sign() < 0, mag, 0)
}

// BigInt returns the integer part of n, truncated towards zero, as a [big.Int].
func (n Number) BigInt() *big.Int {
	var (
		b = big.NewInt(int64(n.base()))
		z = new(big.Int)
		d = new(big.Int)
	)
	mag := rsh(n.magnitude(), n.scale)
	for i := len(mag) - 1; i >= 0; i-- {
		z.Mul(z, b)
		z.Add(z, d.SetInt64(int64(mag[i])))
	}
	if n.neg {
		z.Neg(z)
	}
	return z
}

// Int64 returns the integer part of n, truncated towards zero, as an int64.
// If the integer part does not fit into an int64, the result is undefined
// and ok is false.
func (n Number) Int64() (v int64, ok bool) {
	z := n.BigInt()
	if !z.IsInt64() {
		return 0, false
	}
	return z.Int64(), true
}
