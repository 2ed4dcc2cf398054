package radix

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromInt64(t *testing.T) {
	tests := []struct {
		v    int64
		sys  System
		want string
	}{
		{0, Base10, "0"},
		{1, Base10, "1"},
		{-1, Base10, "-1"},
		{math.MinInt64, Base10, "-9223372036854775808"},
		{math.MaxInt64, Base10, "9223372036854775807"},
		{math.MinInt64, Base8, "-1000000000000000000000"},
		{math.MaxInt64, Base8, "777777777777777777777"},
		{math.MinInt64, Base16, "-8000000000000000"},
		{math.MaxInt64, Base16, "7fffffffffffffff"},
		{math.MinInt64, Base36, "-1y2p0ij32e8e8"},
		{math.MaxInt64, Base36, "1y2p0ij32e8e7"},
		{-1296, Base36, "-100"},
		{5, base3, "12"},
		{-125, cjk, "負一二五"},
	}
	for _, tt := range tests {
		got := NewFromInt64(tt.v, tt.sys)
		requireCanonical(t, got)
		if got.String() != tt.want {
			t.Errorf("NewFromInt64(%v, base %v) = %q, want %q", tt.v, tt.sys.Base(), got, tt.want)
		}
	}
}

func TestNewFromBigInt(t *testing.T) {
	pow := new(big.Int).Lsh(big.NewInt(1), 100)
	big30, _ := new(big.Int).SetString("-1000000000000000000000000000007", 10)
	tests := []struct {
		x    *big.Int
		sys  System
		want string
	}{
		{big.NewInt(0), Base10, "0"},
		{big.NewInt(-42), Base10, "-42"},
		{pow, Base16, "10000000000000000000000000"},
		{pow, Base36, "3ewfdnca0n6ld1ggvfgg"},
		{big30, Base16, "-c9f2c9cd04674edea40000007"},
		{big30, Base10, "-1000000000000000000000000000007"},
	}
	for _, tt := range tests {
		orig := new(big.Int).Set(tt.x)
		got := NewFromBigInt(tt.x, tt.sys)
		requireCanonical(t, got)
		if got.String() != tt.want {
			t.Errorf("NewFromBigInt(%v, base %v) = %q, want %q", tt.x, tt.sys.Base(), got, tt.want)
		}
		if tt.x.Cmp(orig) != 0 {
			t.Errorf("NewFromBigInt(%v, base %v) modified its argument", orig, tt.sys.Base())
		}
		if got.Sign() != tt.x.Sign() {
			t.Errorf("NewFromBigInt(%v, base %v) has sign %v", tt.x, tt.sys.Base(), got.Sign())
		}
		if back := got.BigInt(); back.Cmp(tt.x) != 0 {
			t.Errorf("NewFromBigInt(%v, base %v).BigInt() = %v", tt.x, tt.sys.Base(), back)
		}
	}
}

func TestNumber_BigInt(t *testing.T) {
	tests := []struct {
		sys  System
		s    string
		want string
	}{
		{Base10, "0", "0"},
		{Base10, "-123.99", "-123"},
		{Base10, "0.5", "0"},
		{Base10, "-0.5", "0"},
		{Base10, "123456789012345678901234567890.1", "123456789012345678901234567890"},
		{Base16, "ff.f", "255"},
		{Base36, "-1a.w", "-46"},
	}
	for _, tt := range tests {
		n := MustParse(tt.s, tt.sys)
		got := n.BigInt()
		if got.String() != tt.want {
			t.Errorf("%q.BigInt() = %v, want %v", n, got, tt.want)
		}
	}
}

func TestNumber_Int64(t *testing.T) {
	tests := []struct {
		sys    System
		s      string
		want   int64
		wantOk bool
	}{
		{Base10, "0", 0, true},
		{Base10, "-1.9", -1, true},
		{Base10, "9223372036854775807", math.MaxInt64, true},
		{Base10, "-9223372036854775808", math.MinInt64, true},
		{Base10, "9223372036854775808", 0, false},
		{Base10, "-9223372036854775809", 0, false},
		{Base10, "9223372036854775807.999", math.MaxInt64, true},
		{Base16, "-8000000000000000", math.MinInt64, true},
		{Base16, "10000000000000000", 0, false},
		{Base36, "zz.z", 1295, true},
	}
	for _, tt := range tests {
		n := MustParse(tt.s, tt.sys)
		got, ok := n.Int64()
		require.Equal(t, tt.wantOk, ok, "%q.Int64()", n)
		if ok && got != tt.want {
			t.Errorf("%q.Int64() = %v, want %v", n, got, tt.want)
		}
	}
}

func FuzzNewFromInt64(f *testing.F) {
	for _, v := range []int64{0, 1, -1, math.MinInt64, math.MaxInt64, 1296} {
		f.Add(v)
	}
	f.Fuzz(
		func(t *testing.T, v int64) {
			for _, sys := range []System{base3, Base8, Base10, Base16, Base36} {
				n := NewFromInt64(v, sys)
				got, ok := n.Int64()
				if !ok || got != v {
					t.Errorf("NewFromInt64(%v, base %v).Int64() = %v, %v", v, sys.Base(), got, ok)
				}
				if want := NewFromBigInt(big.NewInt(v), sys); !n.Equal(want) {
					t.Errorf("NewFromInt64(%v, base %v) = %q, want %q", v, sys.Base(), n, want)
				}
			}
		},
	)
}
