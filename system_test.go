package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			digits           string
			neg, pos, point  rune
			wantBase         int
			wantMin, wantMax rune
		}{
			{"01", '-', '+', '.', 2, '0', '1'},
			{"0123456789", '-', '+', ',', 10, '0', '9'},
			{"abc", '~', '^', '.', 3, 'a', 'c'},
			{"零一二三四五六七八九", '負', '正', '点', 10, '零', '九'},
		}
		for _, tt := range tests {
			sys, err := NewSystem(tt.digits, tt.neg, tt.pos, tt.point)
			require.NoError(t, err, "NewSystem(%q)", tt.digits)
			require.Equal(t, tt.wantBase, sys.Base())
			require.Equal(t, tt.wantMin, sys.Min())
			require.Equal(t, tt.wantMax, sys.Max())
			require.Equal(t, tt.neg, sys.NegativeChar())
			require.Equal(t, tt.pos, sys.PositiveChar())
			require.Equal(t, tt.point, sys.RadixPointChar())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			digits          string
			neg, pos, point rune
		}{
			"empty":            {"", '-', '+', '.'},
			"base 1":           {"0", '-', '+', '.'},
			"invalid utf8":     {"01\xff", '-', '+', '.'},
			"repeated digit":   {"0120", '-', '+', '.'},
			"sign is digit":    {"01-", '-', '+', '.'},
			"point is digit":   {"01.", '-', '+', '.'},
			"same signs":       {"01", '-', '-', '.'},
			"sign is point":    {"01", '-', '+', '+'},
			"neg is point":     {"01", '.', '+', '.'},
		}
		for name, tt := range tests {
			_, err := NewSystem(tt.digits, tt.neg, tt.pos, tt.point)
			require.Error(t, err, name)
			require.True(t, ErrSystem.Has(err), "%v: %v", name, err)
		}
	})
}

func TestSystem_Digits(t *testing.T) {
	for _, sys := range []System{Base8, Base10, Base16, Base36} {
		for d := 0; d < sys.Base(); d++ {
			ch := sys.ToChar(d)
			got, err := sys.ToDigit(ch)
			require.NoError(t, err)
			require.Equal(t, d, got, "base %v: ToDigit(ToChar(%v))", sys.Base(), d)
		}
		require.Equal(t, '0', sys.Min())
		require.Equal(t, rune(alnumDigits[sys.Base()-1]), sys.Max())
	}

	tests := []struct {
		sys System
		ch  rune
	}{
		{Base8, '8'},
		{Base8, '9'},
		{Base10, 'a'},
		{Base16, 'g'},
		{Base16, 'F'},
		{Base36, 'Z'},
		{Base36, '-'},
		{Base36, '.'},
		{Base36, ' '},
	}
	for _, tt := range tests {
		_, err := tt.sys.ToDigit(tt.ch)
		require.Error(t, err, "base %v: ToDigit(%q)", tt.sys.Base(), tt.ch)
		require.True(t, ErrFormat.Has(err), "base %v: ToDigit(%q): %v", tt.sys.Base(), tt.ch, err)
	}
}

func TestLookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want System
		}{
			{"8", Base8},
			{"10", Base10},
			{"16", Base16},
			{"36", Base36},
		}
		for _, tt := range tests {
			got, err := Lookup(tt.name)
			require.NoError(t, err)
			require.Same(t, tt.want, got, "Lookup(%q)", tt.name)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, name := range []string{"", "2", "9", "0x10", "hex", " 10"} {
			_, err := Lookup(name)
			require.Error(t, err, "Lookup(%q)", name)
			require.True(t, ErrSystem.Has(err), "Lookup(%q): %v", name, err)
		}
	})
}
