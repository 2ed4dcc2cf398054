package radix

import "unicode/utf8"

// System describes a positional numeral system: its base, the characters
// used for digits, and the sign and radix point characters.
// A System is a stateless strategy and is safe for concurrent use.
//
// Digit characters and the three special characters must be distinct,
// and ToDigit and ToChar must be inverses of each other over 0..Base()-1.
type System interface {
	// Base returns the number of distinct digits.
	Base() int
	// Min returns the character of the digit 0.
	Min() rune
	// Max returns the character of the digit Base()-1.
	Max() rune
	PositiveChar() rune
	NegativeChar() rune
	RadixPointChar() rune
	// ToDigit returns the value of the digit character ch.
	// It returns an error of class [ErrFormat] if ch is not a digit character.
	ToDigit(ch rune) (int, error)
	// ToChar returns the character of the digit value d.
	// ToChar panics if d is out of range.
	ToChar(d int) rune
}

const (
	defaultNegativeChar   = '-'
	defaultPositiveChar   = '+'
	defaultRadixPointChar = '.'
	alnumDigits           = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Predefined numeral systems.
// All of them use lower case letters for digits above 9, '-' and '+' as
// sign characters, and '.' as the radix point.
var (
	Base8  = mustNewSystem(alnumDigits[:8])
	Base10 = mustNewSystem(alnumDigits[:10])
	Base16 = mustNewSystem(alnumDigits[:16])
	Base36 = mustNewSystem(alnumDigits[:36])
)

func mustNewSystem(digits string) System {
	sys, err := NewSystem(digits, defaultNegativeChar, defaultPositiveChar, defaultRadixPointChar)
	if err != nil {
		panic(err)
	}
	return sys
}

// alphabet is a System backed by an explicit list of digit characters.
type alphabet struct {
	chars []rune       // chars[d] is the character of digit d
	index map[rune]int // index[chars[d]] == d
	neg   rune
	pos   rune
	point rune
}

// NewSystem returns a numeral system whose base is the number of characters
// in digits, with digits[i] denoting the digit value i.
//
// NewSystem returns an error of class [ErrSystem] if:
//   - digits has fewer than 2 characters;
//   - a digit character repeats;
//   - neg, pos or point is a digit character;
//   - neg, pos and point are not pairwise distinct.
func NewSystem(digits string, neg, pos, point rune) (System, error) {
	if !utf8.ValidString(digits) {
		return nil, ErrSystem.New("digits %q are not valid UTF-8", digits)
	}
	chars := []rune(digits)
	if len(chars) < 2 {
		return nil, ErrSystem.New("base must be at least 2, got %v", len(chars))
	}
	if neg == pos || neg == point || pos == point {
		return nil, ErrSystem.New("special characters %q, %q and %q must be distinct", neg, pos, point)
	}
	index := make(map[rune]int, len(chars))
	for d, ch := range chars {
		if _, ok := index[ch]; ok {
			return nil, ErrSystem.New("digit character %q repeats", ch)
		}
		if ch == neg || ch == pos || ch == point {
			return nil, ErrSystem.New("special character %q is used as a digit", ch)
		}
		index[ch] = d
	}
	return &alphabet{
		chars: chars,
		index: index,
		neg:   neg,
		pos:   pos,
		point: point,
	}, nil
}

func (a *alphabet) Base() int            { return len(a.chars) }
func (a *alphabet) Min() rune            { return a.chars[0] }
func (a *alphabet) Max() rune            { return a.chars[len(a.chars)-1] }
func (a *alphabet) PositiveChar() rune   { return a.pos }
func (a *alphabet) NegativeChar() rune   { return a.neg }
func (a *alphabet) RadixPointChar() rune { return a.point }
func (a *alphabet) ToChar(d int) rune    { return a.chars[d] }

func (a *alphabet) ToDigit(ch rune) (int, error) {
	d, ok := a.index[ch]
	if !ok {
		return 0, ErrFormat.New("invalid digit %q for base %v", ch, len(a.chars))
	}
	return d, nil
}

// Lookup returns the predefined numeral system with the given name.
// The supported names are "8", "10", "16" and "36".
// Lookup returns an error of class [ErrSystem] for any other name.
func Lookup(name string) (System, error) {
	switch name {
	case "8":
		return Base8, nil
	case "10":
		return Base10, nil
	case "16":
		return Base16, nil
	case "36":
		return Base36, nil
	}
	return nil, ErrSystem.New("unknown name %q, valid names are \"8\", \"10\", \"16\" and \"36\"", name)
}
