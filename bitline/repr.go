package bitline

import "strings"

// Repr renders v as '0'/'1' characters, most-significant bit first, padded
// to the full width.
//
//	Repr(Line8(0b11110000)) == "11110000"
func Repr[T Word[T]](v T) string {
	buf := []byte(strings.Repeat("0", v.Width()))
	for i := range Ones(v) {
		buf[i] = '1'
	}
	return string(buf)
}

// Parse reads a bit string written most-significant bit first. A leading
// "0b" and '_' separators are accepted. Inputs shorter than the width are
// right-aligned, as with an integer literal.
func Parse[T Word[T]](s string) (T, error) {
	var v T

	digits, offset := s, 0
	if strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B") {
		digits, offset = s[2:], 2
	}

	one := Full[T]().Rsh(uint(v.Width() - 1))
	n := 0
	for i, c := range digits {
		switch c {
		case '_':
			continue
		case '0', '1':
			if v.LeadingZeros() == 0 {
				return Empty[T](), &ParseError{Input: s, Offset: offset + i, Width: v.Width(), cause: ErrOverflow}
			}
			v = v.Lsh(1)
			if c == '1' {
				v = v.Or(one)
			}
			n++
		default:
			return Empty[T](), &ParseError{Input: s, Offset: offset + i, Width: v.Width(), cause: ErrInvalidDigit}
		}
	}
	if n == 0 {
		return Empty[T](), &ParseError{Input: s, Offset: len(s), Width: v.Width(), cause: ErrEmpty}
	}
	return v, nil
}

// MustParse is like Parse but panics on malformed input. It is intended for
// constants and tests.
func MustParse[T Word[T]](s string) T {
	v, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

func (b Line8) String() string   { return Repr(b) }
func (b Line16) String() string  { return Repr(b) }
func (b Line32) String() string  { return Repr(b) }
func (b Line64) String() string  { return Repr(b) }
func (b Line128) String() string { return Repr(b) }
