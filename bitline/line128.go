package bitline

import "lukechampine.com/uint128"

// Line128 is a 128-bit line. Hi holds positions 0..63, Lo positions 64..127.
type Line128 uint128.Uint128

// NewLine128 assembles a 128-bit line from its high and low halves.
func NewLine128(hi, lo uint64) Line128 {
	return Line128{Lo: lo, Hi: hi}
}

func (b Line128) u() uint128.Uint128 { return uint128.Uint128(b) }

func (Line128) Width() int { return 128 }

func (b Line128) And(o Line128) Line128 { return Line128(b.u().And(o.u())) }
func (b Line128) Or(o Line128) Line128  { return Line128(b.u().Or(o.u())) }
func (b Line128) Xor(o Line128) Line128 { return Line128(b.u().Xor(o.u())) }

func (b Line128) AndNot(o Line128) Line128 {
	return Line128{Lo: b.Lo &^ o.Lo, Hi: b.Hi &^ o.Hi}
}

func (b Line128) Not() Line128 {
	return Line128{Lo: ^b.Lo, Hi: ^b.Hi}
}

func (b Line128) Lsh(n uint) Line128 {
	if n >= 128 {
		return Line128{}
	}
	return Line128(b.u().Lsh(n))
}

func (b Line128) Rsh(n uint) Line128 {
	if n >= 128 {
		return Line128{}
	}
	return Line128(b.u().Rsh(n))
}

func (b Line128) LeadingZeros() int  { return b.u().LeadingZeros() }
func (b Line128) TrailingZeros() int { return b.u().TrailingZeros() }
func (b Line128) OnesCount() int     { return b.u().OnesCount() }
func (b Line128) Reverse() Line128   { return Line128(b.u().Reverse()) }

func (Line128) mask01() Line128 {
	return Line128{Lo: 0x5555555555555555, Hi: 0x5555555555555555}
}

func (Line128) mask10() Line128 {
	return Line128{Lo: 0xaaaaaaaaaaaaaaaa, Hi: 0xaaaaaaaaaaaaaaaa}
}
