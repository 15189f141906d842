package bitline

import "math/bits"

// Word is the fixed-width unsigned integer capability the algebra is built on.
//
// It can be used as a type parameter bound by any package, but only the five
// widths defined here implement it.
type Word[T any] interface {
	comparable

	// Width returns the number of bits in the word.
	Width() int

	And(T) T
	Or(T) T
	Xor(T) T
	AndNot(T) T
	Not() T

	// Lsh shifts towards the most-significant end, Rsh towards the
	// least-significant end. Shifting by Width or more yields zero.
	Lsh(n uint) T
	Rsh(n uint) T

	LeadingZeros() int
	TrailingZeros() int
	OnesCount() int

	// Reverse mirrors the bit order end to end.
	Reverse() T

	mask01() T
	mask10() T
}

// Line8 is an 8-bit line.
type Line8 uint8

// Line16 is a 16-bit line.
type Line16 uint16

// Line32 is a 32-bit line.
type Line32 uint32

// Line64 is a 64-bit line.
type Line64 uint64

// isWord is instantiated below so the compiler checks that every line type
// satisfies Word; Word embeds comparable and so cannot be a variable type.
func isWord[T Word[T]]() {}

var (
	_ = isWord[Line8]
	_ = isWord[Line16]
	_ = isWord[Line32]
	_ = isWord[Line64]
	_ = isWord[Line128]
)

func (Line8) Width() int             { return 8 }
func (b Line8) And(o Line8) Line8    { return b & o }
func (b Line8) Or(o Line8) Line8     { return b | o }
func (b Line8) Xor(o Line8) Line8    { return b ^ o }
func (b Line8) AndNot(o Line8) Line8 { return b &^ o }
func (b Line8) Not() Line8           { return ^b }
func (b Line8) Lsh(n uint) Line8     { return b << n }
func (b Line8) Rsh(n uint) Line8     { return b >> n }
func (b Line8) LeadingZeros() int    { return bits.LeadingZeros8(uint8(b)) }
func (b Line8) TrailingZeros() int   { return bits.TrailingZeros8(uint8(b)) }
func (b Line8) OnesCount() int       { return bits.OnesCount8(uint8(b)) }
func (b Line8) Reverse() Line8       { return Line8(bits.Reverse8(uint8(b))) }
func (Line8) mask01() Line8          { return 0x55 }
func (Line8) mask10() Line8          { return 0xaa }

func (Line16) Width() int               { return 16 }
func (b Line16) And(o Line16) Line16    { return b & o }
func (b Line16) Or(o Line16) Line16     { return b | o }
func (b Line16) Xor(o Line16) Line16    { return b ^ o }
func (b Line16) AndNot(o Line16) Line16 { return b &^ o }
func (b Line16) Not() Line16            { return ^b }
func (b Line16) Lsh(n uint) Line16      { return b << n }
func (b Line16) Rsh(n uint) Line16      { return b >> n }
func (b Line16) LeadingZeros() int      { return bits.LeadingZeros16(uint16(b)) }
func (b Line16) TrailingZeros() int     { return bits.TrailingZeros16(uint16(b)) }
func (b Line16) OnesCount() int         { return bits.OnesCount16(uint16(b)) }
func (b Line16) Reverse() Line16        { return Line16(bits.Reverse16(uint16(b))) }
func (Line16) mask01() Line16           { return 0x5555 }
func (Line16) mask10() Line16           { return 0xaaaa }

func (Line32) Width() int               { return 32 }
func (b Line32) And(o Line32) Line32    { return b & o }
func (b Line32) Or(o Line32) Line32     { return b | o }
func (b Line32) Xor(o Line32) Line32    { return b ^ o }
func (b Line32) AndNot(o Line32) Line32 { return b &^ o }
func (b Line32) Not() Line32            { return ^b }
func (b Line32) Lsh(n uint) Line32      { return b << n }
func (b Line32) Rsh(n uint) Line32      { return b >> n }
func (b Line32) LeadingZeros() int      { return bits.LeadingZeros32(uint32(b)) }
func (b Line32) TrailingZeros() int     { return bits.TrailingZeros32(uint32(b)) }
func (b Line32) OnesCount() int         { return bits.OnesCount32(uint32(b)) }
func (b Line32) Reverse() Line32        { return Line32(bits.Reverse32(uint32(b))) }
func (Line32) mask01() Line32           { return 0x55555555 }
func (Line32) mask10() Line32           { return 0xaaaaaaaa }

func (Line64) Width() int               { return 64 }
func (b Line64) And(o Line64) Line64    { return b & o }
func (b Line64) Or(o Line64) Line64     { return b | o }
func (b Line64) Xor(o Line64) Line64    { return b ^ o }
func (b Line64) AndNot(o Line64) Line64 { return b &^ o }
func (b Line64) Not() Line64            { return ^b }
func (b Line64) Lsh(n uint) Line64      { return b << n }
func (b Line64) Rsh(n uint) Line64      { return b >> n }
func (b Line64) LeadingZeros() int      { return bits.LeadingZeros64(uint64(b)) }
func (b Line64) TrailingZeros() int     { return bits.TrailingZeros64(uint64(b)) }
func (b Line64) OnesCount() int         { return bits.OnesCount64(uint64(b)) }
func (b Line64) Reverse() Line64        { return Line64(bits.Reverse64(uint64(b))) }
func (Line64) mask01() Line64           { return 0x5555555555555555 }
func (Line64) mask10() Line64           { return 0xaaaaaaaaaaaaaaaa }
