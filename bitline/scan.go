package bitline

import "iter"

// FirstIndex returns the position of the first (most-significant) set bit,
// i.e. the number of leading zeros. ok is false when v is empty.
func FirstIndex[T Word[T]](v T) (index int, ok bool) {
	zeros := v.LeadingZeros()
	if zeros == v.Width() {
		return 0, false
	}
	return zeros, true
}

// LastIndex returns the position of the last (least-significant) set bit.
// ok is false when v is empty.
func LastIndex[T Word[T]](v T) (index int, ok bool) {
	zeros := v.TrailingZeros()
	if zeros == v.Width() {
		return 0, false
	}
	return v.Width() - zeros - 1, true
}

// FirstBit isolates the first set bit of v.
func FirstBit[T Word[T]](v T) T {
	i, ok := FirstIndex(v)
	if !ok {
		return Empty[T]()
	}
	return bitAt[T](i)
}

// LastBit isolates the last set bit of v.
func LastBit[T Word[T]](v T) T {
	i, ok := LastIndex(v)
	if !ok {
		return Empty[T]()
	}
	return bitAt[T](i)
}

// FirstBits keeps the first bit of every run of set bits.
//
//	FirstBits(Line8(0b01100110)) == 0b01000100
func FirstBits[T Word[T]](v T) T {
	return v.AndNot(v.Rsh(1))
}

// LastBits keeps the last bit of every run of set bits.
//
//	LastBits(Line8(0b01100110)) == 0b00100010
func LastBits[T Word[T]](v T) T {
	return v.AndNot(v.Lsh(1))
}

// FilledFirstBitToLastBit returns the contiguous block spanning the first to
// the last set bit of v, both inclusive.
func FilledFirstBitToLastBit[T Word[T]](v T) T {
	first, ok := FirstIndex(v)
	if !ok {
		return Empty[T]()
	}
	last, _ := LastIndex(v)
	return ByRange[T](first, last+1)
}

// Ones yields the set positions of v in ascending (MSB-first) order.
func Ones[T Word[T]](v T) iter.Seq[int] {
	return func(yield func(int) bool) {
		rest := v
		for {
			i, ok := FirstIndex(rest)
			if !ok || !yield(i) {
				return
			}
			rest = rest.AndNot(bitAt[T](i))
		}
	}
}
