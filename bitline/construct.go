package bitline

// Empty returns the word with every bit cleared.
func Empty[T Word[T]]() T {
	var zero T
	return zero
}

// Full returns the word with every bit set.
func Full[T Word[T]]() T {
	var zero T
	return zero.Not()
}

// Mask01 returns the alternating pattern 0101...01.
func Mask01[T Word[T]]() T {
	var zero T
	return zero.mask01()
}

// Mask10 returns the alternating pattern 1010...10.
func Mask10[T Word[T]]() T {
	var zero T
	return zero.mask10()
}

// Len returns the width of T in bits.
func Len[T Word[T]]() int {
	var zero T
	return zero.Width()
}

// ByteLen returns the width of T in bytes.
func ByteLen[T Word[T]]() int {
	return Len[T]() / 8
}

// ByRange returns the word with exactly the positions in [begin, end) set.
//
// end is clamped to the width and begin to end, so inverted or out-of-range
// spans produce the empty word rather than an error.
//
//	ByRange[Line8](2, 5) == 0b00111000
func ByRange[T Word[T]](begin, end int) T {
	width := Len[T]()
	last := min(max(end, 0), width)
	first := min(max(begin, 0), last)

	size := last - first
	if size <= 0 {
		return Empty[T]()
	}
	if size >= width {
		return Full[T]()
	}

	fill := Full[T]().Rsh(uint(width - size))
	return fill.Lsh(uint(width - last))
}

// FromUint64 converts x to T, keeping the low Len[T]() bits.
func FromUint64[T Word[T]](x uint64) T {
	var v T
	switch p := any(&v).(type) {
	case *Line8:
		*p = Line8(x)
	case *Line16:
		*p = Line16(x)
	case *Line32:
		*p = Line32(x)
	case *Line64:
		*p = Line64(x)
	case *Line128:
		*p = NewLine128(0, x)
	}
	return v
}

// ToUint64 returns the low 64 bits of v.
func ToUint64[T Word[T]](v T) uint64 {
	switch w := any(v).(type) {
	case Line8:
		return uint64(w)
	case Line16:
		return uint64(w)
	case Line32:
		return uint64(w)
	case Line64:
		return uint64(w)
	case Line128:
		return w.Lo
	}
	return 0
}

// IsEmpty reports whether no bit of v is set.
func IsEmpty[T Word[T]](v T) bool { return v == Empty[T]() }

// IsNotEmpty reports whether at least one bit of v is set.
func IsNotEmpty[T Word[T]](v T) bool { return !IsEmpty(v) }

// IsFull reports whether every bit of v is set.
func IsFull[T Word[T]](v T) bool { return v == Full[T]() }

// IsNotFull reports whether at least one bit of v is clear.
func IsNotFull[T Word[T]](v T) bool { return !IsFull(v) }

// bitAt returns the word with only position i set.
func bitAt[T Word[T]](i int) T {
	msb := Full[T]().Rsh(1).Not()
	return msb.Rsh(uint(i))
}
