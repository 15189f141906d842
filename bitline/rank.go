package bitline

// Access reports whether position index is set. Positions outside [0, W)
// are clear.
//
//	Access(Line8(0b00011110), 3) == true
func Access[T Word[T]](v T, index int) bool {
	return Range(v, index, index+1) != Empty[T]()
}

// Rank0 counts the clear bits in positions [0, index).
func Rank0[T Word[T]](v T, index int) int {
	return RankRange0(v, 0, index)
}

// Rank1 counts the set bits in positions [0, index).
func Rank1[T Word[T]](v T, index int) int {
	return RankRange1(v, 0, index)
}

// Rank counts the occurrences of bit in positions [0, index). index is
// clamped to [0, W].
func Rank[T Word[T]](v T, index int, bit bool) int {
	if bit {
		return Rank1(v, index)
	}
	return Rank0(v, index)
}

// RankRange0 counts the clear bits in positions [begin, end).
func RankRange0[T Word[T]](v T, begin, end int) int {
	return v.Not().And(ByRange[T](begin, end)).OnesCount()
}

// RankRange1 counts the set bits in positions [begin, end).
func RankRange1[T Word[T]](v T, begin, end int) int {
	return Range(v, begin, end).OnesCount()
}

// RankRange counts the occurrences of bit in positions [begin, end), using
// the same clamping as ByRange.
func RankRange[T Word[T]](v T, begin, end int, bit bool) int {
	if bit {
		return RankRange1(v, begin, end)
	}
	return RankRange0(v, begin, end)
}

// Select0 returns the position of the nth (0-indexed) clear bit.
func Select0[T Word[T]](v T, nth int) (index int, ok bool) {
	return Select1(v.Not(), nth)
}

// Select1 returns the position of the nth (0-indexed) set bit.
//
//	Select1(Line8(0b00011110), 0) == 3, true
//	Select1(Line8(0b00011110), 4) == 0, false
func Select1[T Word[T]](v T, nth int) (index int, ok bool) {
	if nth < 0 || nth >= v.OnesCount() {
		return 0, false
	}
	for range nth {
		v = v.AndNot(FirstBit(v))
	}
	return FirstIndex(v)
}

// Select returns the position of the nth (0-indexed) occurrence of bit. It is
// the smallest i with Rank(v, i+1, bit) == nth+1.
func Select[T Word[T]](v T, nth int, bit bool) (index int, ok bool) {
	if bit {
		return Select1(v, nth)
	}
	return Select0(v, nth)
}
