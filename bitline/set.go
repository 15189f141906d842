package bitline

// NumBits returns the number of set bits in v.
func NumBits[T Word[T]](v T) int {
	return v.OnesCount()
}

// Includes reports whether every bit set in other is also set in v.
// The empty word is included in every word.
func Includes[T Word[T]](v, other T) bool {
	return v.Or(other) == v
}

// Overlaps reports whether v and other share at least one set bit.
func Overlaps[T Word[T]](v, other T) bool {
	return v.And(other) != Empty[T]()
}

// Range keeps the bits of v in positions [begin, end).
func Range[T Word[T]](v T, begin, end int) T {
	return v.And(ByRange[T](begin, end))
}

// Remove clears the bits of v that are set in other.
func Remove[T Word[T]](v, other T) T {
	return v.AndNot(other)
}
