package bitline

// Radius returns the positions exactly n away from a set bit of v.
//
// The two shifted copies are combined with XOR, not OR: a position reached
// from both sides (two set bits 2n apart) cancels out.
//
//	Radius(Line8(0b00010000), 2) == 0b01000100
func Radius[T Word[T]](v T, n int) T {
	s := shift(n)
	return v.Lsh(s).Xor(v.Rsh(s))
}

// Around returns the union of Radius(v, m) for m in [0, n]. The seed bits
// themselves are only present if another seed reaches them.
//
//	Around(Line8(0b00010000), 2) == 0b01101100
func Around[T Word[T]](v T, n int) T {
	var a T
	limit := min(n, v.Width())
	for m := 0; m <= limit; m++ {
		a = a.Or(Radius(v, m))
	}
	return a
}

// WithAround returns v dilated by n positions in both directions.
func WithAround[T Word[T]](v T, n int) T {
	return v.Or(Around(v, n))
}

// shift converts a distance to a shift count; negative distances count as 0.
func shift(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}
