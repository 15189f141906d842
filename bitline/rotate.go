package bitline

// LeftRotate rotates v towards the most-significant end by n mod W positions.
// Negative n rotates to the right.
func LeftRotate[T Word[T]](v T, n int) T {
	w := v.Width()
	k := rotation(n, w)
	if k == 0 {
		return v
	}
	return v.Lsh(uint(k)).Or(v.Rsh(uint(w - k)))
}

// RightRotate rotates v towards the least-significant end by n mod W
// positions. Negative n rotates to the left.
func RightRotate[T Word[T]](v T, n int) T {
	w := v.Width()
	k := rotation(n, w)
	if k == 0 {
		return v
	}
	return v.Rsh(uint(k)).Or(v.Lsh(uint(w - k)))
}

// rotation reduces n into [0, w).
func rotation(n, w int) int {
	k := n % w
	if k < 0 {
		k += w
	}
	return k
}
