package bitline

// BinToGrayCode encodes v as a reflected binary Gray code.
func BinToGrayCode[T Word[T]](v T) T {
	return v.Xor(v.Rsh(1))
}

// GrayCodeToBin decodes a reflected binary Gray code.
func GrayCodeToBin[T Word[T]](v T) T {
	for s := 1; s < v.Width(); s <<= 1 {
		v = v.Xor(v.Rsh(uint(s)))
	}
	return v
}

// BinToBitReversalPermutation moves position i to position W-1-i.
func BinToBitReversalPermutation[T Word[T]](v T) T {
	return v.Reverse()
}

// BitReversalPermutationToBin is the inverse of BinToBitReversalPermutation.
// The permutation is its own inverse.
func BitReversalPermutationToBin[T Word[T]](v T) T {
	return v.Reverse()
}

// TwoBitsGrayCodeRotation maps every two-bit group of v independently
// through 00→01→11→10→00, a quarter turn along the Gray cycle of a 2x2
// quadrant. Four applications are the identity.
func TwoBitsGrayCodeRotation[T Word[T]](v T) T {
	r := v.And(v.mask01()).Lsh(1)
	l := v.Not().And(v.mask10()).Rsh(1)
	return r.Or(l)
}
