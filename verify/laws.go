package verify

import (
	"math/bits"

	"github.com/hupe1980/bittersweet/bitline"
)

// Law is an identity that must hold for every word of T.
type Law[T bitline.Word[T]] struct {
	Name  string
	Holds func(v T) bool
}

// Bijection is a map that must never send two distinct words of T to the
// same word.
type Bijection[T bitline.Word[T]] struct {
	Name string
	Map  func(v T) T
}

// Laws returns the identities of package bitline, instantiated for T.
func Laws[T bitline.Word[T]]() []Law[T] {
	return []Law[T]{
		{Name: "rotate-inverse", Holds: rotateInverse[T]},
		{Name: "gray-roundtrip", Holds: grayRoundtrip[T]},
		{Name: "gray-adjacent", Holds: grayAdjacent[T]},
		{Name: "bit-reversal-involution", Holds: bitReversalInvolution[T]},
		{Name: "two-bit-rotation-cycle", Holds: twoBitRotationCycle[T]},
		{Name: "rank-select-duality", Holds: rankSelectDuality[T]},
		{Name: "includes", Holds: includes[T]},
		{Name: "scan-consistency", Holds: scanConsistency[T]},
		{Name: "dilation", Holds: dilation[T]},
	}
}

// Bijections returns the reversible transforms of package bitline,
// instantiated for T.
func Bijections[T bitline.Word[T]]() []Bijection[T] {
	return []Bijection[T]{
		{Name: "gray-encode", Map: bitline.BinToGrayCode[T]},
		{Name: "gray-decode", Map: bitline.GrayCodeToBin[T]},
		{Name: "bit-reversal", Map: bitline.BinToBitReversalPermutation[T]},
		{Name: "two-bit-rotation", Map: bitline.TwoBitsGrayCodeRotation[T]},
		{Name: "two-bit-rotation-inverse", Map: func(v T) T {
			for range 3 {
				v = bitline.TwoBitsGrayCodeRotation(v)
			}
			return v
		}},
	}
}

func rotateInverse[T bitline.Word[T]](v T) bool {
	w := bitline.Len[T]()
	for _, n := range []int{0, 1, 2, w / 2, w - 1, w, w + 1, 2*w + 3, -1, -w - 5} {
		if bitline.RightRotate(bitline.LeftRotate(v, n), n) != v {
			return false
		}
		if bitline.LeftRotate(bitline.RightRotate(v, n), n) != v {
			return false
		}
	}
	return bitline.LeftRotate(v, w) == v
}

func grayRoundtrip[T bitline.Word[T]](v T) bool {
	return bitline.GrayCodeToBin(bitline.BinToGrayCode(v)) == v &&
		bitline.BinToGrayCode(bitline.GrayCodeToBin(v)) == v
}

// grayAdjacent checks that the Gray codes of v and v+1 (wrapping at the
// width) differ in exactly one bit.
func grayAdjacent[T bitline.Word[T]](v T) bool {
	diff := bitline.BinToGrayCode(v).Xor(bitline.BinToGrayCode(successor(v)))
	return bitline.NumBits(diff) == 1
}

func bitReversalInvolution[T bitline.Word[T]](v T) bool {
	r := bitline.BinToBitReversalPermutation(v)
	if bitline.BinToBitReversalPermutation(r) != v || bitline.BitReversalPermutationToBin(r) != v {
		return false
	}
	return bitline.NumBits(r) == bitline.NumBits(v)
}

// twoBitRotationCycle checks that v returns to itself after exactly four
// applications of the two-bit rotation.
func twoBitRotationCycle[T bitline.Word[T]](v T) bool {
	r := v
	for i := 1; i <= 4; i++ {
		r = bitline.TwoBitsGrayCodeRotation(r)
		if (r == v) != (i == 4) {
			return false
		}
	}
	return true
}

func rankSelectDuality[T bitline.Word[T]](v T) bool {
	w := bitline.Len[T]()
	ones := bitline.NumBits(v)
	if bitline.Rank1(v, w) != ones || bitline.Rank0(v, w) != w-ones {
		return false
	}

	for i := range w {
		if bitline.Access(v, i) != (bitline.Rank1(v, i+1)-bitline.Rank1(v, i) == 1) {
			return false
		}
	}
	if bitline.Access(v, -1) || bitline.Access(v, w) {
		return false
	}

	k := 0
	for i := range bitline.Ones(v) {
		if bitline.Rank1(v, i) != k || bitline.Rank1(v, i+1) != k+1 {
			return false
		}
		k++
	}

	// Select is linear in nth, so only a few ranks are probed per word.
	for _, bit := range []bool{true, false} {
		count := bitline.RankRange(v, 0, w, bit)
		for _, nth := range []int{0, count / 2, count - 1} {
			if nth < 0 {
				continue
			}
			i, ok := bitline.Select(v, nth, bit)
			if !ok || bitline.Rank(v, i+1, bit) != nth+1 || bitline.Rank(v, i, bit) != nth {
				return false
			}
		}
		if _, ok := bitline.Select(v, count, bit); ok {
			return false
		}
	}
	return true
}

func includes[T bitline.Word[T]](v T) bool {
	if !bitline.Includes(v, bitline.Empty[T]()) || !bitline.Includes(v, v) {
		return false
	}
	if !bitline.Includes(bitline.Full[T](), v) {
		return false
	}
	if bitline.IsNotFull(v) && bitline.Includes(v, bitline.FirstBit(v.Not())) {
		return false
	}
	return bitline.Overlaps(v, v) == bitline.IsNotEmpty(v) &&
		bitline.IsEmpty(bitline.Remove(v, v))
}

func scanConsistency[T bitline.Word[T]](v T) bool {
	first, okFirst := bitline.FirstIndex(v)
	last, okLast := bitline.LastIndex(v)
	if !okFirst || !okLast {
		return !okFirst && !okLast &&
			bitline.IsEmpty(v) &&
			bitline.IsEmpty(bitline.FirstBit(v)) &&
			bitline.IsEmpty(bitline.FilledFirstBitToLastBit(v))
	}

	filled := bitline.FilledFirstBitToLastBit(v)
	return bitline.FirstBit(v) == bitline.ByRange[T](first, first+1) &&
		bitline.LastBit(v) == bitline.ByRange[T](last, last+1) &&
		bitline.Includes(filled, v) &&
		bitline.NumBits(filled) == last-first+1 &&
		bitline.NumBits(bitline.FirstBits(v)) == bitline.NumBits(bitline.LastBits(v))
}

func dilation[T bitline.Word[T]](v T) bool {
	if bitline.IsNotEmpty(bitline.Radius(v, 0)) || bitline.Around(v, 0) != bitline.Empty[T]() {
		return false
	}
	for n := 1; n <= 3; n++ {
		if bitline.Around(v, n) != bitline.Around(v, n-1).Or(bitline.Radius(v, n)) {
			return false
		}
		if !bitline.Includes(bitline.WithAround(v, n), v) {
			return false
		}
	}
	return true
}

// successor returns v+1, wrapping to zero after the full word.
func successor[T bitline.Word[T]](v T) T {
	if w, ok := any(v).(bitline.Line128); ok {
		lo, carry := bits.Add64(w.Lo, 1, 0)
		return any(bitline.NewLine128(w.Hi+carry, lo)).(T)
	}
	return bitline.FromUint64[T](bitline.ToUint64(v) + 1)
}
