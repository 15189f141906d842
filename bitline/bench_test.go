package bitline_test

import (
	"testing"

	"github.com/hupe1980/bittersweet/bitline"
	"github.com/hupe1980/bittersweet/testutil"
)

var (
	sinkLine64  bitline.Line64
	sinkLine128 bitline.Line128
	sinkInt     int
)

func BenchmarkSelect1(b *testing.B) {
	rng := testutil.NewRNG(4711)
	v64 := testutil.Line[bitline.Line64](rng)
	v128 := testutil.Line[bitline.Line128](rng)

	b.Run("64", func(b *testing.B) {
		n := bitline.NumBits(v64)
		for i := 0; i < b.N; i++ {
			sinkInt, _ = bitline.Select1(v64, i%n)
		}
	})
	b.Run("128", func(b *testing.B) {
		n := bitline.NumBits(v128)
		for i := 0; i < b.N; i++ {
			sinkInt, _ = bitline.Select1(v128, i%n)
		}
	})
}

func BenchmarkRank1(b *testing.B) {
	rng := testutil.NewRNG(4711)
	v64 := testutil.Line[bitline.Line64](rng)
	v128 := testutil.Line[bitline.Line128](rng)

	b.Run("64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkInt = bitline.Rank1(v64, i&63)
		}
	})
	b.Run("128", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkInt = bitline.Rank1(v128, i&127)
		}
	})
}

func BenchmarkGrayCodeToBin(b *testing.B) {
	b.Run("64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkLine64 = bitline.GrayCodeToBin(bitline.Line64(i))
		}
	})
	b.Run("128", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkLine128 = bitline.GrayCodeToBin(bitline.NewLine128(uint64(i), uint64(i)))
		}
	})
}

func BenchmarkAround(b *testing.B) {
	v := bitline.Line64(0x0000_1000_0000_0100)
	for i := 0; i < b.N; i++ {
		sinkLine64 = bitline.Around(v, i&15)
	}
}
