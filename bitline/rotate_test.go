package bitline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bittersweet/bitline"
	"github.com/hupe1980/bittersweet/testutil"
)

func TestLeftRotate(t *testing.T) {
	want := []bitline.Line8{
		0b11110000,
		0b11100001,
		0b11000011,
		0b10000111,
		0b00001111,
		0b00011110,
		0b00111100,
		0b01111000,
		0b11110000,
		0b11100001,
	}

	for n, w := range want {
		assert.Equal(t, w, bitline.LeftRotate(bitline.Line8(0b11110000), n), "n=%d", n)
	}
	assert.Equal(t, bitline.Line8(0b11011000), bitline.LeftRotate(bitline.Line8(0b01101100), 1))
}

func TestRightRotate(t *testing.T) {
	want := []bitline.Line8{
		0b11110000,
		0b01111000,
		0b00111100,
		0b00011110,
		0b00001111,
		0b10000111,
		0b11000011,
		0b11100001,
		0b11110000,
		0b01111000,
	}

	for n, w := range want {
		assert.Equal(t, w, bitline.RightRotate(bitline.Line8(0b11110000), n), "n=%d", n)
	}
}

func TestRotate_Negative(t *testing.T) {
	v := bitline.Line8(0b11110000)
	for n := 0; n < 20; n++ {
		assert.Equal(t, bitline.RightRotate(v, n), bitline.LeftRotate(v, -n))
		assert.Equal(t, bitline.LeftRotate(v, n), bitline.RightRotate(v, -n))
	}
}

func TestRotate_Line128(t *testing.T) {
	assert.Equal(t, bitline.NewLine128(0, 1), bitline.LeftRotate(bitline.NewLine128(1<<63, 0), 1))
	assert.Equal(t, bitline.NewLine128(1, 0), bitline.LeftRotate(bitline.NewLine128(0, 1<<63), 1))
	assert.Equal(t, bitline.NewLine128(0xab, 0xcd), bitline.LeftRotate(bitline.NewLine128(0xcd, 0xab), 64))
	assert.Equal(t, bitline.NewLine128(1<<63, 0), bitline.RightRotate(bitline.NewLine128(0, 1), 1))
}

func TestRotate_Reversible(t *testing.T) {
	for v := range testutil.ExhaustiveLines[bitline.Line8, uint8]() {
		for n := -130; n < 130; n++ {
			assert.Equal(t, v, bitline.LeftRotate(bitline.RightRotate(v, n), n))
			assert.Equal(t, v, bitline.RightRotate(bitline.LeftRotate(v, n), n))
		}
	}

	eachWidth(t,
		testRotateReversible[bitline.Line8],
		testRotateReversible[bitline.Line16],
		testRotateReversible[bitline.Line32],
		testRotateReversible[bitline.Line64],
		testRotateReversible[bitline.Line128],
	)
}

func testRotateReversible[T bitline.Word[T]](t *testing.T) {
	rng := testutil.NewRNG(4711)
	w := bitline.Len[T]()

	for _, v := range testutil.Lines[T](rng, 50) {
		for n := -2 * w; n <= 2*w; n += 3 {
			assert.Equal(t, v, bitline.LeftRotate(bitline.RightRotate(v, n), n))
			assert.Equal(t, v, bitline.RightRotate(bitline.LeftRotate(v, n), n))
		}
		assert.Equal(t, v, bitline.LeftRotate(v, w))
		assert.Equal(t, bitline.NumBits(v), bitline.NumBits(bitline.LeftRotate(v, 5)))
	}
}
