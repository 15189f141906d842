package bitline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bittersweet/bitline"
)

// eachWidth runs fn as a subtest for every supported width.
func eachWidth(t *testing.T, fn8, fn16, fn32, fn64, fn128 func(t *testing.T)) {
	t.Helper()
	t.Run("8", fn8)
	t.Run("16", fn16)
	t.Run("32", fn32)
	t.Run("64", fn64)
	t.Run("128", fn128)
}

func TestEmptyAndFull(t *testing.T) {
	eachWidth(t,
		testEmptyAndFull[bitline.Line8],
		testEmptyAndFull[bitline.Line16],
		testEmptyAndFull[bitline.Line32],
		testEmptyAndFull[bitline.Line64],
		testEmptyAndFull[bitline.Line128],
	)
}

func testEmptyAndFull[T bitline.Word[T]](t *testing.T) {
	w := bitline.Len[T]()

	assert.Equal(t, strings.Repeat("0", w), bitline.Repr(bitline.Empty[T]()))
	assert.Equal(t, strings.Repeat("1", w), bitline.Repr(bitline.Full[T]()))

	assert.True(t, bitline.IsEmpty(bitline.Empty[T]()))
	assert.False(t, bitline.IsNotEmpty(bitline.Empty[T]()))
	assert.True(t, bitline.IsFull(bitline.Full[T]()))
	assert.False(t, bitline.IsNotFull(bitline.Full[T]()))

	one := bitline.ByRange[T](w-1, w)
	assert.True(t, bitline.IsNotEmpty(one))
	assert.True(t, bitline.IsNotFull(bitline.Full[T]().AndNot(one)))
}

func TestMasks(t *testing.T) {
	eachWidth(t,
		testMasks[bitline.Line8],
		testMasks[bitline.Line16],
		testMasks[bitline.Line32],
		testMasks[bitline.Line64],
		testMasks[bitline.Line128],
	)
}

func testMasks[T bitline.Word[T]](t *testing.T) {
	half := bitline.Len[T]() / 2

	assert.Equal(t, strings.Repeat("01", half), bitline.Repr(bitline.Mask01[T]()))
	assert.Equal(t, strings.Repeat("10", half), bitline.Repr(bitline.Mask10[T]()))
	assert.Equal(t, bitline.Full[T](), bitline.Mask01[T]().Or(bitline.Mask10[T]()))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 8, bitline.Len[bitline.Line8]())
	assert.Equal(t, 16, bitline.Len[bitline.Line16]())
	assert.Equal(t, 32, bitline.Len[bitline.Line32]())
	assert.Equal(t, 64, bitline.Len[bitline.Line64]())
	assert.Equal(t, 128, bitline.Len[bitline.Line128]())

	assert.Equal(t, 1, bitline.ByteLen[bitline.Line8]())
	assert.Equal(t, 2, bitline.ByteLen[bitline.Line16]())
	assert.Equal(t, 4, bitline.ByteLen[bitline.Line32]())
	assert.Equal(t, 8, bitline.ByteLen[bitline.Line64]())
	assert.Equal(t, 16, bitline.ByteLen[bitline.Line128]())
}

func TestByRange(t *testing.T) {
	tests := []struct {
		name       string
		begin, end int
		want       bitline.Line8
	}{
		{"single", 3, 4, 0b00010000},
		{"middle", 2, 5, 0b00111000},
		{"full", 0, 8, 0b11111111},
		{"empty at start", 0, 0, 0b00000000},
		{"empty at end", 8, 8, 0b00000000},
		{"inverted", 5, 2, 0b00000000},
		{"end clamped", 6, 100, 0b00000011},
		{"begin past width", 9, 12, 0b00000000},
		{"negative begin", -3, 2, 0b11000000},
		{"negative end", 0, -1, 0b00000000},
		{"first", 0, 1, 0b10000000},
		{"last", 7, 8, 0b00000001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bitline.ByRange[bitline.Line8](tt.begin, tt.end))
		})
	}
}

func TestByRange_AllWidths(t *testing.T) {
	eachWidth(t,
		testByRange[bitline.Line8],
		testByRange[bitline.Line16],
		testByRange[bitline.Line32],
		testByRange[bitline.Line64],
		testByRange[bitline.Line128],
	)
}

func testByRange[T bitline.Word[T]](t *testing.T) {
	w := bitline.Len[T]()
	for begin := 0; begin <= w; begin++ {
		for end := begin; end <= w; end++ {
			want := strings.Repeat("0", begin) + strings.Repeat("1", end-begin) + strings.Repeat("0", w-end)
			assert.Equal(t, want, bitline.Repr(bitline.ByRange[T](begin, end)), "[%d, %d)", begin, end)
		}
	}
}

func TestByRange_Line128(t *testing.T) {
	assert.Equal(t, bitline.NewLine128(1, 1<<63), bitline.ByRange[bitline.Line128](63, 65))
	assert.Equal(t, bitline.NewLine128(0, ^uint64(0)), bitline.ByRange[bitline.Line128](64, 128))
	assert.Equal(t, bitline.NewLine128(^uint64(0), 0), bitline.ByRange[bitline.Line128](0, 64))
}

func TestFromUint64(t *testing.T) {
	assert.Equal(t, bitline.Line8(0xff), bitline.FromUint64[bitline.Line8](0x1ff))
	assert.Equal(t, bitline.Line16(0x2345), bitline.FromUint64[bitline.Line16](0x12345))
	assert.Equal(t, bitline.Line32(0x89abcdef), bitline.FromUint64[bitline.Line32](0x0123456789abcdef))
	assert.Equal(t, bitline.Line64(42), bitline.FromUint64[bitline.Line64](42))
	assert.Equal(t, bitline.NewLine128(0, 42), bitline.FromUint64[bitline.Line128](42))

	assert.Equal(t, uint64(0xf0), bitline.ToUint64(bitline.Line8(0xf0)))
	assert.Equal(t, uint64(9), bitline.ToUint64(bitline.NewLine128(7, 9)))
}
