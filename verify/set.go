package verify

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/bittersweet/bitline"
)

// wordSet records words seen by a bijection check.
type wordSet[T bitline.Word[T]] interface {
	// insert adds v and reports whether it was not yet present.
	insert(v T) bool
	len() uint64
}

// newWordSet picks the smallest set representation able to hold every word
// of the given width.
func newWordSet[T bitline.Word[T]](width int) wordSet[T] {
	switch {
	case width <= 32:
		return &bitmapSet[T]{rb: roaring.New()}
	case width <= 64:
		return &bitmap64Set[T]{rb: roaring64.New()}
	default:
		return make(mapSet[T])
	}
}

type bitmapSet[T bitline.Word[T]] struct {
	rb *roaring.Bitmap
}

func (s *bitmapSet[T]) insert(v T) bool {
	return s.rb.CheckedAdd(uint32(bitline.ToUint64(v)))
}

func (s *bitmapSet[T]) len() uint64 { return s.rb.GetCardinality() }

type bitmap64Set[T bitline.Word[T]] struct {
	rb *roaring64.Bitmap
}

func (s *bitmap64Set[T]) insert(v T) bool {
	return s.rb.CheckedAdd(bitline.ToUint64(v))
}

func (s *bitmap64Set[T]) len() uint64 { return s.rb.GetCardinality() }

// mapSet holds 128-bit words, which no roaring variant can index.
type mapSet[T bitline.Word[T]] map[T]struct{}

func (s mapSet[T]) insert(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

func (s mapSet[T]) len() uint64 { return uint64(len(s)) }
