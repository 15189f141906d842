package testutil

import (
	"iter"
	"math/rand"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/bittersweet/bitline"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uniform returns a uniformly distributed value of the unsigned type U.
func Uniform[U constraints.Unsigned](r *RNG) U {
	return U(r.Uint64())
}

// Line returns a uniformly distributed word.
func Line[T bitline.Word[T]](r *RNG) T {
	if bitline.Len[T]() > 64 {
		hi, lo := r.Uint64(), r.Uint64()
		return any(bitline.NewLine128(hi, lo)).(T)
	}
	return bitline.FromUint64[T](r.Uint64())
}

// Sparse returns a word in which each bit is set with probability 1/8.
func Sparse[T bitline.Word[T]](r *RNG) T {
	return Line[T](r).And(Line[T](r)).And(Line[T](r))
}

// Edges returns the boundary words of T: empty, full, both alternating
// masks and every single-bit word.
func Edges[T bitline.Word[T]]() []T {
	w := bitline.Len[T]()
	edges := make([]T, 0, w+4)
	edges = append(edges,
		bitline.Empty[T](),
		bitline.Full[T](),
		bitline.Mask01[T](),
		bitline.Mask10[T](),
	)
	for i := range w {
		edges = append(edges, bitline.ByRange[T](i, i+1))
	}
	return edges
}

// Lines returns the edge words of T followed by n random words, alternating
// between uniform and sparse draws.
func Lines[T bitline.Word[T]](r *RNG, n int) []T {
	lines := Edges[T]()
	for i := range n {
		if i%2 == 0 {
			lines = append(lines, Line[T](r))
		} else {
			lines = append(lines, Sparse[T](r))
		}
	}
	return lines
}

// Exhaustive yields every value of U in ascending order.
func Exhaustive[U constraints.Unsigned]() iter.Seq[U] {
	return func(yield func(U) bool) {
		for u := U(0); ; u++ {
			if !yield(u) || u == ^U(0) {
				return
			}
		}
	}
}

// ExhaustiveLines yields every word of T, enumerated through the native
// unsigned type U of the same width.
func ExhaustiveLines[T bitline.Word[T], U constraints.Unsigned]() iter.Seq[T] {
	return func(yield func(T) bool) {
		for u := range Exhaustive[U]() {
			if !yield(bitline.FromUint64[T](uint64(u))) {
				return
			}
		}
	}
}
