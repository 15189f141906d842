// Package testutil provides testing utilities for bittersweet.
//
// This package is intended for use in tests, benchmarks and the law checker.
// It provides seeded generators for words of every width and exhaustive
// enumeration of the native unsigned types.
//
// # Random Words
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.Line[bitline.Line64](rng)      // uniform
//	s := testutil.Sparse[bitline.Line128](rng)   // ~1/8 of the bits set
//	vs := testutil.Lines[bitline.Line32](rng, 1000)
//
// # Exhaustive Enumeration
//
//	for v := range testutil.ExhaustiveLines[bitline.Line16, uint16]() {
//	    // every 16-bit word, ascending
//	}
package testutil
