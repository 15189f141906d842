// Package bittersweet is the root of a small toolkit for fixed-width bit
// algebra.
//
// The algebra itself lives in package bitline. This package carries the
// ambient pieces shared by the tooling around it: the structured Logger and
// the MetricsCollector used by the law checker (package verify) and the
// bitline command.
//
// # Quick Start
//
//	v := bitline.Line8(0b00011110)
//	i, ok := bitline.Select1(v, 0)            // 3, true
//	n := bitline.Rank0(v, 5)                  // 3
//	g := bitline.BinToGrayCode(v)             // 00010001
//
// # Verifying the Laws
//
//	report, err := verify.New(
//	    verify.WithWidths(8, 16, 64),
//	    verify.WithLogger(bittersweet.NewTextLogger(os.Stderr, slog.LevelDebug)),
//	).Run(ctx)
//
// # Modules
//
//   - bitline: the word capability, the five widths and every operation
//   - verify: exhaustive and sampled checking of the algebraic laws
//   - testutil: seeded generators of words for tests and benchmarks
//   - cmd/bitline: a diagnostics CLI (eval, verify, info)
package bittersweet
