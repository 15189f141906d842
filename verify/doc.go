// Package verify checks the algebraic laws of package bitline.
//
// Every law is an identity that must hold for each word of a width, for
// example "RightRotate(LeftRotate(v, n), n) == v" or "Gray codes of
// consecutive words differ in exactly one bit". Bijection laws additionally
// require that a map never sends two distinct words to the same word; they are
// checked with Roaring bitmaps as collision sets.
//
// Architecture:
//   - Domains: 8- and 16-bit words are enumerated exhaustively, 32-bit words
//     optionally; wider words use the edge words plus seeded random samples.
//   - Fan-out: one task per (width, law), bounded by an errgroup limit. The
//     first violation cancels the remaining tasks.
//   - Progress: long-running tasks log throttled progress at debug level.
//
// Usage:
//
//	report, err := verify.New(verify.WithWidths(8, 16)).Run(ctx)
//	if err != nil {
//	    var le *verify.LawError
//	    if errors.As(err, &le) { ... }
//	}
//	report.WriteTo(os.Stdout)
package verify
