// Package bitline provides a closed algebra over fixed-width bit patterns.
//
// A bit line is a single unsigned word (8, 16, 32, 64 or 128 bits) read as an
// ordered sequence of boolean positions. Every operation is a pure function of
// its arguments and returns a new word of the same width.
//
// # Indexing
//
// Position 0 is the most-significant bit and position W-1 the least-significant
// bit. Scanning, ranges, rank and select all count from the MSB end:
//
//	bitline.ByRange[bitline.Line8](2, 5)            // 0b00111000
//	bitline.FirstIndex(bitline.Line8(0b00111000))    // 2, true
//	bitline.Select1(bitline.Line8(0b00011110), 0)    // 3, true
//
// # Widths
//
// The algebra is written once against the Word constraint and instantiated for
// Line8, Line16, Line32, Line64 and Line128. Consumers that want to stay
// width-agnostic take a type parameter bound by Word:
//
//	func widest[T bitline.Word[T]](rows []T) int {
//	    n := 0
//	    for _, r := range rows {
//	        n = max(n, bitline.NumBits(bitline.FilledFirstBitToLastBit(r)))
//	    }
//	    return n
//	}
//
// # Totality
//
// No function panics or returns an error. Absence (the first set bit of an
// empty word, a select past the last occurrence) is reported through a second
// boolean result. Out-of-range positions are clamped into [0, W] and rotation
// amounts are reduced modulo W.
//
// Repr, Parse and the String methods are the only functions that allocate.
package bitline
