// Package utf8seq classifies and validates UTF-8 byte windows.
//
// It holds the three pure functions the UTF-8 decoder is built on:
//
//   - TrailingCount: lead byte to expected continuation count (or Invalid)
//   - Valid: well-formedness of a buffered window against the Unicode legality table
//   - MaximalSubpart: resynchronization length for an ill-formed window (Unicode D93b)
//
// This package is internal to codec.
package utf8seq
