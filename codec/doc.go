// Package codec converts between fixed-width code units and Unicode scalar values.
//
// # Encodings
//
//	Encoding       Unit     Units/scalar  Ill-formed input
//	───────────────────────────────────────────────────────
//	UTF8           uint8    1-4           Error, maximal subpart skipped
//	UTF16          uint16   1-2           precondition (not checked)
//	UTF32          uint32   1             precondition (not checked)
//	CheckedUTF16   uint16   1-2           Error, one unit skipped
//	CheckedUTF32   uint32   1             Error, one unit skipped
//	Latin1         uint8    1             none (every byte is a scalar)
//
// # Decoding
//
// A decoder is created per traversal and pulls from a Source:
//
//	dec := codec.UTF8.NewDecoder()
//	src := codec.NewSliceSource(data)
//	for {
//	    r := dec.Decode(src)
//	    if r.IsEmptyInput() {
//	        break
//	    }
//	    ...
//	}
//
// Decode returns exactly one Result per call: a Scalar, EmptyInput when the
// source is drained, or IllFormed. EmptyInput is not an error, and callers must
// keep decoding until they see it because decoders buffer lookahead.
//
// # UTF-8 Recovery
//
// The UTF-8 decoder keeps up to four bytes of lookahead. When the sequence at the
// oldest buffered byte is ill-formed it discards the maximal subpart of that
// sequence (Unicode 6.3 D93b) and reports one error, so
//
//	F0 90 80 41
//
// decodes as IllFormed (F0 90 80) followed by U+0041.
//
// # Encoding
//
// Encoders append the code units for one Scalar to a Sink. A Scalar is always in
// range, so encoding cannot fail; Latin1 additionally requires scalars <= 0xFF.
//
// # Thread Safety
//
// The Encoding values are immutable. Decoders, sources and sinks are NOT
// thread-safe; use one per goroutine.
package codec
