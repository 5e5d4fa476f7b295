// Package transcoder drives the codecs: it transcodes streams between
// encodings, measures input to presize storage, and adapts byte
// serializations to golang.org/x/text.
//
// # Transcoding
//
// Transcode pulls from a Source, decodes with one encoding and pushes the
// scalars, re-encoded, into a Sink:
//
//	┌──────────┐   units   ┌─────────┐  Result  ┌─────────┐  units   ┌──────┐
//	│  Source  │ ────────→ │ Decoder │ ───────→ │ Encoder │ ───────→ │ Sink │
//	└──────────┘           └─────────┘          └─────────┘          └──────┘
//
// The Policy decides what happens to an ill-formed sequence:
//
//	StopOnError  - return at once; the call is not resumable
//	Substitute   - write U+FFFD and continue
//
// Either way Transcode reports whether any ill-formed sequence was seen.
//
// # Measuring
//
// Measure runs the decoder with a counter in place of the encoder:
//
//	m, ok := transcoder.Measure(codec.NewSliceSource(b), codec.UTF8, false)
//	if !ok {
//	    // ill-formed, no measurement possible
//	}
//	buf := make([]uint16, 0, m.UTF16Len)
//
// With repair, each ill-formed sequence is charged as one U+FFFD.
//
// # Byte Forms
//
// A Form is an encoding plus a byte order:
//
//	Form       Unit   BOM
//	──────────────────────────────
//	utf-8      1      EF BB BF
//	utf-16le   2      FF FE
//	utf-16be   2      FE FF
//	utf-32le   4      FF FE 00 00
//	utf-32be   4      00 00 FE FF
//
// UTF-16 and UTF-32 forms decode with the checked codecs, so unpaired
// surrogates and out-of-range values are ill-formed rather than trusted.
// A partial code unit at the end of input is reported as truncated.
//
// # x/text Integration
//
// Transformer implements transform.Transformer and keeps decoder lookahead
// across calls. Encoding adapts a Form to encoding.Encoding, and NewReader
// and NewWriter wrap io streams:
//
//	r := transcoder.NewReader(f, transcoder.UTF16LE, transcoder.UTF8, transcoder.Substitute)
//
// # Thread Safety
//
// Forms and Policies are plain values. A Transformer holds decoder state and
// must not be shared between goroutines; the package level functions create
// their own.
package transcoder
