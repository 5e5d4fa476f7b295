package transcoder

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/errors"
)

// maxScalarBytes is the longest serialization of one scalar in any form.
const maxScalarBytes = 4

// Transformer transcodes a byte stream from one form to another. It
// implements transform.Transformer.
//
// Decoder lookahead is kept between calls, so a sequence split across two
// source buffers decodes as if it were contiguous. A sequence is only decoded
// once it is entirely available or the input has ended.
type Transformer struct {
	from, to Form
	policy   Policy
	dec      formDecoder
	enc      formEncoder
	err      error
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer returns a Transformer from one form to another. Invalid
// forms are treated as UTF-8; check them with Form.Valid first.
func NewTransformer(from, to Form, policy Policy) *Transformer {
	return &Transformer{
		from:   from,
		to:     to,
		policy: policy,
		dec:    from.newDecoder(),
		enc:    to.newEncoder(),
	}
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.dec.reset()
	t.err = nil
}

// Transform implements transform.Transformer.
//
// Under StopOnError the first ill-formed sequence fails the transformer with
// an *errors.Error of kind ill_formed; it keeps failing until Reset. A partial
// code unit at the end of input is reported with kind truncated.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if t.err != nil {
		return 0, 0, t.err
	}
	size := t.from.UnitSize()
	need := t.from.maxUnits()

	for {
		avail := (len(src) - nSrc) / size
		buffered := t.dec.buffered()
		if avail == 0 && buffered == 0 {
			break
		}
		if !atEOF && buffered+avail < need {
			break
		}
		if len(dst)-nDst < maxScalarBytes {
			return nDst, nSrc, transform.ErrShortDst
		}

		start := t.dec.offset() * int64(size)
		r, n := t.dec.decode(src[nSrc:])
		nSrc += n
		if r.IsEmptyInput() {
			break
		}
		if s, ok := r.Scalar(); ok {
			nDst += t.enc.encode(s, dst[nDst:])
			continue
		}
		if t.policy == StopOnError {
			logStop(t.from.String(), start)
			t.err = errors.IllFormed(errors.PhaseTranscode, t.from.String(), start)
			return nDst, nSrc, t.err
		}
		logSubstitution(t.from.String(), start)
		nDst += t.enc.encode(codec.Replacement, dst[nDst:])
	}

	rest := len(src) - nSrc
	if rest == 0 {
		return nDst, nSrc, nil
	}
	if !atEOF {
		return nDst, nSrc, transform.ErrShortSrc
	}

	// A partial code unit is all that is left.
	start := t.dec.offset() * int64(size)
	if t.policy == StopOnError {
		logStop(t.from.String(), start)
		t.err = errors.New(errors.PhaseTranscode, errors.KindTruncated).
			Encoding(t.from.String()).
			Offset(start).
			Value(rest).
			Detail("%d trailing bytes do not form a code unit", rest).
			Build()
		return nDst, nSrc, t.err
	}
	if len(dst)-nDst < maxScalarBytes {
		return nDst, nSrc, transform.ErrShortDst
	}
	logSubstitution(t.from.String(), start)
	nDst += t.enc.encode(codec.Replacement, dst[nDst:])
	return nDst, len(src), nil
}

// maxUnits returns the most code units one decode step may pull.
func (f Form) maxUnits() int {
	switch f {
	case UTF16LE, UTF16BE:
		return codec.CheckedUTF16.MaxUnits()
	case UTF32LE, UTF32BE:
		return codec.CheckedUTF32.MaxUnits()
	default:
		return codec.UTF8.MaxUnits()
	}
}

// formEncoding adapts a Form to encoding.Encoding. Both directions substitute
// U+FFFD for ill-formed input.
type formEncoding struct {
	form Form
}

// Encoding returns f as an x/text encoding whose decoder produces UTF-8.
func Encoding(f Form) encoding.Encoding {
	return formEncoding{form: f}
}

func (e formEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: NewTransformer(e.form, UTF8, Substitute)}
}

func (e formEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: NewTransformer(UTF8, e.form, Substitute)}
}

func (e formEncoding) String() string {
	return e.form.String()
}

// NewReader returns a reader that transcodes r from one form to another.
func NewReader(r io.Reader, from, to Form, policy Policy) io.Reader {
	return transform.NewReader(r, NewTransformer(from, to, policy))
}

// NewWriter returns a writer that transcodes into w. The caller must Close
// it to flush a sequence still buffered at the end of input.
func NewWriter(w io.Writer, from, to Form, policy Policy) io.WriteCloser {
	return transform.NewWriter(w, NewTransformer(from, to, policy))
}
