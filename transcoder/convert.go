package transcoder

import (
	"bytes"
	"slices"

	"golang.org/x/text/transform"

	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/errors"
)

// Convert transcodes src from one form to another and returns a new slice.
// Under StopOnError, ill-formed input fails with an *errors.Error.
func Convert(src []byte, from, to Form, policy Policy) ([]byte, error) {
	for _, f := range [...]Form{from, to} {
		if !f.Valid() {
			return nil, errors.Unsupported(errors.PhaseTranscode, f.String())
		}
	}

	t := NewTransformer(from, to, policy)
	bufp := getBuf()
	defer putBuf(bufp)

	estimate := len(src) / from.UnitSize() * to.UnitSize()
	buf := slices.Grow((*bufp)[:0], max(estimate, maxScalarBytes))
	for nSrc := 0; ; {
		nDst, n, err := t.Transform(buf[len(buf):cap(buf)], src[nSrc:], true)
		buf = buf[:len(buf)+nDst]
		nSrc += n
		if err == transform.ErrShortDst {
			buf = slices.Grow(buf, max(len(src)-nSrc, maxScalarBytes))
			continue
		}
		if err != nil {
			*bufp = buf
			return nil, err
		}
		break
	}
	*bufp = buf
	return bytes.Clone(buf), nil
}

// UTF8ToUTF16 converts UTF-8 to UTF-16 code units, sizing the result with a
// measure pass first.
func UTF8ToUTF16(src []byte, policy Policy) ([]uint16, error) {
	return convertUnits(src, codec.UTF8, codec.UTF16, policy, 16)
}

// UTF16ToUTF8 converts UTF-16 code units to UTF-8. Unpaired surrogates are
// ill-formed.
func UTF16ToUTF8(src []uint16, policy Policy) ([]byte, error) {
	return convertUnits(src, codec.CheckedUTF16, codec.UTF8, policy, 8)
}

// UTF8ToUTF32 converts UTF-8 to UTF-32 code units.
func UTF8ToUTF32(src []byte, policy Policy) ([]uint32, error) {
	return convertUnits(src, codec.UTF8, codec.UTF32, policy, 32)
}

// UTF32ToUTF8 converts UTF-32 code units to UTF-8. Surrogates and values
// above U+10FFFF are ill-formed.
func UTF32ToUTF8(src []uint32, policy Policy) ([]byte, error) {
	return convertUnits(src, codec.CheckedUTF32, codec.UTF8, policy, 8)
}

func convertUnits[F, T codec.CodeUnit](src []F, from codec.Encoding[F], to codec.Encoding[T], policy Policy, bits int) ([]T, error) {
	m, at, ok := measure(from.NewDecoder(), codec.NewSliceSource(src), policy == Substitute)
	if !ok {
		logStop(from.Name(), at)
		return nil, errors.IllFormed(errors.PhaseTranscode, from.Name(), at)
	}
	sink := codec.NewSliceSink[T](m.Len(bits))
	pump(from.NewDecoder(), to.Encoder(), codec.NewSliceSource(src), sink, Substitute, from.Name())
	return sink.Units, nil
}
