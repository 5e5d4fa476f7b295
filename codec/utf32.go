package codec

// UTF32Decoder decodes UTF-32 code units.
//
// Unless created through CheckedUTF32 it returns every unit as a scalar without
// range or surrogate validation.
type UTF32Decoder struct {
	offset  int64
	checked bool
}

// Decode implements Decoder.
func (d *UTF32Decoder) Decode(src Source[uint32]) Result {
	u, ok := src.Next()
	if !ok {
		return EmptyInput
	}
	d.offset++
	if d.checked && !IsScalar(u) {
		return IllFormed
	}
	return ScalarResult(Scalar(u))
}

// Offset returns the number of code units consumed so far.
func (d *UTF32Decoder) Offset() int64 {
	return d.offset
}

// UTF32Encoder emits each scalar as one code unit.
type UTF32Encoder struct{}

// Encode implements Encoder.
func (UTF32Encoder) Encode(s Scalar, dst Sink[uint32]) {
	dst.Push(uint32(s))
}
