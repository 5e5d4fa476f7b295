package codec

const (
	leadMin  = 0xD800
	trailMin = 0xDC00
)

func isSurrogate(u uint16) bool { return u>>11 == 0b11011 }
func isTrail(u uint16) bool     { return u>>10 == 0b110111 }

func combine(lead, trail uint16) Scalar {
	return Scalar(0x10000 + (uint32(lead)-leadMin)<<10 + (uint32(trail) - trailMin))
}

// UTF16Decoder decodes well-formed UTF-16.
//
// It does not validate surrogate pairing: a lead surrogate is always combined
// with the next unit, whatever it is. A lead surrogate at end of input is a
// precondition violation and panics. Use CheckedUTF16 for untrusted input.
type UTF16Decoder struct {
	offset int64
}

// Decode implements Decoder.
func (d *UTF16Decoder) Decode(src Source[uint16]) Result {
	u, ok := src.Next()
	if !ok {
		return EmptyInput
	}
	d.offset++
	if !isSurrogate(u) {
		return ScalarResult(Scalar(u))
	}
	trail, ok := src.Next()
	if !ok {
		panic("codec: UTF-16 lead surrogate at end of input")
	}
	d.offset++
	return ScalarResult(combine(u, trail))
}

// Offset returns the number of code units consumed so far.
func (d *UTF16Decoder) Offset() int64 {
	return d.offset
}

// CheckedUTF16Decoder decodes UTF-16 and reports unpaired surrogates.
//
// Each unpaired surrogate is one IllFormed result. A lead surrogate followed by
// anything but a trail surrogate consumes only the lead; the next unit is kept
// and decoded on the following call.
type CheckedUTF16Decoder struct {
	offset     int64
	pending    uint16
	hasPending bool
}

// Decode implements Decoder.
func (d *CheckedUTF16Decoder) Decode(src Source[uint16]) Result {
	u, ok := d.next(src)
	if !ok {
		return EmptyInput
	}
	d.offset++
	switch {
	case !isSurrogate(u):
		return ScalarResult(Scalar(u))
	case isTrail(u):
		return IllFormed
	}

	trail, ok := src.Next()
	if !ok {
		return IllFormed
	}
	if !isTrail(trail) {
		d.pending, d.hasPending = trail, true
		return IllFormed
	}
	d.offset++
	return ScalarResult(combine(u, trail))
}

func (d *CheckedUTF16Decoder) next(src Source[uint16]) (uint16, bool) {
	if d.hasPending {
		d.hasPending = false
		return d.pending, true
	}
	return src.Next()
}

// Buffered returns 1 while a unit read past an unpaired lead is held back.
func (d *CheckedUTF16Decoder) Buffered() int {
	if d.hasPending {
		return 1
	}
	return 0
}

// Offset returns the number of code units consumed so far.
func (d *CheckedUTF16Decoder) Offset() int64 {
	return d.offset
}

// UTF16Encoder encodes scalars as UTF-16, splitting supplementary scalars into
// a surrogate pair.
type UTF16Encoder struct{}

// Encode implements Encoder.
func (UTF16Encoder) Encode(s Scalar, dst Sink[uint16]) {
	if s <= 0xFFFF {
		dst.Push(uint16(s))
		return
	}
	c := uint32(s) - 0x10000
	dst.Push(uint16(leadMin + c>>10))
	dst.Push(uint16(trailMin + c&0x3FF))
}
