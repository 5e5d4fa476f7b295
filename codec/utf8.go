package codec

import "github.com/wippyai/textcodec/codec/internal/utf8seq"

// UTF8Decoder is the resilient UTF-8 decoder.
//
// It keeps up to four bytes of lookahead. The zero value is ready to use.
type UTF8Decoder struct {
	buf      [4]byte
	buffered int   // valid bytes in buf, oldest first
	eofAt    int   // bytes buffered when the source ran dry
	eof      bool  // source reported exhaustion
	offset   int64 // bytes consumed so far
}

// NewUTF8Decoder returns a decoder for one traversal of a UTF-8 source.
func NewUTF8Decoder() *UTF8Decoder {
	return &UTF8Decoder{}
}

// valueMask keeps the payload bits of an accumulated sequence, by trailing count.
var valueMask = [4]uint32{0xFF, 0x7FF, 0xFFFF, 0x1FFFFF}

// Decode implements Decoder.
func (d *UTF8Decoder) Decode(src Source[uint8]) Result {
	d.fill(src)
	if d.buffered == 0 {
		return EmptyInput
	}

	lead := d.buf[0]
	trailing := utf8seq.TrailingCount(lead)
	if trailing == 0 {
		d.consume(1)
		return ScalarResult(Scalar(lead))
	}

	window := d.buf[:min(trailing+1, d.buffered)]
	if !utf8seq.Valid(window, trailing) {
		d.consume(utf8seq.MaximalSubpart(window))
		return IllFormed
	}

	v := uint32(lead)
	for _, c := range window[1:] {
		v = v<<6 | uint32(c&0x3F)
	}
	v &= valueMask[trailing]
	d.consume(len(window))
	return ScalarResult(Scalar(v))
}

// fill tops up the lookahead until it is full or the source is exhausted.
func (d *UTF8Decoder) fill(src Source[uint8]) {
	for !d.eof && d.buffered < len(d.buf) {
		b, ok := src.Next()
		if !ok {
			d.eof = true
			d.eofAt = d.buffered
			return
		}
		d.buf[d.buffered] = b
		d.buffered++
	}
}

func (d *UTF8Decoder) consume(n int) {
	copy(d.buf[:], d.buf[n:d.buffered])
	d.buffered -= n
	d.offset += int64(n)
}

// Buffered returns the number of bytes pulled from the source but not yet consumed.
func (d *UTF8Decoder) Buffered() int {
	return d.buffered
}

// Offset returns the number of bytes consumed so far.
func (d *UTF8Decoder) Offset() int64 {
	return d.offset
}

// Exhausted reports whether the source has signaled exhaustion, and if so how
// many bytes were still buffered at that moment.
func (d *UTF8Decoder) Exhausted() (remaining int, ok bool) {
	return d.eofAt, d.eof
}

// UTF8Encoder encodes scalars as UTF-8, most significant group first.
type UTF8Encoder struct{}

const (
	tx    = 0b10000000
	t2    = 0b11000000
	t3    = 0b11100000
	t4    = 0b11110000
	maskx = 0b00111111
)

// Encode implements Encoder.
func (UTF8Encoder) Encode(s Scalar, dst Sink[uint8]) {
	c := uint32(s)
	switch {
	case c < 0x80:
		dst.Push(uint8(c))
	case c < 0x800:
		dst.Push(t2 | uint8(c>>6))
		dst.Push(tx | uint8(c)&maskx)
	case c < 0x10000:
		dst.Push(t3 | uint8(c>>12))
		dst.Push(tx | uint8(c>>6)&maskx)
		dst.Push(tx | uint8(c)&maskx)
	default:
		dst.Push(t4 | uint8(c>>18))
		dst.Push(tx | uint8(c>>12)&maskx)
		dst.Push(tx | uint8(c>>6)&maskx)
		dst.Push(tx | uint8(c)&maskx)
	}
}
