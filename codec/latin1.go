package codec

import "fmt"

// Latin1Decoder maps every byte to the scalar with the same value.
type Latin1Decoder struct {
	offset int64
}

// Decode implements Decoder. It never returns IllFormed.
func (d *Latin1Decoder) Decode(src Source[uint8]) Result {
	b, ok := src.Next()
	if !ok {
		return EmptyInput
	}
	d.offset++
	return ScalarResult(Scalar(b))
}

// Offset returns the number of bytes consumed so far.
func (d *Latin1Decoder) Offset() int64 {
	return d.offset
}

// Latin1Encoder emits scalars up to 0xFF as single bytes.
// Larger scalars are a precondition violation and panic.
type Latin1Encoder struct{}

// Encode implements Encoder.
func (Latin1Encoder) Encode(s Scalar, dst Sink[uint8]) {
	if s > 0xFF {
		panic(fmt.Sprintf("codec: %s is not representable in Latin-1", s))
	}
	dst.Push(uint8(s))
}
