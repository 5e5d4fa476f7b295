package codec

import "github.com/wippyai/textcodec"

type CodeUnit = textcodec.CodeUnit
type Source[T CodeUnit] = textcodec.Source[T]
type Sink[T CodeUnit] = textcodec.Sink[T]

// Decoder turns code units pulled from a Source into Results.
type Decoder[T CodeUnit] interface {
	// Decode consumes the units of exactly one sequence (or one ill-formed
	// subpart) and reports it. Once EmptyInput is returned it is returned forever.
	Decode(src Source[T]) Result
}

// Encoder appends the code units of one scalar to a Sink.
type Encoder[T CodeUnit] interface {
	Encode(s Scalar, dst Sink[T])
}

// Encoding describes one code-unit encoding.
type Encoding[T CodeUnit] interface {
	// Name returns the IANA-style name of the encoding.
	Name() string

	// MaxUnits returns the maximum number of code units per scalar.
	MaxUnits() int

	// NewDecoder returns a decoder for one traversal.
	NewDecoder() Decoder[T]

	// Encoder returns a stateless encoder.
	Encoder() Encoder[T]
}

// Lookahead is implemented by decoders that hold code units pulled from the
// source but not yet consumed.
type Lookahead interface {
	Buffered() int
}

// Positioned is implemented by decoders that track how many code units they
// have consumed, i.e. the offset of the next sequence.
type Positioned interface {
	Offset() int64
}

var (
	UTF8         Encoding[uint8]  = utf8Encoding{}
	UTF16        Encoding[uint16] = utf16Encoding{}
	UTF32        Encoding[uint32] = utf32Encoding{}
	CheckedUTF16 Encoding[uint16] = utf16Encoding{checked: true}
	CheckedUTF32 Encoding[uint32] = utf32Encoding{checked: true}
	Latin1       Encoding[uint8]  = latin1Encoding{}
)

type utf8Encoding struct{}

func (utf8Encoding) Name() string               { return "UTF-8" }
func (utf8Encoding) MaxUnits() int              { return 4 }
func (utf8Encoding) NewDecoder() Decoder[uint8] { return NewUTF8Decoder() }
func (utf8Encoding) Encoder() Encoder[uint8]    { return UTF8Encoder{} }
func (utf8Encoding) String() string             { return "UTF-8" }

type utf16Encoding struct {
	checked bool
}

func (utf16Encoding) Name() string { return "UTF-16" }

func (utf16Encoding) MaxUnits() int { return 2 }

func (e utf16Encoding) NewDecoder() Decoder[uint16] {
	if e.checked {
		return &CheckedUTF16Decoder{}
	}
	return &UTF16Decoder{}
}

func (utf16Encoding) Encoder() Encoder[uint16] { return UTF16Encoder{} }

func (e utf16Encoding) String() string {
	if e.checked {
		return "UTF-16 (checked)"
	}
	return "UTF-16"
}

type utf32Encoding struct {
	checked bool
}

func (utf32Encoding) Name() string { return "UTF-32" }

func (utf32Encoding) MaxUnits() int { return 1 }

func (e utf32Encoding) NewDecoder() Decoder[uint32] {
	return &UTF32Decoder{checked: e.checked}
}

func (utf32Encoding) Encoder() Encoder[uint32] { return UTF32Encoder{} }

func (e utf32Encoding) String() string {
	if e.checked {
		return "UTF-32 (checked)"
	}
	return "UTF-32"
}

type latin1Encoding struct{}

func (latin1Encoding) Name() string               { return "ISO-8859-1" }
func (latin1Encoding) MaxUnits() int              { return 1 }
func (latin1Encoding) NewDecoder() Decoder[uint8] { return &Latin1Decoder{} }
func (latin1Encoding) Encoder() Encoder[uint8]    { return Latin1Encoder{} }
func (latin1Encoding) String() string             { return "ISO-8859-1" }
