package codec

import "fmt"

// Scalar is a Unicode scalar value: [0, 0x10FFFF] excluding the surrogates
// [0xD800, 0xDFFF].
type Scalar uint32

const (
	// MaxScalar is the largest Unicode scalar value.
	MaxScalar Scalar = 0x10FFFF

	// Replacement is U+FFFD, substituted for ill-formed input.
	Replacement Scalar = 0xFFFD

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// IsScalar reports whether v is a Unicode scalar value.
func IsScalar(v uint32) bool {
	return v <= uint32(MaxScalar) && (v < surrogateMin || v > surrogateMax)
}

// ScalarOf returns v as a Scalar, or false if v is out of range or a surrogate.
func ScalarOf(v uint32) (Scalar, bool) {
	if !IsScalar(v) {
		return 0, false
	}
	return Scalar(v), true
}

// MustScalar is like ScalarOf but panics on an invalid value.
func MustScalar(v uint32) Scalar {
	s, ok := ScalarOf(v)
	if !ok {
		panic(fmt.Sprintf("codec: 0x%X is not a Unicode scalar value", v))
	}
	return s
}

// Rune returns s as a Go rune.
func (s Scalar) Rune() rune {
	return rune(s)
}

// IsASCII reports whether s is below 0x80.
func (s Scalar) IsASCII() bool {
	return s < 0x80
}

// UTF8Width returns the number of bytes s occupies in UTF-8.
func (s Scalar) UTF8Width() int {
	switch {
	case s < 0x80:
		return 1
	case s < 0x800:
		return 2
	case s < 0x10000:
		return 3
	default:
		return 4
	}
}

// UTF16Width returns the number of UTF-16 code units s occupies.
func (s Scalar) UTF16Width() int {
	if s <= 0xFFFF {
		return 1
	}
	return 2
}

func (s Scalar) String() string {
	return fmt.Sprintf("U+%04X", uint32(s))
}
