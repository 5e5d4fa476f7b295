package abi

import (
	"math"
	"reflect"
)

const (
	// UTF16Tag marks a latin1+utf16 string length as counting UTF-16 units.
	UTF16Tag = 1 << 31
	// MaxStringSize is the largest string byte length the canonical ABI allows.
	MaxStringSize = 1<<31 - 1
)

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// Aligned reports whether ptr is a multiple of align, a power of two.
func Aligned(ptr, align uint32) bool {
	return align == 0 || ptr&(align-1) == 0
}

// ValidateChar rejects surrogates (0xD800-0xDFFF) and values >= 0x110000.
func ValidateChar(v uint32) bool {
	return v < 0xD800 || (v > 0xDFFF && v < 0x110000)
}
