package abi

import "math"

// CoerceToChar returns the code point held by value. It accepts runes and
// other integer types, and strings of exactly one rune. The result is not
// validated as a scalar.
func CoerceToChar(value any) (uint32, bool) {
	switch v := value.(type) {
	case rune:
		if v >= 0 {
			return uint32(v), true
		}
	case uint32:
		return v, true
	case uint8:
		return uint32(v), true
	case uint16:
		return uint32(v), true
	case int:
		if v >= 0 && v <= math.MaxUint32 {
			return uint32(v), true
		}
	case int64:
		if v >= 0 && v <= math.MaxUint32 {
			return uint32(v), true
		}
	case uint64:
		if v <= math.MaxUint32 {
			return uint32(v), true
		}
	case string:
		var first rune
		n := 0
		for _, r := range v {
			first = r
			n++
		}
		if n == 1 {
			return uint32(first), true
		}
	}
	return 0, false
}
