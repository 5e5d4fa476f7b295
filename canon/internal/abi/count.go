package abi

import "go.bytecodealliance.org/wit"

// FlatCount returns the number of core values a type flattens to, or -1 for
// types this package does not handle.
func FlatCount(t wit.Type) int {
	switch t.(type) {
	case wit.String:
		return 2 // ptr, len
	case wit.Char:
		return 1
	default:
		return -1
	}
}
