package canon

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/textcodec/canon/internal/abi"
	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/errors"
)

// LiftValue lifts a flattened string or char. A string takes two core
// values (ptr, len) and lifts to a Go string; a char takes one and lifts to
// a rune after being checked as a scalar value.
func LiftValue(opts Options, t wit.Type, flat []uint64) (any, error) {
	n := abi.FlatCount(t)
	if n < 0 {
		return nil, errors.Unsupported(errors.PhaseLift, witName(t))
	}
	if len(flat) < n {
		return nil, errors.New(errors.PhaseLift, errors.KindInvalidInput).
			Detail("%s needs %d flat values, got %d", witName(t), n, len(flat)).
			Build()
	}

	switch t.(type) {
	case wit.String:
		return LiftString(opts, uint32(flat[0]), uint32(flat[1]))
	default: // wit.Char
		v := uint32(flat[0])
		s, ok := codec.ScalarOf(v)
		if !ok {
			return nil, errors.InvalidScalar(errors.PhaseLift, v)
		}
		return s.Rune(), nil
	}
}

// LowerValue lowers a Go string or char value to its flat core values.
// Strings are stored in guest memory; chars accept runes, unsigned integers
// and one-rune strings.
func LowerValue(opts Options, t wit.Type, v any) ([]uint64, error) {
	switch t.(type) {
	case wit.String:
		s, ok := v.(string)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseLower, nil, abi.TypeName(v), witName(t))
		}
		ptr, length, err := LowerString(opts, s)
		if err != nil {
			return nil, err
		}
		return []uint64{uint64(ptr), uint64(length)}, nil
	case wit.Char:
		c, ok := abi.CoerceToChar(v)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseLower, nil, abi.TypeName(v), witName(t))
		}
		if !abi.ValidateChar(c) {
			return nil, errors.InvalidScalar(errors.PhaseLower, c)
		}
		return []uint64{uint64(c)}, nil
	default:
		return nil, errors.Unsupported(errors.PhaseLower, witName(t))
	}
}

func witName(t wit.Type) string {
	switch t.(type) {
	case wit.String:
		return "string"
	case wit.Char:
		return "char"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", t)
	}
}
