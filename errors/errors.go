package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode    Phase = "decode"    // code units to scalars
	PhaseEncode    Phase = "encode"    // scalars to code units
	PhaseTranscode Phase = "transcode" // decode + encode pump
	PhaseMeasure   Phase = "measure"   // sizing pre-pass
	PhaseLift      Phase = "lift"      // guest memory to Go
	PhaseLower     Phase = "lower"     // Go to guest memory
	PhaseConfig    Phase = "config"    // option and flag parsing
)

// Kind categorizes the error
type Kind string

const (
	KindIllFormed     Kind = "ill_formed"
	KindInvalidScalar Kind = "invalid_scalar"
	KindTruncated     Kind = "truncated"
	KindUnsupported   Kind = "unsupported"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindAllocation    Kind = "allocation"
	KindOverflow      Kind = "overflow"
	KindInvalidInput  Kind = "invalid_input"
	KindTypeMismatch  Kind = "type_mismatch"
)

// Offset value used when the position of a failure is not known.
const NoOffset = -1

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Encoding string
	Detail   string
	Path     []string
	Offset   int64
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Encoding != "" {
		b.WriteString(" (")
		b.WriteString(e.Encoding)
		if e.Offset >= 0 {
			fmt.Fprintf(&b, " offset %d", e.Offset)
		}
		b.WriteByte(')')
	} else if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase == "" {
			return e.Kind == t.Kind
		}
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Encoding sets the encoding name
func (b *Builder) Encoding(name string) *Builder {
	b.err.Encoding = name
	return b
}

// Offset sets the code-unit offset of the failure
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// IllFormed creates an ill-formed input error for the given encoding.
// offset is the code-unit position where the ill-formed subpart started, or NoOffset.
func IllFormed(phase Phase, encoding string, offset int64) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindIllFormed,
		Encoding: encoding,
		Offset:   offset,
		Detail:   "ill-formed code unit sequence",
	}
}

// InvalidScalar creates an error for a value outside the Unicode scalar range
func InvalidScalar(phase Phase, value uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidScalar,
		Offset: NoOffset,
		Detail: fmt.Sprintf("invalid Unicode scalar value: 0x%X", value),
		Value:  value,
	}
}

// Truncated creates an error for input that ends inside a code unit
func Truncated(phase Phase, encoding string, dangling int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTruncated,
		Encoding: encoding,
		Offset:   NoOffset,
		Detail:   fmt.Sprintf("%d dangling byte(s) after last code unit", dangling),
		Value:    dangling,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Offset: NoOffset,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: NoOffset,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds memory access error
func OutOfBounds(phase Phase, ptr, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: NoOffset,
		Detail: fmt.Sprintf("range [%d, %d+%d) out of bounds", ptr, ptr, length),
		Value:  ptr,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, limit any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Offset: NoOffset,
		Detail: fmt.Sprintf("value %v exceeds limit %v", value, limit),
		Value:  value,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, witType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Offset: NoOffset,
		Detail: fmt.Sprintf("Go type %s, WIT type %s", goType, witType),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}
