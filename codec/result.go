package codec

// ResultKind tags the shape of a decode Result.
type ResultKind uint8

// The zero ResultKind is KindEmptyInput, so a zero Result never carries a scalar.
const (
	KindEmptyInput ResultKind = iota // the source is exhausted
	KindScalar                       // a scalar was decoded
	KindError                        // the next code units were ill-formed
)

func (k ResultKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEmptyInput:
		return "empty"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Decode call.
type Result struct {
	scalar Scalar
	kind   ResultKind
}

var (
	// EmptyInput reports that the source has no more data.
	EmptyInput = Result{kind: KindEmptyInput}

	// IllFormed reports that the next code units did not form a well-formed sequence.
	IllFormed = Result{kind: KindError}
)

// ScalarResult wraps a decoded scalar.
func ScalarResult(s Scalar) Result {
	return Result{scalar: s, kind: KindScalar}
}

// Kind returns the result's shape.
func (r Result) Kind() ResultKind {
	return r.kind
}

// Scalar returns the decoded scalar and true, or false for the other shapes.
func (r Result) Scalar() (Scalar, bool) {
	return r.scalar, r.kind == KindScalar
}

// IsEmptyInput reports whether the source was exhausted.
func (r Result) IsEmptyInput() bool {
	return r.kind == KindEmptyInput
}

// IsError reports whether the input was ill-formed.
func (r Result) IsError() bool {
	return r.kind == KindError
}

func (r Result) String() string {
	if r.kind == KindScalar {
		return "Scalar(" + r.scalar.String() + ")"
	}
	if r.kind == KindEmptyInput {
		return "EmptyInput"
	}
	return "Error"
}
