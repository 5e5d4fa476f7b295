package codec

// decodeAll decodes units until EmptyInput and returns every non-empty result.
func decodeAll[T CodeUnit](enc Encoding[T], units []T) []Result {
	dec := enc.NewDecoder()
	src := NewSliceSource(units)
	var out []Result
	for {
		r := dec.Decode(src)
		if r.IsEmptyInput() {
			return out
		}
		out = append(out, r)
	}
}

func encodeOne[T CodeUnit](enc Encoding[T], s Scalar) []T {
	sink := &SliceSink[T]{}
	enc.Encoder().Encode(s, sink)
	return sink.Units
}

// forEachScalar calls fn for every Unicode scalar value.
func forEachScalar(fn func(Scalar)) {
	for v := uint32(0); v <= uint32(MaxScalar); v++ {
		if v == surrogateMin {
			v = surrogateMax
			continue
		}
		fn(Scalar(v))
	}
}

func mustPanic(t interface {
	Helper()
	Fatal(...any)
}, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}
