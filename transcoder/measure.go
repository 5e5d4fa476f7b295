package transcoder

import (
	"fmt"

	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/errors"
)

// Measurement describes the scalar sequence of one input, as needed to
// presize storage for it.
type Measurement struct {
	// UTF16Len is the number of UTF-16 code units the sequence needs.
	UTF16Len int
	// UTF8Len is the number of UTF-8 bytes the sequence needs.
	UTF8Len int
	// Scalars is the number of scalars, which is also the UTF-32 length.
	Scalars int
	// ASCII is true when every scalar is at most U+007F and nothing was repaired.
	ASCII bool
	// Latin1 is true when every scalar is at most U+00FF and nothing was repaired.
	Latin1 bool
}

func newMeasurement() Measurement {
	return Measurement{ASCII: true, Latin1: true}
}

func (m *Measurement) add(s codec.Scalar) {
	m.Scalars++
	m.UTF16Len += s.UTF16Width()
	m.UTF8Len += s.UTF8Width()
	if s > 0x7F {
		m.ASCII = false
		if s > 0xFF {
			m.Latin1 = false
		}
	}
}

// repair charges one U+FFFD.
func (m *Measurement) repair() {
	m.add(codec.Replacement)
}

// Len returns the length of the sequence in code units of the given width
// in bits: 8, 16 or 32.
func (m Measurement) Len(bits int) int {
	switch bits {
	case 8:
		return m.UTF8Len
	case 16:
		return m.UTF16Len
	case 32:
		return m.Scalars
	}
	panic(fmt.Sprintf("transcoder: no code unit of %d bits", bits))
}

// Measure decodes src without encoding anything and returns the measurement.
//
// With repair, every ill-formed sequence is charged as one U+FFFD and the
// call always succeeds. Without it, the first ill-formed sequence ends the
// pass and ok is false: no measurement is possible.
func Measure[T codec.CodeUnit](src codec.Source[T], enc codec.Encoding[T], repair bool) (m Measurement, ok bool) {
	m, _, ok = measure(enc.NewDecoder(), src, repair)
	return m, ok
}

// MeasureErr measures src without repair and reports ill-formed input as an
// *errors.Error carrying its offset in code units.
func MeasureErr[T codec.CodeUnit](src codec.Source[T], enc codec.Encoding[T]) (Measurement, error) {
	m, at, ok := measure(enc.NewDecoder(), src, false)
	if !ok {
		return Measurement{}, errors.IllFormed(errors.PhaseMeasure, enc.Name(), at)
	}
	return m, nil
}

func measure[T codec.CodeUnit](dec codec.Decoder[T], src codec.Source[T], repair bool) (m Measurement, at int64, ok bool) {
	m = newMeasurement()
	for {
		start := offsetOf(dec)
		r := dec.Decode(src)
		if r.IsEmptyInput() {
			return m, errors.NoOffset, true
		}
		if s, isScalar := r.Scalar(); isScalar {
			m.add(s)
			continue
		}
		if !repair {
			return Measurement{}, start, false
		}
		m.repair()
	}
}

// MeasureBytes measures data serialized in form f. A trailing partial code
// unit counts as one ill-formed sequence.
func MeasureBytes(data []byte, f Form, repair bool) (Measurement, error) {
	if !f.Valid() {
		return Measurement{}, errors.Unsupported(errors.PhaseMeasure, f.String())
	}
	m := newMeasurement()
	dec := f.newDecoder()
	pos := 0
	for {
		start := dec.offset() * int64(f.UnitSize())
		r, n := dec.decode(data[pos:])
		pos += n
		if r.IsEmptyInput() {
			break
		}
		if s, ok := r.Scalar(); ok {
			m.add(s)
			continue
		}
		if !repair {
			return Measurement{}, errors.IllFormed(errors.PhaseMeasure, f.String(), start)
		}
		m.repair()
	}
	if dangling := len(data) - pos; dangling > 0 {
		if !repair {
			return Measurement{}, errors.Truncated(errors.PhaseMeasure, f.String(), dangling)
		}
		m.repair()
	}
	return m, nil
}

// ValidUTF8 reports whether b is well-formed UTF-8.
func ValidUTF8(b []byte) bool {
	_, ok := Measure(codec.NewSliceSource(b), codec.UTF8, false)
	return ok
}
