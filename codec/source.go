package codec

import (
	"errors"
	"io"
)

// SliceSource reads code units from a slice.
type SliceSource[T CodeUnit] struct {
	units []T
	pos   int
}

// NewSliceSource returns a Source over units. The slice is not copied.
func NewSliceSource[T CodeUnit](units []T) *SliceSource[T] {
	return &SliceSource[T]{units: units}
}

// Next implements Source.
func (s *SliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.units) {
		var zero T
		return zero, false
	}
	u := s.units[s.pos]
	s.pos++
	return u, true
}

// Pos returns the number of units read so far.
func (s *SliceSource[T]) Pos() int {
	return s.pos
}

// Remaining returns the number of units not yet read.
func (s *SliceSource[T]) Remaining() int {
	return len(s.units) - s.pos
}

// StringSource reads the bytes of a Go string without copying it.
type StringSource struct {
	s   string
	pos int
}

// NewStringSource returns a byte Source over s.
func NewStringSource(s string) *StringSource {
	return &StringSource{s: s}
}

// Next implements Source.
func (s *StringSource) Next() (uint8, bool) {
	if s.pos >= len(s.s) {
		return 0, false
	}
	b := s.s[s.pos]
	s.pos++
	return b, true
}

// ReaderSource adapts an io.ByteReader. A read error ends the input;
// errors other than io.EOF are kept and returned by Err.
type ReaderSource struct {
	r   io.ByteReader
	err error
}

// NewReaderSource returns a byte Source reading from r.
func NewReaderSource(r io.ByteReader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Next implements Source.
func (s *ReaderSource) Next() (uint8, bool) {
	if s.err != nil {
		return 0, false
	}
	b, err := s.r.ReadByte()
	if err != nil {
		s.err = err
		return 0, false
	}
	return b, true
}

// Err returns the first non-EOF read error.
func (s *ReaderSource) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	return s.err
}

// FuncSource adapts a function to Source.
type FuncSource[T CodeUnit] func() (T, bool)

// Next implements Source.
func (f FuncSource[T]) Next() (T, bool) {
	return f()
}
