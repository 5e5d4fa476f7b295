package codec

import "io"

// SliceSink appends code units to a slice.
type SliceSink[T CodeUnit] struct {
	Units []T
}

// NewSliceSink returns a sink whose backing slice has the given capacity.
func NewSliceSink[T CodeUnit](capacity int) *SliceSink[T] {
	return &SliceSink[T]{Units: make([]T, 0, capacity)}
}

// Push implements Sink.
func (s *SliceSink[T]) Push(u T) {
	s.Units = append(s.Units, u)
}

// Reset empties the sink, keeping its capacity.
func (s *SliceSink[T]) Reset() {
	s.Units = s.Units[:0]
}

// CountingSink counts code units without storing them.
type CountingSink[T CodeUnit] struct {
	N int
}

// Push implements Sink.
func (s *CountingSink[T]) Push(T) {
	s.N++
}

// WriterSink writes bytes to an io.ByteWriter. Push cannot fail, so the first
// write error is kept, later bytes are dropped, and Err reports it.
type WriterSink struct {
	w   io.ByteWriter
	err error
}

// NewWriterSink returns a byte Sink writing to w.
func NewWriterSink(w io.ByteWriter) *WriterSink {
	return &WriterSink{w: w}
}

// Push implements Sink.
func (s *WriterSink) Push(b uint8) {
	if s.err != nil {
		return
	}
	s.err = s.w.WriteByte(b)
}

// Err returns the first write error.
func (s *WriterSink) Err() error {
	return s.err
}

// FuncSink adapts a function to Sink.
type FuncSink[T CodeUnit] func(T)

// Push implements Sink.
func (f FuncSink[T]) Push(u T) {
	f(u)
}
