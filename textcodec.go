package textcodec

// CodeUnit is a fixed-width storage element of an encoding
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32
}

// Source yields code units one at a time.
// Next returns false once the input is exhausted; after that it need not be called again.
type Source[T CodeUnit] interface {
	Next() (T, bool)
}

// Sink accepts code units. Push never fails.
type Sink[T CodeUnit] interface {
	Push(unit T)
}

// Memory represents WASM linear memory
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU32(offset uint32) (uint32, error)
	WriteU32(offset uint32, value uint32) error
}

// Allocator allocates memory in WASM linear memory
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}
