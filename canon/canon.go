package canon

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/textcodec"
	"github.com/wippyai/textcodec/canon/internal/abi"
	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/errors"
	"github.com/wippyai/textcodec/transcoder"
)

// StringEncoding is the string encoding of a component's canonical options.
type StringEncoding uint8

const (
	UTF8 StringEncoding = iota
	UTF16
	// Latin1UTF16 stores each string as Latin-1 when every scalar fits in a
	// byte and as UTF-16 otherwise, tagging the length with UTF16Tag.
	Latin1UTF16
)

func (e StringEncoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case UTF16:
		return "utf16"
	case Latin1UTF16:
		return "latin1+utf16"
	default:
		return fmt.Sprintf("StringEncoding(%d)", uint8(e))
	}
}

const (
	// UTF16Tag is set in a latin1+utf16 length that counts UTF-16 code units.
	UTF16Tag = abi.UTF16Tag
	// MaxStringSize is the largest byte length of a string in guest memory.
	MaxStringSize = abi.MaxStringSize
)

// Options holds the canonical options string operations need.
//
// Policy applies in both directions: a Go string may hold invalid UTF-8,
// and guest memory may hold anything.
type Options struct {
	Memory   textcodec.Memory
	Realloc  textcodec.Allocator
	Encoding StringEncoding
	Policy   transcoder.Policy
}

// guestLayout is how one string is stored in guest memory.
type guestLayout struct {
	latin1 bool   // UTF-16 otherwise, unless the encoding is UTF-8
	units  uint32 // code units
	size   uint32 // bytes per code unit
	align  uint32
}

func (l guestLayout) byteLen() (uint32, bool) {
	n, ok := abi.SafeMulU32(l.units, l.size)
	if !ok || n > MaxStringSize {
		return 0, false
	}
	return n, true
}

// LowerString stores s in guest memory and returns its pointer and its
// length in code units, tagged with UTF16Tag where the encoding calls for it.
//
// The string is measured first so that exactly one allocation of the final
// size is made. Empty strings allocate nothing and lower to (0, 0).
func LowerString(opts Options, s string) (ptr, length uint32, err error) {
	if opts.Memory == nil {
		return 0, 0, errors.InvalidInput(errors.PhaseLower, "nil memory")
	}
	if opts.Realloc == nil {
		return 0, 0, errors.InvalidInput(errors.PhaseLower, "nil realloc")
	}

	var m transcoder.Measurement
	if opts.Policy == transcoder.Substitute {
		m, _ = transcoder.Measure(codec.NewStringSource(s), codec.UTF8, true)
	} else if m, err = transcoder.MeasureErr(codec.NewStringSource(s), codec.UTF8); err != nil {
		return 0, 0, errors.Wrap(errors.PhaseLower, errors.KindIllFormed, err, "Go string is not valid UTF-8")
	}

	layout, err := layoutFor(opts.Encoding, m)
	if err != nil {
		return 0, 0, err
	}
	if layout.units == 0 {
		return 0, 0, nil
	}
	byteLen, ok := layout.byteLen()
	if !ok {
		return 0, 0, errors.Overflow(errors.PhaseLower, uint64(layout.units)*uint64(layout.size), MaxStringSize)
	}

	buf := encodeGuest(s, opts.Encoding, layout, byteLen)

	ptr, err = opts.Realloc.Alloc(byteLen, layout.align)
	if err != nil {
		return 0, 0, err
	}
	if !abi.Aligned(ptr, layout.align) {
		opts.Realloc.Free(ptr, byteLen, layout.align)
		return 0, 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Value(ptr).
			Detail("realloc returned 0x%x, not aligned to %d", ptr, layout.align).
			Build()
	}
	if err := opts.Memory.Write(ptr, buf); err != nil {
		opts.Realloc.Free(ptr, byteLen, layout.align)
		return 0, 0, err
	}

	length = layout.units
	if opts.Encoding == Latin1UTF16 && !layout.latin1 {
		length |= UTF16Tag
	}
	Logger().Debug("lowered string",
		zap.Stringer("encoding", opts.Encoding),
		zap.Uint32("ptr", ptr),
		zap.Uint32("bytes", byteLen),
		zap.Bool("latin1", layout.latin1))
	return ptr, length, nil
}

func layoutFor(enc StringEncoding, m transcoder.Measurement) (guestLayout, error) {
	latin1, units, size, align := false, m.UTF16Len, 2, 2
	switch enc {
	case UTF8:
		units, size, align = m.UTF8Len, 1, 1
	case UTF16:
	case Latin1UTF16:
		if m.Latin1 {
			latin1, units, size = true, m.Scalars, 1
		}
	default:
		return guestLayout{}, errors.Unsupported(errors.PhaseLower, enc.String())
	}
	// Check before narrowing to uint32.
	if units > MaxStringSize/size {
		return guestLayout{}, errors.Overflow(errors.PhaseLower, uint64(units)*uint64(size), MaxStringSize)
	}
	return guestLayout{latin1: latin1, units: uint32(units), size: uint32(size), align: uint32(align)}, nil
}

// encodeGuest transcodes s into its guest representation. Ill-formed input
// has already been rejected or is substituted here.
func encodeGuest(s string, enc StringEncoding, layout guestLayout, byteLen uint32) []byte {
	src := codec.NewStringSource(s)
	switch {
	case enc == UTF8:
		sink := codec.NewSliceSink[uint8](int(byteLen))
		transcoder.Transcode(src, codec.UTF8, codec.UTF8, sink, transcoder.Substitute)
		return sink.Units
	case layout.latin1:
		sink := codec.NewSliceSink[uint8](int(byteLen))
		transcoder.Transcode(src, codec.UTF8, codec.Latin1, sink, transcoder.Substitute)
		return sink.Units
	default:
		sink := &leSink16{buf: make([]byte, byteLen)}
		transcoder.Transcode(src, codec.UTF8, codec.UTF16, sink, transcoder.Substitute)
		return sink.buf
	}
}

// leSink16 serializes UTF-16 code units little-endian into a presized buffer.
type leSink16 struct {
	buf []byte
	n   int
}

func (s *leSink16) Push(u uint16) {
	binary.LittleEndian.PutUint16(s.buf[s.n:], u)
	s.n += 2
}

// LiftString reads a string of the given tagged length from guest memory.
// Ill-formed contents fail under StopOnError and are replaced with U+FFFD
// under Substitute.
func LiftString(opts Options, ptr, length uint32) (string, error) {
	if opts.Memory == nil {
		return "", errors.InvalidInput(errors.PhaseLift, "nil memory")
	}

	var layout guestLayout
	switch opts.Encoding {
	case UTF8:
		layout = guestLayout{units: length, size: 1, align: 1}
	case UTF16:
		layout = guestLayout{units: length, size: 2, align: 2}
	case Latin1UTF16:
		if length&UTF16Tag != 0 {
			layout = guestLayout{units: length &^ UTF16Tag, size: 2, align: 2}
		} else {
			layout = guestLayout{latin1: true, units: length, size: 1, align: 2}
		}
	default:
		return "", errors.Unsupported(errors.PhaseLift, opts.Encoding.String())
	}
	if layout.units == 0 {
		return "", nil
	}

	byteLen, ok := layout.byteLen()
	if !ok {
		return "", errors.Overflow(errors.PhaseLift, uint64(layout.units)*uint64(layout.size), MaxStringSize)
	}
	if !abi.Aligned(ptr, layout.align) {
		return "", errors.New(errors.PhaseLift, errors.KindInvalidInput).
			Value(ptr).
			Detail("string pointer 0x%x not aligned to %d", ptr, layout.align).
			Build()
	}
	if _, ok := abi.SafeAddU32(ptr, byteLen); !ok {
		return "", errors.OutOfBounds(errors.PhaseLift, ptr, byteLen)
	}
	data, err := opts.Memory.Read(ptr, byteLen)
	if err != nil {
		return "", err
	}

	var out []byte
	switch {
	case layout.latin1:
		sink := codec.NewSliceSink[uint8](len(data) * 2)
		transcoder.Transcode(codec.NewSliceSource(data), codec.Latin1, codec.UTF8, sink, transcoder.Substitute)
		out = sink.Units
	case layout.size == 2:
		out, err = transcoder.Convert(data, transcoder.UTF16LE, transcoder.UTF8, opts.Policy)
	default:
		out, err = transcoder.Convert(data, transcoder.UTF8, transcoder.UTF8, opts.Policy)
	}
	if err != nil {
		return "", errors.New(errors.PhaseLift, errors.KindIllFormed).
			Cause(err).
			Encoding(opts.Encoding.String()).
			Offset(offsetOf(err)).
			Detail("string at 0x%x", ptr).
			Build()
	}
	return string(out), nil
}

func offsetOf(err error) int64 {
	if e, ok := err.(*errors.Error); ok {
		return e.Offset
	}
	return errors.NoOffset
}

// LoadString lifts the string whose (ptr, len) pair is stored at addr.
func LoadString(opts Options, addr uint32) (string, error) {
	if opts.Memory == nil {
		return "", errors.InvalidInput(errors.PhaseLift, "nil memory")
	}
	if !abi.Aligned(addr, 4) {
		return "", errors.New(errors.PhaseLift, errors.KindInvalidInput).
			Value(addr).
			Detail("string record at 0x%x not aligned to 4", addr).
			Build()
	}
	ptr, err := opts.Memory.ReadU32(addr)
	if err != nil {
		return "", err
	}
	length, err := opts.Memory.ReadU32(addr + 4)
	if err != nil {
		return "", err
	}
	return LiftString(opts, ptr, length)
}

// StoreString lowers s and stores its (ptr, len) pair at addr.
func StoreString(opts Options, addr uint32, s string) error {
	if opts.Memory == nil {
		return errors.InvalidInput(errors.PhaseLower, "nil memory")
	}
	if !abi.Aligned(addr, 4) {
		return errors.New(errors.PhaseLower, errors.KindInvalidInput).
			Value(addr).
			Detail("string record at 0x%x not aligned to 4", addr).
			Build()
	}
	ptr, length, err := LowerString(opts, s)
	if err != nil {
		return err
	}
	if err := opts.Memory.WriteU32(addr, ptr); err != nil {
		return err
	}
	return opts.Memory.WriteU32(addr+4, length)
}
