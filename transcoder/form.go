package transcoder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/errors"
)

// Form is a byte serialization of a Unicode encoding: the encoding plus the
// byte order of its code units.
type Form uint8

const (
	UTF8 Form = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// Forms lists every supported form.
var Forms = []Form{UTF8, UTF16LE, UTF16BE, UTF32LE, UTF32BE}

var formNames = [...]string{
	UTF8:    "utf-8",
	UTF16LE: "utf-16le",
	UTF16BE: "utf-16be",
	UTF32LE: "utf-32le",
	UTF32BE: "utf-32be",
}

var formAliases = map[string]Form{
	"utf8":    UTF8,
	"utf16":   UTF16LE,
	"utf-16":  UTF16LE,
	"utf16le": UTF16LE,
	"utf16be": UTF16BE,
	"utf32":   UTF32LE,
	"utf-32":  UTF32LE,
	"utf32le": UTF32LE,
	"utf32be": UTF32BE,
}

var boms = [...][]byte{
	UTF8:    {0xEF, 0xBB, 0xBF},
	UTF16LE: {0xFF, 0xFE},
	UTF16BE: {0xFE, 0xFF},
	UTF32LE: {0xFF, 0xFE, 0x00, 0x00},
	UTF32BE: {0x00, 0x00, 0xFE, 0xFF},
}

// Valid reports whether f is one of the defined forms.
func (f Form) Valid() bool {
	return int(f) < len(formNames)
}

func (f Form) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
	return formNames[f]
}

// UnitSize returns the size of one code unit in bytes.
func (f Form) UnitSize() int {
	switch f {
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return 1
	}
}

// ByteOrder returns the order of the bytes of a code unit, or nil for UTF-8.
func (f Form) ByteOrder() binary.ByteOrder {
	switch f {
	case UTF16LE, UTF32LE:
		return binary.LittleEndian
	case UTF16BE, UTF32BE:
		return binary.BigEndian
	default:
		return nil
	}
}

// BOM returns the byte order mark of f. The returned slice must not be modified.
func (f Form) BOM() []byte {
	if !f.Valid() {
		return nil
	}
	return boms[f]
}

// ParseForm parses a form name such as "utf-8" or "UTF-16BE". Without an
// explicit byte order, UTF-16 and UTF-32 are little-endian.
func ParseForm(name string) (Form, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for f, n := range formNames {
		if key == n {
			return Form(f), nil
		}
	}
	if f, ok := formAliases[key]; ok {
		return f, nil
	}
	return 0, errors.New(errors.PhaseConfig, errors.KindUnsupported).
		Value(name).
		Detail("unknown encoding form %q", name).
		Build()
}

// DetectForm sniffs a byte order mark at the start of prefix. It returns the
// form and the length of the mark; ok is false when there is no mark.
//
// FF FE 00 00 is taken as UTF-32LE, so pass at least four bytes when they
// are available.
func DetectForm(prefix []byte) (f Form, n int, ok bool) {
	for _, cand := range []Form{UTF32LE, UTF32BE, UTF8, UTF16LE, UTF16BE} {
		if bom := boms[cand]; bytes.HasPrefix(prefix, bom) {
			return cand, len(bom), true
		}
	}
	return 0, 0, false
}

// formDecoder decodes scalars from the bytes of one form. Units pulled from
// data but not consumed stay buffered in the decoder between calls.
type formDecoder interface {
	// decode decodes one result from data and returns how many bytes it
	// pulled. Running out of data is reported as end of input.
	decode(data []byte) (codec.Result, int)
	// buffered returns the code units held back by the decoder.
	buffered() int
	// offset returns the code units consumed so far.
	offset() int64
	reset()
}

type formEncoder interface {
	// encode writes s to dst, which must have room for four bytes, and
	// returns the number of bytes written.
	encode(s codec.Scalar, dst []byte) int
}

func (f Form) newDecoder() formDecoder {
	switch f {
	case UTF16LE:
		return newUnitDecoder(codec.CheckedUTF16, 2, binary.LittleEndian.Uint16)
	case UTF16BE:
		return newUnitDecoder(codec.CheckedUTF16, 2, binary.BigEndian.Uint16)
	case UTF32LE:
		return newUnitDecoder(codec.CheckedUTF32, 4, binary.LittleEndian.Uint32)
	case UTF32BE:
		return newUnitDecoder(codec.CheckedUTF32, 4, binary.BigEndian.Uint32)
	default:
		return newUnitDecoder(codec.UTF8, 1, loadByte)
	}
}

func (f Form) newEncoder() formEncoder {
	switch f {
	case UTF16LE:
		return &unitEncoder[uint16]{enc: codec.UTF16Encoder{}, size: 2, store: binary.LittleEndian.PutUint16}
	case UTF16BE:
		return &unitEncoder[uint16]{enc: codec.UTF16Encoder{}, size: 2, store: binary.BigEndian.PutUint16}
	case UTF32LE:
		return &unitEncoder[uint32]{enc: codec.UTF32Encoder{}, size: 4, store: binary.LittleEndian.PutUint32}
	case UTF32BE:
		return &unitEncoder[uint32]{enc: codec.UTF32Encoder{}, size: 4, store: binary.BigEndian.PutUint32}
	default:
		return &unitEncoder[uint8]{enc: codec.UTF8Encoder{}, size: 1, store: storeByte}
	}
}

func loadByte(b []byte) uint8     { return b[0] }
func storeByte(b []byte, u uint8) { b[0] = u }

// unitReader is a Source over the code units serialized in data.
type unitReader[T codec.CodeUnit] struct {
	data []byte
	pos  int
	size int
	load func([]byte) T
}

func (r *unitReader[T]) Next() (T, bool) {
	if len(r.data)-r.pos < r.size {
		var zero T
		return zero, false
	}
	u := r.load(r.data[r.pos:])
	r.pos += r.size
	return u, true
}

type unitDecoder[T codec.CodeUnit] struct {
	enc codec.Encoding[T]
	dec codec.Decoder[T]
	r   unitReader[T]
}

func newUnitDecoder[T codec.CodeUnit](enc codec.Encoding[T], size int, load func([]byte) T) *unitDecoder[T] {
	return &unitDecoder[T]{
		enc: enc,
		dec: enc.NewDecoder(),
		r:   unitReader[T]{size: size, load: load},
	}
}

func (d *unitDecoder[T]) decode(data []byte) (codec.Result, int) {
	d.r.data, d.r.pos = data, 0
	res := d.dec.Decode(&d.r)
	n := d.r.pos
	d.r.data = nil
	return res, n
}

func (d *unitDecoder[T]) buffered() int { return bufferedOf(d.dec) }
func (d *unitDecoder[T]) offset() int64 { return max(offsetOf(d.dec), 0) }
func (d *unitDecoder[T]) reset()        { d.dec = d.enc.NewDecoder() }

// unitWriter is a Sink serializing code units into buf.
type unitWriter[T codec.CodeUnit] struct {
	buf   []byte
	n     int
	size  int
	store func([]byte, T)
}

func (w *unitWriter[T]) Push(u T) {
	w.store(w.buf[w.n:], u)
	w.n += w.size
}

type unitEncoder[T codec.CodeUnit] struct {
	enc   codec.Encoder[T]
	size  int
	store func([]byte, T)
	w     unitWriter[T]
}

func (e *unitEncoder[T]) encode(s codec.Scalar, dst []byte) int {
	e.w = unitWriter[T]{buf: dst, size: e.size, store: e.store}
	e.enc.Encode(s, &e.w)
	n := e.w.n
	e.w.buf = nil
	return n
}
