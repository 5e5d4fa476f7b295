package codec

import (
	"testing"
	"unicode/utf16"
)

func TestUTF16_RoundTrip(t *testing.T) {
	for _, enc := range []Encoding[uint16]{UTF16, CheckedUTF16} {
		forEachScalar(func(s Scalar) {
			units := encodeOne(enc, s)
			want := utf16.Encode([]rune{s.Rune()})
			if len(units) != len(want) || units[0] != want[0] || (len(want) == 2 && units[1] != want[1]) {
				t.Fatalf("%v: encode %v = %X, want %X", enc, s, units, want)
			}
			got := decodeAll(enc, units)
			if len(got) != 1 || got[0] != ScalarResult(s) {
				t.Fatalf("%v: decode(encode(%v)) = %v", enc, s, got)
			}
		})
	}
}

func TestUTF16Decoder_Basic(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []Result
	}{
		{"empty", nil, nil},
		{"BMP", []uint16{0x0041, 0x20AC, 0xFFFF}, []Result{ScalarResult(0x41), ScalarResult(0x20AC), ScalarResult(0xFFFF)}},
		{"pair", []uint16{0xD83D, 0xDE00}, []Result{ScalarResult(0x1F600)}},
		{"max", []uint16{0xDBFF, 0xDFFF}, []Result{ScalarResult(0x10FFFF)}},
		{"min supplementary", []uint16{0xD800, 0xDC00}, []Result{ScalarResult(0x10000)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, enc := range []Encoding[uint16]{UTF16, CheckedUTF16} {
				got := decodeAll(enc, tt.units)
				if len(got) != len(tt.want) {
					t.Fatalf("%v: got %v, want %v", enc, got, tt.want)
				}
				for i := range got {
					if got[i] != tt.want[i] {
						t.Errorf("%v: result %d = %v, want %v", enc, i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func TestUTF16Decoder_LeadAtEndPanics(t *testing.T) {
	mustPanic(t, func() {
		decodeAll(UTF16, []uint16{0x41, 0xD800})
	})
}

func TestUTF16Decoder_DoesNotValidateTrail(t *testing.T) {
	// The unchecked decoder pairs a lead with whatever follows it.
	got := decodeAll(UTF16, []uint16{0xD800, 0x0041})
	if len(got) != 1 || got[0].IsError() {
		t.Fatalf("got %v, want a single (garbage) scalar", got)
	}
}

func TestCheckedUTF16Decoder_IllFormed(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []Result
	}{
		{"lone trail", []uint16{0xDC00, 0x41}, []Result{IllFormed, ScalarResult(0x41)}},
		{"lead at end", []uint16{0x41, 0xD800}, []Result{ScalarResult(0x41), IllFormed}},
		{"lead then BMP", []uint16{0xD800, 0x41}, []Result{IllFormed, ScalarResult(0x41)}},
		{"lead then lead pair", []uint16{0xD800, 0xD83D, 0xDE00}, []Result{IllFormed, ScalarResult(0x1F600)}},
		{"reversed pair", []uint16{0xDE00, 0xD83D}, []Result{IllFormed, IllFormed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAll(CheckedUTF16, tt.units)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("result %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckedUTF16Decoder_PendingAndOffset(t *testing.T) {
	dec := &CheckedUTF16Decoder{}
	src := NewSliceSource([]uint16{0xD800, 0x41, 0x42})

	if r := dec.Decode(src); !r.IsError() {
		t.Fatalf("got %v, want Error", r)
	}
	if dec.Buffered() != 1 {
		t.Errorf("Buffered() = %d, want 1", dec.Buffered())
	}
	if dec.Offset() != 1 {
		t.Errorf("Offset() = %d, want 1", dec.Offset())
	}
	if r := dec.Decode(src); r != ScalarResult(0x41) {
		t.Fatalf("got %v, want U+0041", r)
	}
	if dec.Buffered() != 0 || dec.Offset() != 2 {
		t.Errorf("Buffered/Offset = %d/%d, want 0/2", dec.Buffered(), dec.Offset())
	}
}

func TestUTF16Encoder_Surrogates(t *testing.T) {
	got := encodeOne(UTF16, 0x1F600)
	if len(got) != 2 || got[0] != 0xD83D || got[1] != 0xDE00 {
		t.Errorf("Encode(U+1F600) = %X, want [D83D DE00]", got)
	}
	got = encodeOne(UTF16, 0xFFFF)
	if len(got) != 1 || got[0] != 0xFFFF {
		t.Errorf("Encode(U+FFFF) = %X", got)
	}
}
