package utf8seq

import (
	"testing"
	"unicode/utf8"
)

func TestTrailingCount(t *testing.T) {
	for b := 0; b < 256; b++ {
		var want int
		switch {
		case b <= 0x7F:
			want = 0
		case b >= 0xC2 && b <= 0xDF:
			want = 1
		case b >= 0xE0 && b <= 0xEF:
			want = 2
		case b >= 0xF0 && b <= 0xF4:
			want = 3
		default:
			want = Invalid
		}
		if got := TrailingCount(byte(b)); got != want {
			t.Errorf("TrailingCount(0x%02X) = %d, want %d", b, got, want)
		}
	}
}

func TestSecondByteRange(t *testing.T) {
	tests := []struct {
		lead   byte
		lo, hi byte
	}{
		{0xC2, 0x80, 0xBF},
		{0xDF, 0x80, 0xBF},
		{0xE0, 0xA0, 0xBF},
		{0xE1, 0x80, 0xBF},
		{0xEC, 0x80, 0xBF},
		{0xED, 0x80, 0x9F},
		{0xEE, 0x80, 0xBF},
		{0xEF, 0x80, 0xBF},
		{0xF0, 0x90, 0xBF},
		{0xF1, 0x80, 0xBF},
		{0xF3, 0x80, 0xBF},
		{0xF4, 0x80, 0x8F},
	}
	for _, tt := range tests {
		r := SecondByteRange(tt.lead)
		if r.Lo != tt.lo || r.Hi != tt.hi {
			t.Errorf("SecondByteRange(0x%02X) = [%02X,%02X], want [%02X,%02X]", tt.lead, r.Lo, r.Hi, tt.lo, tt.hi)
		}
	}
}

// wellFormed reports whether w is exactly one well-formed scalar per the
// standard library, which implements the same legality table.
func wellFormed(w []byte) bool {
	r, size := utf8.DecodeRune(w)
	return size == len(w) && !(r == utf8.RuneError && size == 1)
}

func TestValid_AllTwoByteWindows(t *testing.T) {
	for a := 0; a < 256; a++ {
		n := TrailingCount(byte(a))
		if n == 0 {
			if !Valid([]byte{byte(a)}, 0) {
				t.Errorf("Valid(%02X) = false, want true", a)
			}
			continue
		}
		if n != 1 {
			continue
		}
		for b := 0; b < 256; b++ {
			w := []byte{byte(a), byte(b)}
			if got, want := Valid(w, n), wellFormed(w); got != want {
				t.Errorf("Valid(% X) = %v, want %v", w, got, want)
			}
		}
	}
}

func TestValid_ThreeAndFourByteWindows(t *testing.T) {
	probes := []byte{0x00, 0x41, 0x7F, 0x80, 0x8F, 0x90, 0x9F, 0xA0, 0xBF, 0xC0, 0xF5, 0xFF}
	for a := 0xE0; a <= 0xF4; a++ {
		n := TrailingCount(byte(a))
		for b := 0; b < 256; b++ {
			for _, c := range probes {
				if n == 2 {
					w := []byte{byte(a), byte(b), c}
					if got, want := Valid(w, n), wellFormed(w); got != want {
						t.Errorf("Valid(% X) = %v, want %v", w, got, want)
					}
					continue
				}
				for _, d := range probes {
					w := []byte{byte(a), byte(b), c, d}
					if got, want := Valid(w, n), wellFormed(w); got != want {
						t.Errorf("Valid(% X) = %v, want %v", w, got, want)
					}
				}
			}
		}
	}
}

func TestValid_ShortWindow(t *testing.T) {
	tests := [][]byte{
		{0xC2},
		{0xE1, 0x80},
		{0xF0, 0x90, 0x80},
		{},
	}
	for _, w := range tests {
		n := 0
		if len(w) > 0 {
			n = TrailingCount(w[0])
		}
		if Valid(w, n) {
			t.Errorf("Valid(% X) = true for truncated window", w)
		}
	}
}

func TestValid_IgnoresBytesPastSequence(t *testing.T) {
	if !Valid([]byte{0x41, 0xFF, 0xFF, 0xFF}, 0) {
		t.Error("trailing bytes after ASCII must not matter")
	}
	if !Valid([]byte{0xC3, 0xA9, 0xFF, 0xFF}, 1) {
		t.Error("trailing bytes after two-byte sequence must not matter")
	}
}

func TestMaximalSubpart(t *testing.T) {
	tests := []struct {
		name string
		w    []byte
		want int
	}{
		{"invalid lead FF", []byte{0xFF, 0x80, 0x80, 0x80}, 1},
		{"lone continuation", []byte{0x80, 0x80}, 1},
		{"overlong C0", []byte{0xC0, 0xAF}, 1},
		{"overlong C1", []byte{0xC1, 0xBF}, 1},
		{"F5 lead", []byte{0xF5, 0x80, 0x80, 0x80}, 1},
		{"two-byte bad continuation", []byte{0xC2, 0x41}, 1},
		{"two-byte truncated", []byte{0xDF}, 1},
		{"E0 overlong", []byte{0xE0, 0x80, 0x80}, 1},
		{"E0 truncated after valid second", []byte{0xE0, 0xA0}, 2},
		{"E0 bad third", []byte{0xE0, 0xA0, 0x41}, 2},
		{"E1 lone", []byte{0xE1}, 1},
		{"ED surrogate", []byte{0xED, 0xA0, 0x80}, 1},
		{"ED bad third", []byte{0xED, 0x9F, 0xC0}, 2},
		{"EF bad third", []byte{0xEF, 0xBF, 0x7F}, 2},
		{"F0 overlong", []byte{0xF0, 0x80, 0x80, 0x80}, 1},
		{"F0 truncated two", []byte{0xF0, 0x90}, 2},
		{"F0 truncated three", []byte{0xF0, 0x90, 0x80}, 3},
		{"F0 bad third", []byte{0xF0, 0x90, 0x41, 0x80}, 2},
		{"F0 bad fourth", []byte{0xF0, 0x90, 0x80, 0x41}, 3},
		{"F1 lone", []byte{0xF1}, 1},
		{"F3 bad fourth", []byte{0xF3, 0xBF, 0xBF, 0xC0}, 3},
		{"F4 above max", []byte{0xF4, 0x90, 0x80, 0x80}, 1},
		{"F4 bad fourth", []byte{0xF4, 0x8F, 0xBF, 0x00}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Valid(tt.w, TrailingCount(tt.w[0])) {
				t.Fatalf("window % X is well-formed; test precondition broken", tt.w)
			}
			if got := MaximalSubpart(tt.w); got != tt.want {
				t.Errorf("MaximalSubpart(% X) = %d, want %d", tt.w, got, tt.want)
			}
		})
	}
}

func TestMaximalSubpart_IsPrefixOfSomethingValid(t *testing.T) {
	// Any subpart longer than one byte must itself be a proper prefix that
	// can still be completed into a well-formed sequence.
	for a := 0xE0; a <= 0xF4; a++ {
		for b := 0; b < 256; b++ {
			w := []byte{byte(a), byte(b), 0x00}
			n := MaximalSubpart(w)
			if n == 1 {
				continue
			}
			full := append([]byte{}, w[:n]...)
			for len(full) <= TrailingCount(byte(a)) {
				full = append(full, 0x80)
			}
			if !Valid(full, TrailingCount(byte(a))) {
				t.Errorf("subpart % X of % X cannot be completed", w[:n], w)
			}
		}
	}
}
