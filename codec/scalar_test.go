package codec

import "testing"

func TestScalarOf(t *testing.T) {
	tests := []struct {
		name  string
		v     uint32
		valid bool
	}{
		{"null", 0, true},
		{"ASCII A", 'A', true},
		{"last ASCII", 0x7F, true},
		{"before surrogates", 0xD7FF, true},
		{"surrogate start", 0xD800, false},
		{"surrogate middle", 0xDB7F, false},
		{"surrogate end", 0xDFFF, false},
		{"after surrogates", 0xE000, true},
		{"BMP max", 0xFFFF, true},
		{"emoji", 0x1F600, true},
		{"max", 0x10FFFF, true},
		{"just above max", 0x110000, false},
		{"all ones", 0xFFFFFFFF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := ScalarOf(tt.v)
			if ok != tt.valid {
				t.Fatalf("ScalarOf(0x%X) ok = %v, want %v", tt.v, ok, tt.valid)
			}
			if ok && uint32(s) != tt.v {
				t.Errorf("ScalarOf(0x%X) = %v", tt.v, s)
			}
			if IsScalar(tt.v) != tt.valid {
				t.Errorf("IsScalar(0x%X) = %v, want %v", tt.v, !tt.valid, tt.valid)
			}
		})
	}
}

func TestMustScalar(t *testing.T) {
	if got := MustScalar(0x263A); got != 0x263A {
		t.Errorf("MustScalar(0x263A) = %v", got)
	}
	mustPanic(t, func() { MustScalar(0xDC00) })
	mustPanic(t, func() { MustScalar(0x110000) })
}

func TestScalarWidths(t *testing.T) {
	tests := []struct {
		s      Scalar
		utf8   int
		utf16  int
		ascii  bool
		format string
	}{
		{0x00, 1, 1, true, "U+0000"},
		{0x7F, 1, 1, true, "U+007F"},
		{0x80, 2, 1, false, "U+0080"},
		{0x7FF, 2, 1, false, "U+07FF"},
		{0x800, 3, 1, false, "U+0800"},
		{0xFFFD, 3, 1, false, "U+FFFD"},
		{0xFFFF, 3, 1, false, "U+FFFF"},
		{0x10000, 4, 2, false, "U+10000"},
		{0x10FFFF, 4, 2, false, "U+10FFFF"},
	}
	for _, tt := range tests {
		if got := tt.s.UTF8Width(); got != tt.utf8 {
			t.Errorf("%v.UTF8Width() = %d, want %d", tt.s, got, tt.utf8)
		}
		if got := tt.s.UTF16Width(); got != tt.utf16 {
			t.Errorf("%v.UTF16Width() = %d, want %d", tt.s, got, tt.utf16)
		}
		if got := tt.s.IsASCII(); got != tt.ascii {
			t.Errorf("%v.IsASCII() = %v, want %v", tt.s, got, tt.ascii)
		}
		if got := tt.s.String(); got != tt.format {
			t.Errorf("String() = %q, want %q", got, tt.format)
		}
	}
}

func TestScalarWidthsMatchEncoders(t *testing.T) {
	forEachScalar(func(s Scalar) {
		if n := len(encodeOne(UTF8, s)); n != s.UTF8Width() {
			t.Fatalf("%v: UTF-8 encoder wrote %d bytes, UTF8Width = %d", s, n, s.UTF8Width())
		}
		if n := len(encodeOne(UTF16, s)); n != s.UTF16Width() {
			t.Fatalf("%v: UTF-16 encoder wrote %d units, UTF16Width = %d", s, n, s.UTF16Width())
		}
	})
}

func TestResult(t *testing.T) {
	r := ScalarResult('x')
	if s, ok := r.Scalar(); !ok || s != 'x' {
		t.Errorf("Scalar() = %v, %v", s, ok)
	}
	if r.Kind() != KindScalar || r.IsError() || r.IsEmptyInput() {
		t.Errorf("unexpected shape for %v", r)
	}
	if _, ok := EmptyInput.Scalar(); ok {
		t.Error("EmptyInput must not carry a scalar")
	}
	if !EmptyInput.IsEmptyInput() || EmptyInput.Kind() != KindEmptyInput {
		t.Error("EmptyInput shape")
	}
	if !IllFormed.IsError() || IllFormed.Kind() != KindError {
		t.Error("IllFormed shape")
	}

	names := map[string]string{
		r.String():          "Scalar(U+0078)",
		EmptyInput.String(): "EmptyInput",
		IllFormed.String():  "Error",
	}
	for got, want := range names {
		if got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
	var zero Result
	if _, ok := zero.Scalar(); ok || !zero.IsEmptyInput() {
		t.Errorf("zero Result = %v, want EmptyInput", zero)
	}

	if KindError.String() != "error" || ResultKind(9).String() != "unknown" {
		t.Error("ResultKind.String")
	}
}
