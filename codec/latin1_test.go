package codec

import "testing"

func TestLatin1_RoundTrip(t *testing.T) {
	all := make([]uint8, 256)
	for i := range all {
		all[i] = uint8(i)
	}
	got := decodeAll(Latin1, all)
	if len(got) != 256 {
		t.Fatalf("decoded %d results, want 256", len(got))
	}
	sink := &SliceSink[uint8]{}
	for i, r := range got {
		s, ok := r.Scalar()
		if !ok || s != Scalar(i) {
			t.Fatalf("byte 0x%02X decoded as %v", i, r)
		}
		Latin1.Encoder().Encode(s, sink)
	}
	if string(sink.Units) != string(all) {
		t.Error("re-encoded bytes differ")
	}
}

func TestLatin1Encoder_PanicsAboveFF(t *testing.T) {
	mustPanic(t, func() {
		encodeOne(Latin1, 0x100)
	})
}
