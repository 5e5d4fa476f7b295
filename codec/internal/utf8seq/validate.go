package utf8seq

// Valid reports whether w is a well-formed sequence for a lead byte with the
// given trailing count. Only the first trailing+1 bytes are inspected; a window
// shorter than that is ill-formed.
func Valid(w []byte, trailing int) bool {
	if len(w) == 0 || trailing >= Invalid {
		return false
	}
	if trailing == 0 {
		return w[0] < 0x80
	}
	if len(w) <= trailing {
		return false
	}
	if !SecondByteRange(w[0]).contains(w[1]) {
		return false
	}
	for _, c := range w[2 : trailing+1] {
		if !isContinuation(c) {
			return false
		}
	}
	return true
}

// MaximalSubpart returns the length of the longest prefix of the ill-formed
// window w that is either the start of some well-formed sequence or a single
// byte. w must be non-empty and already known to be ill-formed.
func MaximalSubpart(w []byte) int {
	lead := w[0]
	trailing := TrailingCount(lead)
	if trailing != 2 && trailing != 3 {
		// Two-byte leads fail on their only continuation; ASCII and
		// invalid leads have nothing to extend.
		return 1
	}
	if len(w) < 2 || !SecondByteRange(lead).contains(w[1]) {
		return 1
	}
	if trailing == 2 || len(w) < 3 {
		return 2
	}
	if isContinuation(w[2]) {
		return 3
	}
	return 2
}
