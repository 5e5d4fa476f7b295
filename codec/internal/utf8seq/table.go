package utf8seq

// Invalid is the trailing count reported for bytes that cannot start a sequence.
const Invalid = 4

// Default continuation byte range.
const (
	LoCB = 0x80 // 1000 0000
	HiCB = 0xBF // 1011 1111
)

// Each lead entry packs the trailing count in the low nibble and the index of
// the second-byte accept range in the high nibble.
const (
	countMask   = 0x0F
	acceptShift = 4

	as = 0x00 // ASCII
	xx = 0x04 // invalid lead
	c1 = 0x01 // C2-DF
	e0 = 0x12 // E0: second byte A0-BF
	e1 = 0x02 // E1-EC, EE-EF
	ed = 0x22 // ED: second byte 80-9F
	f0 = 0x33 // F0: second byte 90-BF
	f1 = 0x03 // F1-F3
	f4 = 0x43 // F4: second byte 80-8F
)

var leads = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, // 0xC0-0xCF
	c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, // 0xD0-0xDF
	e0, e1, e1, e1, e1, e1, e1, e1, e1, e1, e1, e1, e1, ed, e1, e1, // 0xE0-0xEF
	f0, f1, f1, f1, f4, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// AcceptRange is the inclusive range of valid second bytes for a lead byte.
type AcceptRange struct {
	Lo uint8
	Hi uint8
}

var acceptRanges = [...]AcceptRange{
	0: {LoCB, HiCB},
	1: {0xA0, HiCB},
	2: {LoCB, 0x9F},
	3: {0x90, HiCB},
	4: {LoCB, 0x8F},
}

// TrailingCount returns how many continuation bytes follow lead in a well-formed
// sequence: 0 to 3, or Invalid if lead cannot start one.
func TrailingCount(lead byte) int {
	return int(leads[lead] & countMask)
}

// SecondByteRange returns the accept range for the byte following lead.
// The result is only meaningful for leads with a non-zero, valid trailing count.
func SecondByteRange(lead byte) AcceptRange {
	return acceptRanges[leads[lead]>>acceptShift]
}

func (r AcceptRange) contains(b byte) bool {
	return r.Lo <= b && b <= r.Hi
}

func isContinuation(b byte) bool {
	return LoCB <= b && b <= HiCB
}
