package main

import (
	"fmt"
	"strings"

	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/transcoder"
)

// step is one decode result together with the bytes it consumed.
type step struct {
	result codec.Result
	bytes  []byte
}

type inspection struct {
	input   []byte
	steps   []step
	units   map[transcoder.Form][]byte
	measure transcoder.Measurement
	valid   bool
}

// unescape turns typed text into bytes. \xHH inserts a raw byte and \\ a
// backslash; anything else is taken literally.
func unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			out = append(out, s[i])
			continue
		}
		switch {
		case s[i+1] == '\\':
			out = append(out, '\\')
			i++
		case s[i+1] == 'x' && i+3 < len(s) && isHex(s[i+2]) && isHex(s[i+3]):
			out = append(out, unhex(s[i+2])<<4|unhex(s[i+3]))
			i += 3
		default:
			out = append(out, s[i])
		}
	}
	return out
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c >= 'a':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func inspect(input []byte) inspection {
	in := inspection{
		input: input,
		units: make(map[transcoder.Form][]byte, len(transcoder.Forms)),
		valid: transcoder.ValidUTF8(input),
	}

	dec := codec.NewUTF8Decoder()
	src := codec.NewSliceSource(input)
	for {
		start := dec.Offset()
		r := dec.Decode(src)
		if r.IsEmptyInput() {
			break
		}
		in.steps = append(in.steps, step{result: r, bytes: input[start:dec.Offset()]})
	}

	for _, f := range transcoder.Forms {
		out, err := transcoder.Convert(input, transcoder.UTF8, f, transcoder.Substitute)
		if err == nil {
			in.units[f] = out
		}
	}
	in.measure, _ = transcoder.MeasureBytes(input, transcoder.UTF8, true)
	return in
}

// hexUnits groups data into space separated code units of size bytes.
func hexUnits(data []byte, size int) string {
	var b strings.Builder
	for i := 0; i+size <= len(data); i += size {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%X", data[i:i+size])
	}
	return b.String()
}
