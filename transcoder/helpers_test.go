package transcoder

import (
	"bytes"
	"testing"

	"github.com/wippyai/textcodec/errors"
)

// kindOf returns the Kind of a structured error, or "" for anything else.
func kindOf(err error) errors.Kind {
	if e, ok := err.(*errors.Error); ok {
		return e.Kind
	}
	return ""
}

func offsetOfErr(err error) int64 {
	if e, ok := err.(*errors.Error); ok {
		return e.Offset
	}
	return errors.NoOffset
}

func assertBytes(t *testing.T, name string, got, want []byte) {
	t.Helper()
	if !bytes.Equal(got, want) {
		t.Errorf("%s: got % X, want % X", name, got, want)
	}
}

// sampleText covers every UTF-8 length and both UTF-16 widths.
const sampleText = "plain ASCII, Grüße, 世界, \u07FF\u0800\uFFFF, 🎉\U00010000\U0010FFFF"
