package transcoder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/textcodec/codec"
	"github.com/wippyai/textcodec/errors"
)

// Policy selects what the driver does with an ill-formed sequence.
type Policy uint8

const (
	// StopOnError ends the transcode at the first ill-formed sequence.
	// Nothing is written for it and the call cannot be resumed.
	StopOnError Policy = iota
	// Substitute writes U+FFFD for each ill-formed sequence and continues.
	Substitute
)

func (p Policy) String() string {
	switch p {
	case StopOnError:
		return "stop"
	case Substitute:
		return "substitute"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy parses "stop" or "substitute" (also "replace").
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stop", "strict":
		return StopOnError, nil
	case "substitute", "replace":
		return Substitute, nil
	}
	return 0, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Value(name).
		Detail("unknown error policy %q", name).
		Build()
}

// Transcode pulls code units from src in the from encoding and pushes them to
// dst in the to encoding until src is exhausted. It reports whether any
// ill-formed sequence was seen.
//
// Under StopOnError it returns true right after the first ill-formed sequence;
// units consumed by that call are lost. Transcoding into the same encoding
// still decodes and re-encodes every scalar.
func Transcode[F, T codec.CodeUnit](src codec.Source[F], from codec.Encoding[F], to codec.Encoding[T], dst codec.Sink[T], policy Policy) bool {
	hadError, _ := pump(from.NewDecoder(), to.Encoder(), src, dst, policy, from.Name())
	return hadError
}

// TranscodeErr is Transcode with the failure reported as an *errors.Error
// carrying the offset, in code units, of the first ill-formed sequence.
func TranscodeErr[F, T codec.CodeUnit](src codec.Source[F], from codec.Encoding[F], to codec.Encoding[T], dst codec.Sink[T], policy Policy) error {
	hadError, at := pump(from.NewDecoder(), to.Encoder(), src, dst, policy, from.Name())
	if !hadError || policy == Substitute {
		return nil
	}
	return errors.IllFormed(errors.PhaseTranscode, from.Name(), at)
}

// pump is the decode/encode loop shared by the slice and byte entry points.
// at is the offset of the first ill-formed sequence, or errors.NoOffset when
// the decoder does not track positions.
func pump[F, T codec.CodeUnit](dec codec.Decoder[F], enc codec.Encoder[T], src codec.Source[F], dst codec.Sink[T], policy Policy, name string) (hadError bool, at int64) {
	at = errors.NoOffset
	for {
		start := offsetOf(dec)
		r := dec.Decode(src)
		switch r.Kind() {
		case codec.KindEmptyInput:
			return hadError, at
		case codec.KindScalar:
			s, _ := r.Scalar()
			enc.Encode(s, dst)
			continue
		}

		if !hadError {
			hadError, at = true, start
		}
		if policy == StopOnError {
			logStop(name, start)
			return true, at
		}
		logSubstitution(name, start)
		enc.Encode(codec.Replacement, dst)
	}
}

// offsetOf returns the decoder's position, or errors.NoOffset.
func offsetOf(dec any) int64 {
	if p, ok := dec.(codec.Positioned); ok {
		return p.Offset()
	}
	return errors.NoOffset
}

func bufferedOf(dec any) int {
	if l, ok := dec.(codec.Lookahead); ok {
		return l.Buffered()
	}
	return 0
}

func logSubstitution(encoding string, offset int64) {
	if ce := Logger().Check(zap.DebugLevel, "substituted ill-formed sequence"); ce != nil {
		ce.Write(zap.String("encoding", encoding), zap.Int64("offset", offset))
	}
}

func logStop(encoding string, offset int64) {
	if ce := Logger().Check(zap.DebugLevel, "transcode stopped on ill-formed sequence"); ce != nil {
		ce.Write(zap.String("encoding", encoding), zap.Int64("offset", offset))
	}
}
