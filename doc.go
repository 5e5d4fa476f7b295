// Package textcodec provides Unicode code-unit transcoding for Go.
//
// The library converts between UTF-8, UTF-16 and UTF-32 code-unit sequences and
// validated Unicode scalar values, pumps streams from one encoding to another,
// and pre-measures inputs so that storage can be sized before it is filled.
//
// # Architecture Overview
//
//	textcodec/           Root package with Source, Sink, Memory and Allocator interfaces
//	├── codec/           Scalars, decode results, per-encoding decoders and encoders
//	├── transcoder/      Transcode driver, Measure, byte forms, x/text adapters
//	├── canon/           Component Model string lifting and lowering over wasm memory
//	├── errors/          Structured error types
//	└── cmd/transcode/   Command line transcoder and interactive inspector
//
// # Data Flow
//
// Every operation moves data one way:
//
//	Source ──▶ Decoder ──▶ Result ──▶ Encoder ──▶ Sink
//
// Measure replaces the encoder and sink with counters.
//
// # Quick Start
//
//	units, err := transcoder.UTF8ToUTF16([]byte("héllo"), transcoder.StopOnError)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Streaming with golang.org/x/text:
//
//	t, _ := transcoder.NewTransformer(transcoder.UTF16LE, transcoder.UTF8, transcoder.Substitute)
//	r := transform.NewReader(file, t)
//
// # Ill-formed Input
//
// The UTF-8 decoder is fully resilient: each ill-formed sequence is reported as a
// single error result covering its maximal subpart (Unicode 6.3 D93b), after which
// decoding resumes. The plain UTF-16 and UTF-32 decoders trust their input; use
// codec.CheckedUTF16 and codec.CheckedUTF32 for untrusted data.
//
// # Thread Safety
//
// Encodings and forms are immutable and safe for concurrent use. Decoders, sources
// and sinks are single-traversal objects and must not be shared between goroutines.
package textcodec
