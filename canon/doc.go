// Package canon lifts and lowers Component Model strings and chars between
// Go and WebAssembly linear memory.
//
// A component's canonical options pick one of three string encodings:
//
//	Encoding       Unit   Align  Length
//	───────────────────────────────────────────────────────────
//	utf8           1      1      bytes
//	utf16          2      2      code units
//	latin1+utf16   1 / 2  2      bytes, or units | UTF16Tag
//
// # Lowering
//
// LowerString measures the Go string first, so a single allocation of the
// exact size is made through the guest's cabi_realloc:
//
//	opts := canon.Options{
//	    Memory:   canon.WrapMemory(mod.Memory()),
//	    Realloc:  canon.WrapAllocator(ctx, mod.ExportedFunction("cabi_realloc")),
//	    Encoding: canon.Latin1UTF16,
//	}
//	ptr, length, err := canon.LowerString(opts, "héllo")
//
// With latin1+utf16 the string is stored as Latin-1 when every scalar is at
// most U+00FF.
//
// # Lifting
//
// LiftString decodes guest memory with the checked codecs. Unpaired
// surrogates and invalid UTF-8 fail under transcoder.StopOnError and become
// U+FFFD under transcoder.Substitute.
//
// # Flat Values
//
// LiftValue and LowerValue handle the flattened forms of wit.String
// (ptr, len) and wit.Char (one i32). Other WIT types are unsupported.
//
// # Thread Safety
//
// Functions are safe for concurrent use when the Memory and Allocator are.
// wazero module instances are not, so serialize calls per instance.
package canon
