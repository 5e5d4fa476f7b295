package canon

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/textcodec"
	"github.com/wippyai/textcodec/errors"
	"github.com/wippyai/textcodec/transcoder"
)

// guestWASM imports alloc.cabi_realloc and exports it again next to one
// page of memory, so the allocator is reachable through ExportedFunction.
var guestWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	// type section: (i32 i32 i32 i32) -> i32
	0x01, 0x09, 0x01, 0x60, 0x04, 0x7f, 0x7f, 0x7f, 0x7f, 0x01, 0x7f,
	// import section: "alloc" "cabi_realloc" func type 0
	0x02, 0x16, 0x01,
	0x05, 0x61, 0x6c, 0x6c, 0x6f, 0x63,
	0x0c, 0x63, 0x61, 0x62, 0x69, 0x5f, 0x72, 0x65, 0x61, 0x6c, 0x6c, 0x6f, 0x63,
	0x00, 0x00,
	// memory section: 1 page, no max
	0x05, 0x03, 0x01, 0x00, 0x01,
	// export section: "memory" memory 0, "cabi_realloc" func 0
	0x07, 0x19, 0x02,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	0x0c, 0x63, 0x61, 0x62, 0x69, 0x5f, 0x72, 0x65, 0x61, 0x6c, 0x6c, 0x6f, 0x63, 0x00, 0x00,
}

// bump is a cabi_realloc that never reuses memory.
type bump struct {
	next   uint32
	allocs int
	frees  int
	fail   bool // panic on free
}

func (b *bump) realloc(_ context.Context, ptr, oldSize, align, newSize uint32) uint32 {
	if newSize == 0 {
		if b.fail {
			panic("free rejected")
		}
		b.frees++
		return 0
	}
	if ptr != 0 || oldSize != 0 {
		panic("growth not supported")
	}
	b.next = (b.next + align - 1) &^ (align - 1)
	p := b.next
	b.next += newSize
	b.allocs++
	return p
}

type guest struct {
	mem   api.Memory
	alloc *bump
	opts  Options
}

// newGuest instantiates a host cabi_realloc and the guest module that
// re-exports it.
func newGuest(t *testing.T, enc StringEncoding, policy transcoder.Policy) *guest {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	b := &bump{next: 1024}
	_, err := rt.NewHostModuleBuilder("alloc").
		NewFunctionBuilder().
		WithFunc(b.realloc).
		Export("cabi_realloc").
		Instantiate(ctx)
	if err != nil {
		t.Fatalf("failed to instantiate allocator: %v", err)
	}

	mod, err := rt.Instantiate(ctx, guestWASM)
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}

	mem := mod.ExportedMemory("memory")
	return &guest{
		mem:   mem,
		alloc: b,
		opts: Options{
			Memory:   WrapMemory(mem),
			Realloc:  WrapAllocator(ctx, mod.ExportedFunction("cabi_realloc")),
			Encoding: enc,
			Policy:   policy,
		},
	}
}

func (g *guest) bytes(t *testing.T, ptr, n uint32) []byte {
	t.Helper()
	data, ok := g.mem.Read(ptr, n)
	if !ok {
		t.Fatalf("read [%d, +%d) out of bounds", ptr, n)
	}
	return append([]byte(nil), data...)
}

func (g *guest) write(t *testing.T, ptr uint32, data []byte) {
	t.Helper()
	if !g.mem.Write(ptr, data) {
		t.Fatalf("write at %d out of bounds", ptr)
	}
}

// kindOf returns the Kind of a structured error, or "" for anything else.
func kindOf(err error) errors.Kind {
	if e, ok := err.(*errors.Error); ok {
		return e.Kind
	}
	return ""
}

// fakeAllocator returns fixed results without touching memory.
type fakeAllocator struct {
	ptr   uint32
	err   error
	freed []uint32
}

func (a *fakeAllocator) Alloc(size, align uint32) (uint32, error) {
	return a.ptr, a.err
}

func (a *fakeAllocator) Free(ptr, size, align uint32) {
	a.freed = append(a.freed, ptr)
}

var _ textcodec.Allocator = (*fakeAllocator)(nil)

// goBump is a textcodec.Allocator implemented in Go, bypassing cabi_realloc.
type goBump struct {
	next   uint32
	allocs int
}

func (a *goBump) Alloc(size, align uint32) (uint32, error) {
	a.next = (a.next + align - 1) &^ (align - 1)
	p := a.next
	a.next += size
	a.allocs++
	return p, nil
}

func (a *goBump) Free(ptr, size, align uint32) {}

var _ textcodec.Allocator = (*goBump)(nil)
