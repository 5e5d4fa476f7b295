package canon

import (
	"context"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/textcodec"
	"github.com/wippyai/textcodec/errors"
)

// WrapMemory wraps a wazero api.Memory to implement textcodec.Memory.
func WrapMemory(mem api.Memory) textcodec.Memory {
	if mem == nil {
		return nil
	}
	return &MemoryWrapper{Mem: mem}
}

// WrapAllocator wraps a wazero cabi_realloc export to implement
// textcodec.Allocator.
func WrapAllocator(ctx context.Context, fn api.Function) textcodec.Allocator {
	if fn == nil {
		return nil
	}
	return &AllocatorWrapper{Ctx: ctx, Fn: fn}
}

// MemoryWrapper adapts wazero api.Memory to textcodec.Memory.
type MemoryWrapper struct {
	Mem api.Memory
}

// Read returns a view of guest memory. It is valid until the memory grows.
func (m *MemoryWrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseLift, offset, length)
	}
	return data, nil
}

// Write copies data into guest memory.
func (m *MemoryWrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return errors.OutOfBounds(errors.PhaseLower, offset, uint32(len(data)))
	}
	return nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *MemoryWrapper) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseLift, offset, 4)
	}
	return v, nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (m *MemoryWrapper) WriteU32(offset uint32, value uint32) error {
	if !m.Mem.WriteUint32Le(offset, value) {
		return errors.OutOfBounds(errors.PhaseLower, offset, 4)
	}
	return nil
}

// AllocatorWrapper adapts a cabi_realloc api.Function to textcodec.Allocator.
type AllocatorWrapper struct {
	Ctx context.Context
	Fn  api.Function
}

// Alloc allocates memory with cabi_realloc(0, 0, align, size).
func (a *AllocatorWrapper) Alloc(size, align uint32) (uint32, error) {
	results, err := a.Fn.Call(a.Ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Cause(err).
			Detail("cabi_realloc(%d, %d) failed", size, align).
			Build()
	}
	if len(results) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseLower, size, align)
	}
	return uint32(results[0]), nil
}

// Free releases memory with cabi_realloc(ptr, size, align, 0). Failures are
// logged; the memory is leaked.
func (a *AllocatorWrapper) Free(ptr, size, align uint32) {
	if _, err := a.Fn.Call(a.Ctx, uint64(ptr), uint64(size), uint64(align), 0); err != nil {
		Logger().Warn("cabi_realloc free failed",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size),
			zap.Error(err))
	}
}
