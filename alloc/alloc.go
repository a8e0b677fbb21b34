// Package alloc defines the byte allocator consumed by the buffer and uri
// packages, together with a few ready-to-use allocation strategies.
package alloc

//go:generate errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuf/internal/errorutil"
)

// ErrAllocFailed is an error returned when an allocator cannot provide memory.
const ErrAllocFailed errorutil.Error = "allocation failed"

// NewAllocFailedError creates a new error with [ErrAllocFailed] or
// wraps provided error with [ErrAllocFailed].
func NewAllocFailedError(args ...any) error {
	return errorutil.NewWrapperError(ErrAllocFailed, args...) //errtrace:skip
}

// Allocator provides byte blocks to the owning types of this module.
// Implementations decide the allocation strategy; callers own the returned
// blocks until they pass them back to Free.
type Allocator interface {
	// Alloc returns a block of exactly n bytes, zeroed.
	// It fails with [ErrAllocFailed] when memory cannot be obtained.
	Alloc(n int) ([]byte, error)
	// Realloc returns a block of exactly n bytes holding the first
	// min(len(b), n) bytes of b, and releases b. On failure b stays valid.
	Realloc(b []byte, n int) ([]byte, error)
	// Free releases a block obtained from Alloc or Realloc.
	// Freeing a nil block is a no-op.
	Free(b []byte)
}

// Heap is the default allocator backed by the Go runtime.
// Free is a no-op and leaves reclamation to the garbage collector.
type Heap struct{}

func (Heap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errorutil.NewInvalidArgumentError("negative size %d", n)
	}
	return make([]byte, n), nil
}

func (h Heap) Realloc(b []byte, n int) ([]byte, error) {
	nb, err := h.Alloc(n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	copy(nb, b)
	h.Free(b)
	return nb, nil
}

func (Heap) Free([]byte) {}
