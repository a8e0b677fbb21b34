// Package buffer implements a growable byte string with an explicit
// allocator and a logical length tracked apart from allocated capacity.
package buffer

//go:generate errtrace -w .

import (
	"math"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuf/alloc"
	"github.com/ghettovoice/uribuf/internal/errorutil"
)

// ErrOffsetOverflow is an error returned when an offset and size combination
// exceeds the representable range.
const ErrOffsetOverflow errorutil.Error = "offset overflow"

// NewOffsetOverflowError creates a new error with [ErrOffsetOverflow] or
// wraps provided error with [ErrOffsetOverflow].
func NewOffsetOverflowError(args ...any) error {
	return errorutil.NewWrapperError(ErrOffsetOverflow, args...) //errtrace:skip
}

// Buffer is a mutable byte string backed by a single allocator-owned block.
// Bytes in [0, Len()) are content; bytes in [Len(), Cap()) are scratch space.
// A Buffer owns its block exclusively and must not be shared between
// goroutines without external synchronization.
//
// The zero Buffer is not usable; construct with [New].
type Buffer struct {
	a   alloc.Allocator
	buf []byte // whole allocated block, len(buf) == capacity
	n   int    // logical content length, n <= len(buf)
}

// New creates a buffer backed by a block of exactly capacity bytes
// (possibly zero) obtained from a, with zero length.
func New(a alloc.Allocator, capacity int) (*Buffer, error) {
	b, err := a.Alloc(capacity)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Buffer{a: a, buf: b}, nil
}

// Free releases the backing block to the allocator.
// The buffer must not be used afterward.
func (b *Buffer) Free() {
	b.a.Free(b.buf)
	b.buf = nil
	b.n = 0
}

// Len returns the logical content length.
func (b *Buffer) Len() int { return b.n }

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Bytes returns the content view [0, Len()). The view shares the backing
// block, it is not a copy: it stays valid only until the next mutating call
// and must not be modified by the caller.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n:b.n] }

// String returns a copy of the content as a string.
func (b *Buffer) String() string { return string(b.buf[:b.n]) }

// SetAt writes p starting at offset i, growing the backing block as needed.
// Writing past the current length zero-fills the gap [Len(), i) first.
// The length becomes max(Len(), i+len(p)). When i+len(p) is not
// representable the buffer stays untouched and [ErrOffsetOverflow] is
// returned.
func (b *Buffer) SetAt(i int, p []byte) error {
	if i < 0 {
		return errorutil.NewInvalidArgumentError("negative offset %d", i)
	}
	if i > math.MaxInt-len(p) {
		return NewOffsetOverflowError("offset %d + size %d", i, len(p))
	}
	end := i + len(p)
	if err := b.Grow(end); err != nil {
		return errtrace.Wrap(err)
	}
	if i > b.n {
		clear(b.buf[b.n:i])
	}
	copy(b.buf[i:end], p)
	if end > b.n {
		b.n = end
	}
	return nil
}

// Append writes p at the logical end, growing as needed.
func (b *Buffer) Append(p []byte) error {
	return errtrace.Wrap(b.SetAt(b.n, p))
}

// Grow ensures a capacity of at least n bytes. Present capacity is kept
// as is; otherwise the block is reallocated to max(n, 2*Cap()), falling
// back to n alone when doubling would overflow.
func (b *Buffer) Grow(n int) error {
	if n <= len(b.buf) {
		return nil
	}
	newCap := n
	if c := len(b.buf); c <= math.MaxInt/2 && 2*c > newCap {
		newCap = 2 * c
	}
	nb, err := b.a.Realloc(b.buf, newCap)
	if err != nil {
		return errtrace.Wrap(err)
	}
	b.buf = nb
	return nil
}

// Shrink reallocates the backing block to exactly Len() bytes, reclaiming
// scratch space before the content is exposed as a result.
func (b *Buffer) Shrink() error {
	if b.n == len(b.buf) {
		return nil
	}
	nb, err := b.a.Realloc(b.buf, b.n)
	if err != nil {
		return errtrace.Wrap(err)
	}
	b.buf = nb
	return nil
}

// Set replaces the content with exactly p, growing as needed.
// Prior content beyond len(p) is discarded.
func (b *Buffer) Set(p []byte) error {
	if err := b.SetAt(0, p); err != nil {
		return errtrace.Wrap(err)
	}
	b.n = len(p)
	return nil
}
