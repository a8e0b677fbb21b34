package alloc

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuf/internal/errorutil"
)

// Arena is a bump allocator over a single growing block. All blocks handed
// out stay valid until Reset. Free is a no-op, so an Arena suits sessions
// that build many short-lived values and drop them at once.
//
// An Arena must not be used from more than one goroutine concurrently.
type Arena struct {
	buf []byte
	off int
}

// NewArena creates an arena with the given initial space.
func NewArena(space int) *Arena {
	return &Arena{buf: make([]byte, 0, max(space, 0))}
}

func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errorutil.NewInvalidArgumentError("negative size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	if a.off+n > cap(a.buf) {
		newCap := max(cap(a.buf)*2, a.off+n)
		buf := make([]byte, a.off, newCap)
		copy(buf, a.buf[:a.off])
		a.buf = buf
	}
	a.buf = a.buf[:a.off+n]
	out := a.buf[a.off : a.off+n : a.off+n]
	a.off += n
	clear(out)
	return out, nil
}

func (a *Arena) Realloc(b []byte, n int) ([]byte, error) {
	nb, err := a.Alloc(n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	copy(nb, b)
	a.Free(b)
	return nb, nil
}

func (*Arena) Free([]byte) {}

// Reset drops every block handed out so far and reuses the arena space.
func (a *Arena) Reset() {
	a.off = 0
	a.buf = a.buf[:0]
}

// Size returns the number of bytes currently handed out.
func (a *Arena) Size() int { return a.off }
