package alloc

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuf/internal/errorutil"
)

// Limited wraps another allocator with a byte budget. Alloc and Realloc fail
// with [ErrAllocFailed] once the outstanding total would exceed the limit.
// It gives callers a deterministic way to exercise allocation failure paths
// and to cap memory driven by untrusted input sizes. Budgets are checked
// against requested sizes and accounted with actual block capacities.
type Limited struct {
	inner Allocator
	limit int
	used  int
}

// NewLimited creates an allocator handing out at most limit bytes in total
// of outstanding blocks from inner.
func NewLimited(inner Allocator, limit int) *Limited {
	return &Limited{inner: inner, limit: limit}
}

func (l *Limited) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errorutil.NewInvalidArgumentError("negative size %d", n)
	}
	if l.used+n > l.limit || l.used+n < l.used {
		return nil, NewAllocFailedError("budget %d exceeded by %d byte block", l.limit, n)
	}
	b, err := l.inner.Alloc(n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	l.used += cap(b)
	return b, nil
}

func (l *Limited) Realloc(b []byte, n int) ([]byte, error) {
	nb, err := l.Alloc(n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	copy(nb, b)
	l.Free(b)
	return nb, nil
}

func (l *Limited) Free(b []byte) {
	l.used -= cap(b)
	if l.used < 0 {
		l.used = 0
	}
	l.inner.Free(b)
}

// Used returns the number of outstanding bytes.
func (l *Limited) Used() int { return l.used }
