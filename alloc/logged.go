package alloc

import (
	"log/slog"

	"braces.dev/errtrace"
)

// Logged wraps another allocator and reports every call to a [slog.Logger]
// at debug level, failures at error level. Handy when chasing buffer
// ownership bugs.
type Logged struct {
	inner Allocator
	log   *slog.Logger
}

// NewLogged creates a logging wrapper around inner.
// A nil logger falls back to [slog.Default].
func NewLogged(inner Allocator, logger *slog.Logger) *Logged {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logged{inner: inner, log: logger}
}

func (l *Logged) Alloc(n int) ([]byte, error) {
	b, err := l.inner.Alloc(n)
	if err != nil {
		l.log.Error("alloc failed", "size", n, "error", err)
		return nil, errtrace.Wrap(err)
	}
	l.log.Debug("alloc", "size", n, "cap", cap(b))
	return b, nil
}

func (l *Logged) Realloc(b []byte, n int) ([]byte, error) {
	nb, err := l.inner.Realloc(b, n)
	if err != nil {
		l.log.Error("realloc failed", "old_cap", cap(b), "size", n, "error", err)
		return nil, errtrace.Wrap(err)
	}
	l.log.Debug("realloc", "old_cap", cap(b), "size", n, "cap", cap(nb))
	return nb, nil
}

func (l *Logged) Free(b []byte) {
	l.log.Debug("free", "cap", cap(b))
	l.inner.Free(b)
}
