package alloc

import (
	"math/bits"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuf/internal/errorutil"
)

const (
	poolMinShift = 6  // 64 B
	poolMaxShift = 20 // 1 MiB
)

// Pool recycles byte blocks through size-bucketed [sync.Pool] instances.
// Blocks are bucketed by power-of-two capacity; requests above the largest
// bucket fall back to plain runtime allocation. Unlike [Arena], a Pool is
// safe for concurrent use.
type Pool struct {
	buckets [poolMaxShift - poolMinShift + 1]sync.Pool
}

// NewPool creates an empty recycling pool.
func NewPool() *Pool {
	return &Pool{}
}

func (p *Pool) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errorutil.NewInvalidArgumentError("negative size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	idx, ok := p.bucketFor(n)
	if !ok {
		return make([]byte, n), nil
	}
	if v := p.buckets[idx].Get(); v != nil {
		b := (*(v.(*[]byte)))[:n] //nolint:forcetypeassert
		clear(b)
		return b, nil
	}
	return make([]byte, n, 1<<(idx+poolMinShift)), nil
}

func (p *Pool) Realloc(b []byte, n int) ([]byte, error) {
	nb, err := p.Alloc(n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	copy(nb, b)
	p.Free(b)
	return nb, nil
}

func (p *Pool) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	// Only exact power-of-two capacities go back, everything else is left
	// to the garbage collector.
	c := cap(b)
	if c&(c-1) != 0 {
		return
	}
	idx, ok := p.bucketFor(c)
	if !ok || 1<<(idx+poolMinShift) != c {
		return
	}
	b = b[:0:c]
	p.buckets[idx].Put(&b)
}

func (p *Pool) bucketFor(n int) (int, bool) {
	shift := bits.Len(uint(n - 1))
	if shift < poolMinShift {
		shift = poolMinShift
	}
	if shift > poolMaxShift {
		return 0, false
	}
	return shift - poolMinShift, true
}
