package uri

import (
	"math"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuf/alloc"
	"github.com/ghettovoice/uribuf/buffer"
	"github.com/ghettovoice/uribuf/internal/grammar"
)

// Path is a mutable URI path: an ordered sequence of percent-encoded,
// allocator-owned segments plus an absolute flag fixed at construction.
// Absolute paths render with a leading separator, relative paths without;
// segments are always separator-joined.
type Path struct {
	a    alloc.Allocator
	segs [][]byte
	abs  bool
}

// NewPath creates an empty path owning its segments through a.
func NewPath(a alloc.Allocator, absolute bool) *Path {
	return &Path{a: a, abs: absolute}
}

// Free releases every segment and the segment sequence.
// The path must not be used afterward.
func (p *Path) Free() {
	for _, seg := range p.segs {
		p.a.Free(seg)
	}
	p.segs = nil
}

// Absolute reports whether the path renders with a leading separator.
func (p *Path) Absolute() bool { return p.abs }

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segs) }

// Segment returns a view of the i-th stored segment in its encoded form.
func (p *Path) Segment(i int) []byte {
	seg := p.segs[i]
	return seg[:len(seg):len(seg)]
}

// AppendSegment percent-encodes raw and appends the encoded segment,
// preserving insertion order. Space and every RFC 3986 reserved byte is
// stored as "%XX"; unreserved bytes pass through.
func (p *Path) AppendSegment(raw []byte) error {
	n := grammar.EscapedLen(raw, shouldEscapeSegmentChar)
	seg, err := p.a.Alloc(n)
	if err != nil {
		return errtrace.Wrap(err)
	}
	seg = grammar.AppendEscaped(seg[:0], raw, shouldEscapeSegmentChar)
	p.segs = append(p.segs, seg)
	return nil
}

// RenderTo appends the rendered path to dst: a separator goes before
// segment i when the path is absolute or i > 0, then the segment bytes.
func (p *Path) RenderTo(dst *buffer.Buffer) error {
	for i, seg := range p.segs {
		if p.abs || i > 0 {
			if err := dst.Append(sep); err != nil {
				return errtrace.Wrap(err)
			}
		}
		if err := dst.Append(seg); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

var sep = []byte{'/'}

// RenderedLen returns the exact byte length RenderTo would produce and
// false as soon as the overflow-checked sum exceeds the representable
// range.
func (p *Path) RenderedLen() (int, bool) {
	var n int
	for i, seg := range p.segs {
		if p.abs || i > 0 {
			if n == math.MaxInt {
				return 0, false
			}
			n++
		}
		if n > math.MaxInt-len(seg) {
			return 0, false
		}
		n += len(seg)
	}
	return n, true
}

// Render renders the path into a fresh exact-capacity block from a and
// returns its content, owned by the caller through a. It fails with
// [buffer.ErrOffsetOverflow] when the rendered length is not representable.
func (p *Path) Render(a alloc.Allocator) ([]byte, error) {
	n, ok := p.RenderedLen()
	if !ok {
		return nil, buffer.NewOffsetOverflowError("rendered path length")
	}
	buf, err := buffer.New(a, n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := p.RenderTo(buf); err != nil {
		buf.Free()
		return nil, errtrace.Wrap(err)
	}
	return buf.Bytes(), nil
}

func (p *Path) String() string {
	b, err := p.Render(alloc.Heap{})
	if err != nil {
		return nilTag
	}
	return string(b)
}
