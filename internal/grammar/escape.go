// Package grammar implements the RFC 3986 percent-encoding rule.
package grammar

import (
	"bytes"

	"github.com/ghettovoice/uribuf/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Already encoded "% HEXDIG HEXDIG" substrings pass through untouched.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = defShouldEscape
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// EscapedLen returns the number of bytes Escape would produce for s,
// without allocating.
func EscapedLen[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) int {
	if shouldEscape == nil {
		shouldEscape = defShouldEscape
	}

	var n int
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			n += 3
			i += 2
		case shouldEscape(s[i]):
			n += 3
		default:
			n++
		}
	}
	return n
}

// AppendEscaped appends the escaped form of s to dst and returns the extended slice.
// It writes exactly [EscapedLen] bytes for the same s and shouldEscape pair,
// which lets callers escape into preallocated storage.
func AppendEscaped[T constraints.Byteseq](dst []byte, s T, shouldEscape func(c byte) bool) []byte {
	if shouldEscape == nil {
		shouldEscape = defShouldEscape
	}

	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			dst = append(dst, s[i], s[i+1], s[i+2])
			i += 2
		case shouldEscape(s[i]):
			dst = append(dst, '%', upperhex[s[i]>>4], upperhex[s[i]&15])
		default:
			dst = append(dst, s[i])
		}
	}
	return dst
}

func defShouldEscape(c byte) bool { return !IsCharUnreserved(c) }

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphanumChar checks the ALPHA / DIGIT rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks the RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}
