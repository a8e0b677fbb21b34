// Package stringutils provides common byte string helpers.
package stringutils

import (
	"github.com/ghettovoice/uribuf/internal/constraints"
)

// IsBlank reports whether s is empty or consists of space characters only.
func IsBlank[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			return false
		}
	}
	return true
}

// NormalizeBlank returns s and true when s carries meaningful content.
// Blank input collapses to the zero value and false, so that callers store
// "absent" instead of an empty or all-space value.
func NormalizeBlank[T constraints.Byteseq](s T) (T, bool) {
	if IsBlank(s) {
		var zero T
		return zero, false
	}
	return s, true
}
