package uri

import "github.com/ghettovoice/uribuf/internal/grammar"

// shouldEscapeSegmentChar reports whether the given byte of a path segment needs escaping.
func shouldEscapeSegmentChar(c byte) bool { return !grammar.IsCharUnreserved(c) }

var uriUserUnreservedChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// shouldEscapeUserChar reports whether the given byte of the user component needs escaping.
func shouldEscapeUserChar(c byte) bool {
	return !uriUserUnreservedChars[c] && !grammar.IsCharUnreserved(c)
}

// shouldEscapePasswdChar reports whether the given byte of the password component needs escaping.
func shouldEscapePasswdChar(c byte) bool { return shouldEscapeUserChar(c) }

var nilTag = "<nil>"
