// Package ident maps arbitrary resource entry names onto valid identifiers.
package ident

import (
	"strings"
	"unicode"
)

// letterLike covers the unicode categories copied through verbatim anywhere
// in an identifier.
var letterLike = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
}

// trailingOnly covers categories valid inside an identifier but not as its
// first character: decimal digits, connector punctuation, and format controls.
var trailingOnly = []*unicode.RangeTable{
	unicode.Nd, unicode.Pc, unicode.Cf,
}

// Sanitize maps an arbitrary resource key into a valid identifier. It is a
// total function: every input yields some identifier, and inputs that are
// already valid identifiers pass through unchanged. Distinct inputs may
// collide after sanitization; no deduplication is attempted.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)
	for _, r := range name {
		switch {
		case unicode.In(r, letterLike...):
			b.WriteRune(r)
		case unicode.In(r, trailingOnly...):
			if b.Len() == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
