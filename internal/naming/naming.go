// Package naming holds the string transforms applied to component names and
// generated filenames.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// separators lists every path separator a name argument may carry. Both are
// accepted on every platform.
const separators = `/\`

// BareName returns the part of pathLike after its last path separator, or
// the whole string when it has none.
func BareName(pathLike string) string {
	i := strings.LastIndexAny(pathLike, separators)
	if i < 0 {
		return pathLike
	}
	return pathLike[i+1:]
}

// Capitalize uppercases the first rune of token and leaves the rest unchanged.
func Capitalize(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return token
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return token
	}
	return string(upper) + token[size:]
}

// StartsWithLetter reports whether the first rune of s is a letter.
func StartsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsLetter(r)
}

// Identifier converts a name into a JavaScript identifier: every rune that
// is not a letter, digit, '_' or '$' becomes '_', and a leading digit gets a
// '_' prefix.
func Identifier(name string) string {
	id := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			return r
		}
		return '_'
	}, name)
	if r, _ := utf8.DecodeRuneInString(id); unicode.IsDigit(r) {
		id = "_" + id
	}
	return id
}
