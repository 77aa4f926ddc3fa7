package utils

import (
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first letter of s and leaves the rest as-is.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
