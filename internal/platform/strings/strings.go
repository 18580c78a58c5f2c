// Package strings provides small string and slice helpers
package strings

import (
	std "strings"
	"unicode/utf8"
)

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Truncate returns at most the first n runes of s, never splitting a rune
// invalid bytes count as one rune each
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	i := 0
	for c := 0; c < n && i < len(s); c++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like /docs to one leading slash and no trailing slash
// the root "/" and blank input come back as "" so callers can mount at the top level
func MustPrefix(s string) string {
	s = std.Trim(std.TrimSpace(s), "/")
	if s == "" {
		return ""
	}
	if std.ContainsAny(s, " \t") {
		panic("mount path must not contain whitespace: " + s)
	}
	return "/" + s
}
