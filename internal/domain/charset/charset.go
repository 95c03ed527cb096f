// Package charset implements the Latin character subset the Swiss payment
// standard permits in bill text fields. Input outside the subset is
// rejected by the validator; this library never transliterates.
package charset

import "strings"

// extraRunes are the permitted characters beyond printable ASCII, taken
// from the standard's character set annex: accented Latin letters used in
// the Swiss national languages plus a handful of typographic signs.
const extraRunes = "£´àáâäçèéêëìíîïñòóôöùúûüýß" +
	"ÀÁÂÄÇÈÉÊËÌÍÎÏÑÒÓÔÖÙÚÛÜ÷"

var extra = func() map[rune]bool {
	m := make(map[rune]bool, len(extraRunes))
	for _, r := range extraRunes {
		m[r] = true
	}
	return m
}()

// Allowed reports whether a single rune belongs to the permitted subset.
func Allowed(r rune) bool {
	if r >= 0x20 && r <= 0x7e {
		return true
	}
	return extra[r]
}

// Validate reports whether every rune of s is permitted.
func Validate(s string) bool {
	return FirstInvalid(s) == -1
}

// FirstInvalid returns the byte index of the first rune outside the
// permitted subset, or -1 when the whole string is clean.
func FirstInvalid(s string) int {
	return strings.IndexFunc(s, func(r rune) bool { return !Allowed(r) })
}
