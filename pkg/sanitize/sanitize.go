// Package sanitize scrubs user-written text for public listings.
package sanitize

import (
	"regexp"
	"unicode/utf8"
)

var reEmail = regexp.MustCompile(`(?i)[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}`)

// Phone-like runs: digits with common separators, nine digits or more in
// total so short numbers in prose are left alone.
var rePhone = regexp.MustCompile(`\+?\d[\d\s\-\.\(\)]{7,}\d`)

// RedactContacts hides emails and phone numbers. Tournament descriptions
// are shown to anonymous visitors, so contact details stay out of them.
func RedactContacts(s string) string {
	if s == "" {
		return s
	}
	s = reEmail.ReplaceAllString(s, "[hidden email]")
	s = rePhone.ReplaceAllString(s, "[hidden phone]")
	return s
}

// Summary cuts text for a listing at a word boundary. Characters are
// counted as runes, not bytes.
func Summary(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	i := max
	for i > 0 && runes[i] != ' ' {
		i--
	}
	if i == 0 {
		i = max
	}
	return string(runes[:i]) + "…"
}

// Preview is the combination listings use.
func Preview(s string, max int) string {
	return Summary(RedactContacts(s), max)
}
