package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidEmail reports whether an address passes a basic syntactic check:
// exactly one '@' somewhere in the middle, printable ASCII only, and a
// sane total length. It is deliberately permissive and makes no attempt
// at full RFC 5322 parsing.
func IsValidEmail(email string) bool {
	n := utf8.RuneCountInString(email)
	if n <= 3 || n >= 255 {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	if strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return false
	}
	for _, r := range email {
		if r < '!' || r > '~' {
			return false
		}
	}
	return true
}

// IsValidUsername reports whether a username is 3-50 characters, starts
// with an alphanumeric character, and contains only alphanumerics,
// hyphens, and underscores.
func IsValidUsername(username string) bool {
	n := utf8.RuneCountInString(username)
	if n < 3 || n > 50 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(username)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return false
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// IsValidTournamentName reports whether a tournament name is 3-100
// characters and not just whitespace.
func IsValidTournamentName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < 3 || n > 100 {
		return false
	}
	return strings.TrimSpace(name) != ""
}

// IsValidPassword reports whether a password is 8-128 characters with at
// least one lowercase letter, one uppercase letter, and one digit.
func IsValidPassword(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < 8 || n > 128 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
