package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/liga-muertos/liga-backend/pkg/utils"
)

// Required checks that a value is present after trimming whitespace and
// returns the trimmed value.
func Required(value, field string) (string, *Error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewFieldError(field+" is required", field, "REQUIRED")
	}
	return trimmed, nil
}

// Length checks that a string is between min and max characters long,
// inclusive. Characters are counted as runes, not bytes.
func Length(value string, min, max int, field string) *Error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return NewFieldError(
			fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
			field, "LENGTH")
	}
	return nil
}

// Email checks basic email syntax. See utils.IsValidEmail for the exact
// rules; anything stricter belongs to a delivery check, not here.
func Email(value, field string) *Error {
	if !utils.IsValidEmail(value) {
		return NewFieldError("Invalid email format", field, "INVALID_EMAIL")
	}
	return nil
}

// Username checks username format.
func Username(value, field string) *Error {
	if !utils.IsValidUsername(value) {
		return NewFieldError(
			"Username must be 3-50 characters, start with alphanumeric, and contain only alphanumeric, hyphens, or underscores",
			field, "INVALID_USERNAME")
	}
	return nil
}

// Password checks password strength.
func Password(value, field string) *Error {
	if !utils.IsValidPassword(value) {
		return NewFieldError(
			"Password must be 8-128 characters with at least one lowercase, uppercase, and digit",
			field, "WEAK_PASSWORD")
	}
	return nil
}

// TournamentName checks tournament name format.
func TournamentName(value, field string) *Error {
	if !utils.IsValidTournamentName(value) {
		return NewFieldError(
			"Tournament name must be 3-100 characters and not empty",
			field, "INVALID_TOURNAMENT_NAME")
	}
	return nil
}

// UUIDFormat checks the shape of a UUID string. The check is shallow on
// purpose: 36 characters with four hyphens.
func UUIDFormat(value, field string) *Error {
	if utf8.RuneCountInString(value) == 36 && strings.Count(value, "-") == 4 {
		return nil
	}
	return NewFieldError("Invalid UUID format", field, "INVALID_UUID")
}

// PositiveInteger checks that a value is strictly greater than zero.
func PositiveInteger(value int, field string) *Error {
	if value > 0 {
		return nil
	}
	return NewFieldError(
		fmt.Sprintf("%s must be a positive integer", field),
		field, "NOT_POSITIVE")
}

// Range checks that a value lies between min and max, inclusive.
func Range(value, min, max int, field string) *Error {
	if value >= min && value <= max {
		return nil
	}
	return NewFieldError(
		fmt.Sprintf("%s must be between %d and %d", field, min, max),
		field, "OUT_OF_RANGE")
}
