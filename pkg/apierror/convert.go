package apierror

import (
	"fmt"
	"strings"

	"github.com/liga-muertos/liga-backend/pkg/logging"
	"github.com/liga-muertos/liga-backend/pkg/validation"
)

// FromDatabase classifies a raw datastore error by matching well-known
// substrings of the driver message. Matching is case-sensitive and the
// fallback keeps the driver text verbatim, so callers that need precise
// classification should check the concrete error before calling this.
func FromDatabase(err error) *Error {
	logging.DatabaseError(err)

	text := err.Error()
	switch {
	case strings.Contains(text, "Connection") || strings.Contains(text, "timeout"):
		return NewDatabase("Database connection error")
	case strings.Contains(text, "duplicate") || strings.Contains(text, "already exists"):
		return NewConflict("Resource already exists")
	case strings.Contains(text, "not found") || strings.Contains(text, "No record"):
		return NewNotFound("record", "unknown")
	default:
		return NewDatabase(text)
	}
}

// FromJSON converts a request body decoding failure.
func FromJSON(err error) *Error {
	logging.APIWarning("JSON parsing error: " + err.Error())
	return NewJSONParsing(err.Error())
}

// FromValidation lifts a single validation error into the taxonomy.
func FromValidation(verr *validation.Error) *Error {
	return NewValidationWithField(verr.Message, verr.Field)
}

// FromValidationErrors lifts an accumulated validation result into the
// taxonomy using its first error, which is what the API reports.
func FromValidationErrors(verrs *validation.Errors) *Error {
	if first := verrs.First(); first != nil {
		return FromValidation(first)
	}
	return NewValidation(verrs.Error())
}

/* =========================== Result helpers ============================ */

// WithContext wraps a failed operation's error as an internal error with
// added context.
func WithContext(err error, context string) *Error {
	return NewInternal(fmt.Sprintf("%s: %v", context, err))
}

// AsNotFound converts a failed lookup's error into a not-found error for
// the given resource. The original error text is dropped.
func AsNotFound(_ error, resource, id string) *Error {
	return NewNotFound(resource, id)
}

// AsValidation converts a failed parse's error into a field validation
// error.
func AsValidation(err error, field string) *Error {
	return NewValidationWithField(err.Error(), field)
}
