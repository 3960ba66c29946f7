// Package apierror defines the closed set of errors the API can return
// and the single path that renders them. Handlers return these errors
// (or values convertible to them) and never write error bodies
// themselves.
package apierror

import (
	"fmt"
	"net/http"
)

// Kind identifies one category of API error. The set is closed: the
// HTTP status and error code are functions of the kind alone, never of
// the payload.
type Kind int

const (
	Database Kind = iota + 1
	Validation
	Authentication
	Authorization
	NotFound
	Conflict
	RateLimit
	ExternalService
	Internal
	BadRequest
	JSONParsing
	Tournament
	User
)

// StatusCode returns the HTTP status for this kind.
func (k Kind) StatusCode() int {
	switch k {
	case Database:
		return http.StatusInternalServerError
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusUnauthorized
	case Authorization:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case RateLimit:
		return http.StatusTooManyRequests
	case ExternalService:
		return http.StatusServiceUnavailable
	case Internal:
		return http.StatusInternalServerError
	case BadRequest:
		return http.StatusBadRequest
	case JSONParsing:
		return http.StatusBadRequest
	case Tournament:
		return http.StatusBadRequest
	case User:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the stable machine-readable code for this kind.
func (k Kind) ErrorCode() string {
	switch k {
	case Database:
		return "DATABASE_ERROR"
	case Validation:
		return "VALIDATION_ERROR"
	case Authentication:
		return "AUTHENTICATION_ERROR"
	case Authorization:
		return "AUTHORIZATION_ERROR"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	case RateLimit:
		return "RATE_LIMIT_EXCEEDED"
	case ExternalService:
		return "EXTERNAL_SERVICE_ERROR"
	case Internal:
		return "INTERNAL_SERVER_ERROR"
	case BadRequest:
		return "BAD_REQUEST"
	case JSONParsing:
		return "JSON_PARSING_ERROR"
	case Tournament:
		return "TOURNAMENT_ERROR"
	case User:
		return "USER_ERROR"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// Error is the canonical API error. Construct one with the New*
// functions; the payload fields beyond message are set per kind.
type Error struct {
	kind    Kind
	message string

	field        string // Validation
	resource, id string // NotFound
	service      string // ExternalService
	tournamentID string // Tournament
	userID       string // User
}

// Kind returns the error's category.
func (e *Error) Kind() Kind {
	return e.kind
}

// StatusCode returns the HTTP status for this error.
func (e *Error) StatusCode() int {
	return e.kind.StatusCode()
}

// ErrorCode returns the stable machine-readable code for this error.
func (e *Error) ErrorCode() string {
	return e.kind.ErrorCode()
}

func (e *Error) Error() string {
	switch e.kind {
	case Database:
		return "Database error: " + e.message
	case Validation:
		return "Validation error: " + e.message
	case Authentication:
		return "Authentication error: " + e.message
	case Authorization:
		return "Authorization error: " + e.message
	case NotFound:
		return fmt.Sprintf("Resource not found: %s with id %s", e.resource, e.id)
	case Conflict:
		return "Conflict: " + e.message
	case RateLimit:
		return "Rate limit exceeded: " + e.message
	case ExternalService:
		return fmt.Sprintf("External service error: %s - %s", e.service, e.message)
	case Internal:
		return "Internal server error: " + e.message
	case BadRequest:
		return "Bad request: " + e.message
	case JSONParsing:
		return "JSON parsing error: " + e.message
	case Tournament:
		return "Tournament error: " + e.message
	case User:
		return "User error: " + e.message
	default:
		return "Internal server error: " + e.message
	}
}

// Details returns the structured payload serialized under "details", or
// nil when this error carries none.
func (e *Error) Details() map[string]any {
	switch e.kind {
	case Validation:
		if e.field == "" {
			return nil
		}
		return map[string]any{"field": e.field}
	case NotFound:
		return map[string]any{"resource": e.resource, "id": e.id}
	case ExternalService:
		return map[string]any{"service": e.service}
	case Tournament:
		if e.tournamentID == "" {
			return nil
		}
		return map[string]any{"tournament_id": e.tournamentID}
	case User:
		if e.userID == "" {
			return nil
		}
		return map[string]any{"user_id": e.userID}
	default:
		return nil
	}
}

// ShouldLogAsError reports whether the renderer logs this error at error
// severity. Everything else is a client fault and logs as a warning.
func (e *Error) ShouldLogAsError() bool {
	switch e.kind {
	case Database, Internal, ExternalService:
		return true
	default:
		return false
	}
}

/* ============================ Constructors ============================= */

// NewDatabase creates a database error.
func NewDatabase(message string) *Error {
	return &Error{kind: Database, message: message}
}

// NewValidation creates a validation error without a field.
func NewValidation(message string) *Error {
	return &Error{kind: Validation, message: message}
}

// NewValidationWithField creates a validation error tied to a field.
func NewValidationWithField(message, field string) *Error {
	return &Error{kind: Validation, message: message, field: field}
}

// NewAuthentication creates an authentication error.
func NewAuthentication(message string) *Error {
	return &Error{kind: Authentication, message: message}
}

// NewAuthorization creates an authorization error.
func NewAuthorization(message string) *Error {
	return &Error{kind: Authorization, message: message}
}

// NewNotFound creates a not-found error for a resource and id.
func NewNotFound(resource, id string) *Error {
	return &Error{kind: NotFound, resource: resource, id: id}
}

// NewConflict creates a conflict error.
func NewConflict(message string) *Error {
	return &Error{kind: Conflict, message: message}
}

// NewRateLimit creates a rate-limit error.
func NewRateLimit(message string) *Error {
	return &Error{kind: RateLimit, message: message}
}

// NewExternalService creates an external-service error.
func NewExternalService(service, message string) *Error {
	return &Error{kind: ExternalService, service: service, message: message}
}

// NewInternal creates an internal server error.
func NewInternal(message string) *Error {
	return &Error{kind: Internal, message: message}
}

// NewBadRequest creates a bad-request error.
func NewBadRequest(message string) *Error {
	return &Error{kind: BadRequest, message: message}
}

// NewJSONParsing creates a JSON parsing error.
func NewJSONParsing(message string) *Error {
	return &Error{kind: JSONParsing, message: message}
}

// NewTournament creates a tournament domain error.
func NewTournament(message string) *Error {
	return &Error{kind: Tournament, message: message}
}

// NewTournamentWithID creates a tournament domain error tied to a
// tournament.
func NewTournamentWithID(message, tournamentID string) *Error {
	return &Error{kind: Tournament, message: message, tournamentID: tournamentID}
}

// NewUser creates a user domain error.
func NewUser(message string) *Error {
	return &Error{kind: User, message: message}
}

// NewUserWithID creates a user domain error tied to a user.
func NewUserWithID(message, userID string) *Error {
	return &Error{kind: User, message: message, userID: userID}
}
