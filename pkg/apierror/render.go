package apierror

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/liga-muertos/liga-backend/pkg/logging"
	"github.com/liga-muertos/liga-backend/pkg/validation"
)

// FromFiber maps a transport-level fiber error onto the taxonomy. Fiber
// raises these itself for unmatched routes, oversized bodies, and the
// like.
func FromFiber(ferr *fiber.Error) *Error {
	switch ferr.Code {
	case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed, fiber.StatusRequestEntityTooLarge:
		return NewBadRequest(ferr.Message)
	case fiber.StatusUnauthorized:
		return NewAuthentication(ferr.Message)
	case fiber.StatusForbidden:
		return NewAuthorization(ferr.Message)
	case fiber.StatusNotFound:
		return NewNotFound("route", "unknown")
	case fiber.StatusTooManyRequests:
		return NewRateLimit(ferr.Message)
	default:
		return NewInternal(ferr.Message)
	}
}

// Classify resolves any error a handler returned into a canonical
// *Error.
func Classify(err error) *Error {
	var (
		apiErr *Error
		verrs  *validation.Errors
		verr   *validation.Error
		ferr   *fiber.Error
	)
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &verrs):
		return FromValidationErrors(verrs)
	case errors.As(err, &verr):
		return FromValidation(verr)
	case errors.As(err, &ferr):
		return FromFiber(ferr)
	default:
		return NewInternal(err.Error())
	}
}

// ErrorHandler is the app-level fiber error handler and the only place
// that logs and renders API errors. Each error is logged exactly once:
// at error severity for server-side faults, as a warning otherwise.
func ErrorHandler(c *fiber.Ctx, err error) error {
	apiErr := Classify(err)

	if apiErr.ShouldLogAsError() {
		logging.APIError(apiErr.Error())
	} else {
		logging.APIWarning(apiErr.Error())
	}

	resp := NewResponse(apiErr.Error(), apiErr.ErrorCode())
	if details := apiErr.Details(); details != nil {
		resp = resp.WithDetails(details)
	}
	return c.Status(apiErr.StatusCode()).JSON(resp)
}
