package validation

import "fmt"

// Error is a single failed input constraint. Field is empty when the
// failure is not tied to one field. Code identifies the constraint for
// programmatic handling.
type Error struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
}

// NewError creates a validation error without a field.
func NewError(message, code string) *Error {
	return &Error{Message: message, Code: code}
}

// NewFieldError creates a validation error tied to a field.
func NewFieldError(message, field, code string) *Error {
	return &Error{Message: message, Field: field, Code: code}
}

func (e *Error) Error() string {
	return "Validation error: " + e.Message
}

// Errors collects failed constraints in the order they were checked.
type Errors struct {
	Errors []*Error `json:"errors"`
}

// NewErrors creates an empty collection.
func NewErrors() *Errors {
	return &Errors{}
}

// Add appends an error. Nil is ignored so validator results can be
// passed through directly.
func (e *Errors) Add(err *Error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// AddError appends a new field error built from its parts.
func (e *Errors) AddError(message, field, code string) {
	e.Add(NewFieldError(message, field, code))
}

// HasErrors reports whether any constraint failed.
func (e *Errors) HasErrors() bool {
	return len(e.Errors) > 0
}

// First returns the earliest recorded error, or nil when the collection
// is empty.
func (e *Errors) First() *Error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}

// FieldMap groups error messages by field name. Errors without a field
// are grouped under "_general".
func (e *Errors) FieldMap() map[string][]string {
	out := make(map[string][]string)
	for _, err := range e.Errors {
		field := err.Field
		if field == "" {
			field = "_general"
		}
		out[field] = append(out[field], err.Message)
	}
	return out
}

func (e *Errors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", e.Errors[0].Error(), len(e.Errors)-1)
	}
}
