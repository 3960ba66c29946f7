package validation

// Builder accumulates validation errors across a series of checks. Every
// check runs regardless of earlier failures, so a response can report
// all problems at once.
type Builder struct {
	errors Errors
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Validate runs a check immediately and records its error, if any.
func (b *Builder) Validate(check func() *Error) *Builder {
	b.errors.Add(check())
	return b
}

// BuildUnit returns the accumulated errors, or nil when every check
// passed.
func (b *Builder) BuildUnit() error {
	if b.errors.HasErrors() {
		return &b.errors
	}
	return nil
}

// Build returns value when every check passed, otherwise the zero value
// and the accumulated errors.
func Build[T any](b *Builder, value T) (T, error) {
	if b.errors.HasErrors() {
		var zero T
		return zero, &b.errors
	}
	return value, nil
}
