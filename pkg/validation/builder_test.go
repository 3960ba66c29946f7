package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderAllPassing(t *testing.T) {
	result, err := Build(NewBuilder().
		Validate(func() *Error { _, e := Required("test", "username"); return e }).
		Validate(func() *Error { return Length("test", 3, 10, "username") }),
		"success")

	require.NoError(t, err)
	require.Equal(t, "success", result)
}

// Every check runs; failures are recorded in the order the checks were
// registered.
func TestBuilderAccumulatesInOrder(t *testing.T) {
	err := NewBuilder().
		Validate(func() *Error { _, e := Required("", "username"); return e }).
		Validate(func() *Error { return Length("ab", 3, 10, "username") }).
		Validate(func() *Error { return Range(5, 1, 10, "page") }).
		BuildUnit()

	require.Error(t, err)

	var errs *Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs.Errors, 2)
	require.Equal(t, "REQUIRED", errs.Errors[0].Code)
	require.Equal(t, "LENGTH", errs.Errors[1].Code)
}

// BuildUnit must return an untyped nil so `err == nil` holds at the call
// site.
func TestBuildUnitReturnsPlainNil(t *testing.T) {
	err := NewBuilder().
		Validate(func() *Error { return PositiveInteger(1, "page") }).
		BuildUnit()

	require.True(t, err == nil)
}

func TestBuildReturnsZeroValueOnFailure(t *testing.T) {
	type payload struct{ Name string }

	result, err := Build(NewBuilder().
		Validate(func() *Error { return TournamentName("x", "name") }),
		payload{Name: "x"})

	require.Error(t, err)
	require.Equal(t, payload{}, result)
}

func TestBuilderWithNoChecks(t *testing.T) {
	require.NoError(t, NewBuilder().BuildUnit())
}
