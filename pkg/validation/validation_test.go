package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCreation(t *testing.T) {
	err := NewError("Test error", "TEST")
	require.Equal(t, "Test error", err.Message)
	require.Equal(t, "TEST", err.Code)
	require.Empty(t, err.Field)
	require.Equal(t, "Validation error: Test error", err.Error())

	withField := NewFieldError("Field error", "username", "INVALID")
	require.Equal(t, "Field error", withField.Message)
	require.Equal(t, "username", withField.Field)
	require.Equal(t, "INVALID", withField.Code)
}

func TestErrorsCollection(t *testing.T) {
	errs := NewErrors()
	require.False(t, errs.HasErrors())
	require.Nil(t, errs.First())

	errs.AddError("Username required", "username", "REQUIRED")
	errs.AddError("Email invalid", "email", "INVALID_EMAIL")

	require.True(t, errs.HasErrors())
	require.Len(t, errs.Errors, 2)
	require.Equal(t, "REQUIRED", errs.First().Code)

	fieldMap := errs.FieldMap()
	require.Contains(t, fieldMap, "username")
	require.Contains(t, fieldMap, "email")
}

func TestErrorsAddIgnoresNil(t *testing.T) {
	errs := NewErrors()
	errs.Add(nil)
	require.False(t, errs.HasErrors())
}

func TestFieldMapGroupsGeneralErrors(t *testing.T) {
	errs := NewErrors()
	errs.Add(NewError("something is off", "GENERAL"))
	errs.AddError("too short", "name", "LENGTH")

	fieldMap := errs.FieldMap()
	require.Equal(t, []string{"something is off"}, fieldMap["_general"])
	require.Equal(t, []string{"too short"}, fieldMap["name"])
}

func TestRequired(t *testing.T) {
	value, err := Required("  test  ", "username")
	require.Nil(t, err)
	require.Equal(t, "test", value)

	_, err = Required("", "username")
	require.NotNil(t, err)
	require.Equal(t, "REQUIRED", err.Code)
	require.Equal(t, "username is required", err.Message)

	_, err = Required("   ", "username")
	require.NotNil(t, err)
}

func TestLength(t *testing.T) {
	require.Nil(t, Length("hello", 3, 10, "field"))
	require.Nil(t, Length("abc", 3, 3, "field"))

	err := Length("ab", 3, 3, "field")
	require.NotNil(t, err)
	require.Equal(t, "LENGTH", err.Code)
	require.Equal(t, "field must be between 3 and 3 characters", err.Message)

	require.NotNil(t, Length("this is too long for the limit", 3, 10, "field"))
}

// Length counts characters, not bytes.
func TestLengthCountsRunes(t *testing.T) {
	require.Nil(t, Length("héllo", 5, 5, "field"))
	require.Nil(t, Length("日本語", 3, 3, "field"))
	require.NotNil(t, Length("日本語", 4, 10, "field"))
}

func TestEmail(t *testing.T) {
	require.Nil(t, Email("a@b.co", "email"))
	require.Nil(t, Email("user@example.com", "email"))

	for _, bad := range []string{"@b.co", "a@", "plain", "a@b@c.io", ""} {
		err := Email(bad, "email")
		require.NotNil(t, err, "email %q should fail", bad)
		require.Equal(t, "INVALID_EMAIL", err.Code)
		require.Equal(t, "Invalid email format", err.Message)
	}
}

func TestUsername(t *testing.T) {
	require.Nil(t, Username("player-one", "username"))

	err := Username("-player", "username")
	require.NotNil(t, err)
	require.Equal(t, "INVALID_USERNAME", err.Code)
}

func TestPassword(t *testing.T) {
	require.Nil(t, Password("Password123", "password"))

	for _, bad := range []string{"password123", "PASSWORD123", "Pass1"} {
		err := Password(bad, "password")
		require.NotNil(t, err, "password %q should fail", bad)
		require.Equal(t, "WEAK_PASSWORD", err.Code)
	}
}

func TestTournamentName(t *testing.T) {
	require.Nil(t, TournamentName("Spring Cup", "name"))

	err := TournamentName("ab", "name")
	require.NotNil(t, err)
	require.Equal(t, "INVALID_TOURNAMENT_NAME", err.Code)
}

func TestUUIDFormat(t *testing.T) {
	require.Nil(t, UUIDFormat("123e4567-e89b-12d3-a456-426614174000", "id"))

	err := UUIDFormat("not-a-uuid", "id")
	require.NotNil(t, err)
	require.Equal(t, "INVALID_UUID", err.Code)
	require.NotNil(t, UUIDFormat("123e4567e89b12d3a456426614174000", "id"))
}

func TestPositiveInteger(t *testing.T) {
	require.Nil(t, PositiveInteger(5, "page"))

	for _, bad := range []int{0, -1} {
		err := PositiveInteger(bad, "page")
		require.NotNil(t, err)
		require.Equal(t, "NOT_POSITIVE", err.Code)
		require.Equal(t, "page must be a positive integer", err.Message)
	}
}

func TestRange(t *testing.T) {
	require.Nil(t, Range(5, 1, 10, "pageSize"))
	require.Nil(t, Range(1, 1, 10, "pageSize"))
	require.Nil(t, Range(10, 1, 10, "pageSize"))

	for _, bad := range []int{0, 11} {
		err := Range(bad, 1, 10, "pageSize")
		require.NotNil(t, err)
		require.Equal(t, "OUT_OF_RANGE", err.Code)
		require.Equal(t, "pageSize must be between 1 and 10", err.Message)
	}
}
