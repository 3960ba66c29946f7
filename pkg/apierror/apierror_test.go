package apierror

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// Status and code depend on the kind alone: variants with and without a
// payload map identically.
func TestStatusAndCodePerKind(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{NewDatabase("boom"), http.StatusInternalServerError, "DATABASE_ERROR"},
		{NewValidation("bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{NewValidationWithField("bad", "name"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{NewAuthentication("no token"), http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
		{NewAuthorization("not yours"), http.StatusForbidden, "AUTHORIZATION_ERROR"},
		{NewNotFound("user", "123"), http.StatusNotFound, "NOT_FOUND"},
		{NewConflict("dup"), http.StatusConflict, "CONFLICT"},
		{NewRateLimit("slow down"), http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{NewExternalService("matchmaker", "down"), http.StatusServiceUnavailable, "EXTERNAL_SERVICE_ERROR"},
		{NewInternal("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{NewBadRequest("nope"), http.StatusBadRequest, "BAD_REQUEST"},
		{NewJSONParsing("eof"), http.StatusBadRequest, "JSON_PARSING_ERROR"},
		{NewTournament("full"), http.StatusBadRequest, "TOURNAMENT_ERROR"},
		{NewTournamentWithID("full", "t1"), http.StatusBadRequest, "TOURNAMENT_ERROR"},
		{NewUser("banned"), http.StatusBadRequest, "USER_ERROR"},
		{NewUserWithID("banned", "u1"), http.StatusBadRequest, "USER_ERROR"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.status, tc.err.StatusCode(), tc.err.Error())
		require.Equal(t, tc.code, tc.err.ErrorCode(), tc.err.Error())
	}
}

func TestErrorStrings(t *testing.T) {
	require.Equal(t, "Database error: boom", NewDatabase("boom").Error())
	require.Equal(t, "Validation error: bad input", NewValidation("bad input").Error())
	require.Equal(t, "Authentication error: no token", NewAuthentication("no token").Error())
	require.Equal(t, "Authorization error: not yours", NewAuthorization("not yours").Error())
	require.Equal(t, "Resource not found: user with id 123", NewNotFound("user", "123").Error())
	require.Equal(t, "Conflict: already exists", NewConflict("already exists").Error())
	require.Equal(t, "Rate limit exceeded: slow down", NewRateLimit("slow down").Error())
	require.Equal(t, "External service error: matchmaker - down", NewExternalService("matchmaker", "down").Error())
	require.Equal(t, "Internal server error: boom", NewInternal("boom").Error())
	require.Equal(t, "Bad request: nope", NewBadRequest("nope").Error())
	require.Equal(t, "JSON parsing error: unexpected EOF", NewJSONParsing("unexpected EOF").Error())
	require.Equal(t, "Tournament error: registration closed", NewTournament("registration closed").Error())
	require.Equal(t, "User error: banned", NewUser("banned").Error())
}

func TestDetails(t *testing.T) {
	require.Nil(t, NewValidation("bad").Details())
	require.Equal(t, map[string]any{"field": "name"}, NewValidationWithField("bad", "name").Details())

	require.Equal(t,
		map[string]any{"resource": "tournament", "id": "123"},
		NewNotFound("tournament", "123").Details())

	require.Equal(t, map[string]any{"service": "matchmaker"}, NewExternalService("matchmaker", "down").Details())

	require.Nil(t, NewTournament("full").Details())
	require.Equal(t, map[string]any{"tournament_id": "t1"}, NewTournamentWithID("full", "t1").Details())

	require.Nil(t, NewUser("banned").Details())
	require.Equal(t, map[string]any{"user_id": "u1"}, NewUserWithID("banned", "u1").Details())

	require.Nil(t, NewDatabase("boom").Details())
	require.Nil(t, NewInternal("boom").Details())
	require.Nil(t, NewConflict("dup").Details())
}

// Exactly database, internal, and external-service errors log at error
// severity; everything else is a client fault.
func TestShouldLogAsError(t *testing.T) {
	for _, e := range []*Error{
		NewDatabase("x"), NewInternal("x"), NewExternalService("svc", "x"),
	} {
		require.True(t, e.ShouldLogAsError(), e.Error())
	}
	for _, e := range []*Error{
		NewValidation("x"), NewAuthentication("x"), NewAuthorization("x"),
		NewNotFound("r", "1"), NewConflict("x"), NewRateLimit("x"),
		NewBadRequest("x"), NewJSONParsing("x"), NewTournament("x"), NewUser("x"),
	} {
		require.False(t, e.ShouldLogAsError(), e.Error())
	}
}
