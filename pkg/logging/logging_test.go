package logging

import (
	"errors"
	"testing"
	"time"
)

// Log helpers must never panic, whatever the inputs; output itself is
// not asserted here.
func TestLoggingFunctionsDontPanic(t *testing.T) {
	StartupInfo(4000)
	DatabaseInfo("localhost:5432")
	SchemaInit()
	SchemaSuccess()
	DatabaseError(errors.New("Connection failed"))
	ServerReady(4000)
	Shutdown()
	APIError("Internal server error: boom")
	APIWarning("Validation error: name is required")
	RequestDebug("GET", "/v1/health", "test-agent")
	RequestDebug("POST", "/v1/tournaments", "")
	PerformanceMetric("database_query", 150*time.Millisecond)
	PerformanceMetric("slow_operation", 1500*time.Millisecond)
	AuthEvent("login", "user123")
	AuthEvent("logout", "")
	TournamentEvent("created", "tournament123", "user456")
	TournamentEvent("started", "tournament123", "")
}

func TestInitWithInvalidLevelDoesNotPanic(t *testing.T) {
	t.Setenv("LOG_LEVEL", "invalid")
	Init()

	t.Setenv("LOG_LEVEL", "debug")
	Init()
}
