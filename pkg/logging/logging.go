package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Init configures the process-wide logger. The default level is info;
// LOG_LEVEL overrides it and invalid values fall back with a warning.
func Init() {
	log.SetReportTimestamp(true)

	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		log.Warn("Invalid LOG_LEVEL, using default", "value", raw)
		return
	}
	log.SetLevel(level)
}

/* =========================== Lifecycle events =========================== */

// StartupInfo logs application startup details.
func StartupInfo(port int) {
	log.Info("Starting La Liga de los Muertos backend")
	log.Info("Server binding", "addr", fmt.Sprintf("0.0.0.0:%d", port))
	log.Debug("Debug logging enabled")
}

// DatabaseInfo logs a successful datastore connection.
func DatabaseInfo(host string) {
	log.Info("Connected to database", "host", host)
}

// SchemaInit logs the start of schema migration.
func SchemaInit() {
	log.Info("Initializing database schema")
}

// SchemaSuccess logs a completed schema migration.
func SchemaSuccess() {
	log.Info("Database schema initialized")
}

// DatabaseError logs a raw datastore failure.
func DatabaseError(err error) {
	log.Error("Database error", "err", err)
}

// ServerReady logs that the server is accepting connections.
func ServerReady(port int) {
	log.Info("Server ready", "port", port)
	log.Info("Health check available", "path", fmt.Sprintf("http://localhost:%d/v1/health", port))
}

// Shutdown logs the start of a graceful shutdown.
func Shutdown() {
	log.Info("Shutting down La Liga de los Muertos backend")
}

/* ============================ Runtime events ============================ */

// APIError records a rendered API error caused by a server-side fault.
func APIError(message string) {
	log.Error("API Error", "err", message)
}

// APIWarning records a rendered API error caused by the client.
func APIWarning(message string) {
	log.Warn("API Warning", "err", message)
}

// RequestDebug traces an incoming request at debug level.
func RequestDebug(method, path, userAgent string) {
	if userAgent != "" {
		log.Debug("Request", "method", method, "path", path, "user_agent", userAgent)
		return
	}
	log.Debug("Request", "method", method, "path", path)
}

// PerformanceMetric records how long an operation took. Anything above
// one second is flagged as slow.
func PerformanceMetric(operation string, elapsed time.Duration) {
	if elapsed > time.Second {
		log.Warn("Slow operation", "op", operation, "elapsed", elapsed)
		return
	}
	log.Debug("Operation timing", "op", operation, "elapsed", elapsed)
}

// AuthEvent records an authentication event. userID may be empty.
func AuthEvent(event, userID string) {
	if userID != "" {
		log.Info("Auth event", "event", event, "user", userID)
		return
	}
	log.Info("Auth event", "event", event)
}

// TournamentEvent records a tournament lifecycle event. userID may be
// empty.
func TournamentEvent(event, tournamentID, userID string) {
	if userID != "" {
		log.Info("Tournament event", "event", event, "tournament", tournamentID, "user", userID)
		return
	}
	log.Info("Tournament event", "event", event, "tournament", tournamentID)
}
