package database

import (
	"context"
	"errors"
	"net/url"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/liga-muertos/liga-backend/pkg/config"
	"github.com/liga-muertos/liga-backend/pkg/logging"
	"github.com/liga-muertos/liga-backend/pkg/models"
)

// Init opens the Postgres connection and verifies it is reachable.
// The service cannot run without storage, so failures are fatal.
func Init(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logging.DatabaseError(err)
		log.Fatal("failed to connect database", "err", err)
	}

	if err := Ping(db); err != nil {
		logging.DatabaseError(err)
		log.Fatal("database unreachable", "err", err)
	}

	logging.DatabaseInfo(hostOf(cfg.DatabaseURL))
	return db
}

// InitSchema creates or updates the tables backing the API.
func InitSchema(db *gorm.DB) error {
	logging.SchemaInit()

	err := db.AutoMigrate(
		&models.User{},
		&models.Tournament{},
		&models.Participant{},
	)
	if err != nil {
		logging.DatabaseError(err)
		return err
	}

	logging.SchemaSuccess()
	return nil
}

// Ping reports whether the database answers within the connect timeout.
func Ping(db *gorm.DB) error {
	if db == nil {
		return errors.New("no database connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.DBConnectTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// hostOf extracts host:port from a connection URL so logs never carry
// credentials.
func hostOf(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
