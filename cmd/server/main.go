// @title           La Liga de los Muertos API
// @version         0.1
// @description     Tournament management backend: users register, organizers publish tournaments, players join them.
// @BasePath        /v1
// @schemes         http
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/liga-muertos/liga-backend/internal/health"
	"github.com/liga-muertos/liga-backend/internal/participants"
	"github.com/liga-muertos/liga-backend/internal/tournaments"
	"github.com/liga-muertos/liga-backend/internal/users"
	"github.com/liga-muertos/liga-backend/pkg/apierror"
	"github.com/liga-muertos/liga-backend/pkg/config"
	"github.com/liga-muertos/liga-backend/pkg/database"
	"github.com/liga-muertos/liga-backend/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	logging.Init()
	logging.StartupInfo(cfg.Port)

	db := database.Init(cfg)
	if err := database.InitSchema(db); err != nil {
		log.Fatal("Schema initialization failed", "err", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: apierror.ErrorHandler,
		BodyLimit:    config.MaxRequestSize,
		ReadTimeout:  config.RequestTimeout,
	})

	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		logging.RequestDebug(c.Method(), c.Path(), string(c.Request().Header.UserAgent()))
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return apierror.NewRateLimit("Too many requests")
		},
	}))

	v1 := app.Group("/v1")

	// Health
	healthH := health.NewHandler(db)
	v1.Get("/health", healthH.Get)

	// Users
	userH := users.NewHandler(db)
	v1.Post("/users", userH.Create)
	v1.Get("/users/:id", userH.Get)
	v1.Patch("/users/:id", userH.Update)

	// Tournaments
	tournamentH := tournaments.NewHandler(db)
	v1.Post("/tournaments", tournamentH.Create)
	v1.Get("/tournaments", tournamentH.List)
	v1.Get("/tournaments/:id", tournamentH.Get)
	v1.Patch("/tournaments/:id", tournamentH.Update)
	v1.Delete("/tournaments/:id", tournamentH.Delete)

	// Participants
	participantH := participants.NewHandler(db)
	v1.Post("/tournaments/:id/participants", participantH.Join)
	v1.Get("/tournaments/:id/participants", participantH.List)
	v1.Delete("/participants/:id", participantH.Leave)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logging.Shutdown()
		if err := app.Shutdown(); err != nil {
			log.Error("Shutdown error", "err", err)
		}
	}()

	logging.ServerReady(cfg.Port)
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal("Server stopped", "err", err)
	}
}
