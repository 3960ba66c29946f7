package health

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/liga-muertos/liga-backend/pkg/config"
	"github.com/liga-muertos/liga-backend/pkg/database"
)

// ===== DTOs =====

type Status struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Get godoc
// @Summary      Health check
// @Description  Reports service status; a broken database degrades the report but never fails it
// @Tags         health
// @Produce      json
// @Success      200  {object}  Status
// @Router       /health [get]
func (h *Handler) Get(c *fiber.Ctx) error {
	dbStatus := "Connected"
	if err := database.Ping(h.db); err != nil {
		log.Warn("Health check database ping failed", "err", err)
		dbStatus = "Disconnected"
	}

	return c.JSON(Status{
		Name:     config.AppName,
		Status:   "OK",
		Version:  config.AppVersion,
		Database: dbStatus,
	})
}
