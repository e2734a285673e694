package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cofoundr/config"
	"cofoundr/internal/delivery/http/response"
)

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config, db *gorm.DB) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db}
}

// Root announces the service.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": h.cfg.Env.ServiceName,
		"status":  "running",
	}, "")
}

// Check pings the database so the health endpoint reflects the one dependency
// the service cannot run without.
func (h *HealthHandler) Check(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unavailable", "")
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unavailable", "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"}, "")
}
