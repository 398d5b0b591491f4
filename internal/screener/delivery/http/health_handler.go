package http

import (
	"net/http"

	"idx-scalping-sniper/internal/screener/dto"
	pkgconfig "idx-scalping-sniper/pkg/config"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	app pkgconfig.App
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(app pkgconfig.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// RegisterRoutes registers the health route to the Echo group.
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.GetHealth)
}

// GetHealth godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Name: h.app.Name, Version: h.app.Version})
}
