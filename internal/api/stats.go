package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmatic/internal/service"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard --> GET /admin/stats
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "stats": stats})
}

// Pie --> GET /admin/pie
func (h *StatsHandler) Pie(c echo.Context) error {
	charts, err := h.stats.Pie(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "charts": charts})
}

// Bar --> GET /admin/bar
func (h *StatsHandler) Bar(c echo.Context) error {
	charts, err := h.stats.Bar(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "charts": charts})
}

// Line --> GET /admin/line
func (h *StatsHandler) Line(c echo.Context) error {
	charts, err := h.stats.Line(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "charts": charts})
}
