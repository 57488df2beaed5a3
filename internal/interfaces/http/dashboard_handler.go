package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del panel principal.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	now func() time.Time
}

// NewDashboardHandler construye el handler. now nil = time.Now.
func NewDashboardHandler(uc *analytics.DashboardUseCase, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{uc: uc, now: now}
}

// GetSummary GET /api/dashboard?month=&year=
// @Summary      Resumen del periodo
// @Description  Sin parámetros usa el mes en curso.
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        month  query     int  false  "Mes (1-12)"
// @Param        year   query     int  false  "Año"
// @Success      200    {object}  dto.DashboardResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	today := h.now()
	month := c.QueryInt("month", int(today.Month()))
	year := c.QueryInt("year", today.Year())
	out, err := h.uc.GetSummary(c.Context(), month, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
