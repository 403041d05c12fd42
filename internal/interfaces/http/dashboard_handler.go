package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/analytics"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
)

// DashboardHandler estadísticas agregadas para el panel (solo admin).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Estadisticas devuelve contadores globales, ingresos y la serie mensual.
func (h *DashboardHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}
