package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/analytics"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
)

// ReporteHandler reportes por rango de fechas (solo admin).
// Query params: desde y hasta en formato YYYY-MM-DD; por defecto últimos 30 días.
type ReporteHandler struct {
	uc *analytics.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *analytics.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Reservas reporte de reservas del rango: listado, estados, ingresos y promedio.
func (h *ReporteHandler) Reservas(c *fiber.Ctx) error {
	out, err := h.uc.ReporteReservas(c.UserContext(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Financiero reporte de facturación del rango.
func (h *ReporteHandler) Financiero(c *fiber.Ctx) error {
	out, err := h.uc.ReporteFinanciero(c.UserContext(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Ocupacion noches vendidas e ingresos por departamento en el rango.
func (h *ReporteHandler) Ocupacion(c *fiber.Ctx) error {
	out, err := h.uc.ReporteOcupacion(c.UserContext(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKLista(out, len(out)))
}
