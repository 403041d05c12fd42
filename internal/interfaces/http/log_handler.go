package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/audit"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

// LogHandler consulta de la auditoría (solo admin).
type LogHandler struct {
	uc *audit.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *audit.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List devuelve registros de auditoría con filtros opcionales.
func (h *LogHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	filtro := repository.FiltroLogs{
		UsuarioID: c.Query("usuarioId"),
		Accion:    c.Query("accion"),
		Entidad:   c.Query("entidad"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	if desde := c.Query("desde"); desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("desde debe tener formato YYYY-MM-DD"))
		}
		filtro.Desde = t
	}
	if hasta := c.Query("hasta"); hasta != "" {
		t, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("hasta debe tener formato YYYY-MM-DD"))
		}
		filtro.Hasta = t.AddDate(0, 0, 1) // inclusivo hasta el fin del día
	}
	out, err := h.uc.List(filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKLista(out, len(out)))
}
