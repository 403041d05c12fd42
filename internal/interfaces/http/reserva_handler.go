package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/booking"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

// ReservaHandler ciclo de vida de las reservas.
type ReservaHandler struct {
	uc *booking.ReservaUseCase
}

// NewReservaHandler construye el handler.
func NewReservaHandler(uc *booking.ReservaUseCase) *ReservaHandler {
	return &ReservaHandler{uc: uc}
}

// Create crea una reserva confirmada con su desglose de precios.
func (h *ReservaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Crear(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("reserva creada", out))
}

// GetByID obtiene una reserva; un cliente solo puede ver las suyas.
func (h *ReservaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetUserID(c), GetRol(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List devuelve reservas; para rol cliente se fuerza el filtro a las propias.
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	filtro := repository.FiltroReservas{
		UsuarioID:      c.Query("usuarioId"),
		DepartamentoID: c.Query("departamentoId"),
		Estado:         c.Query("estado"),
		Limit:          page.Limit,
		Offset:         page.Offset,
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
		filtro.Hasta = t
	}
	out, err := h.uc.List(GetUserID(c), GetRol(c), filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKLista(out, len(out)))
}

// Update modifica huéspedes, observaciones o solicitudes de una reserva activa.
func (h *ReservaHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Actualizar(c.Params("id"), GetUserID(c), GetRol(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("reserva actualizada", out))
}

// CheckIn marca la llegada del huésped y ocupa el departamento (staff).
func (h *ReservaHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckIn(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("check-in realizado", out))
}

// CheckOut completa la estadía, libera el departamento y emite la factura (staff).
func (h *ReservaHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("check-out realizado", out))
}

// Cancelar cancela una reserva activa y libera el departamento.
// Los clientes cancelan solo las propias.
func (h *ReservaHandler) Cancelar(c *fiber.Ctx) error {
	out, err := h.uc.Cancelar(c.UserContext(), c.Params("id"), GetUserID(c), GetRol(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("reserva cancelada", out))
}

// Delete elimina una reserva no activa (solo admin).
func (h *ReservaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("reserva eliminada", nil))
}

// Disponibles lista los departamentos libres para un rango de fechas.
func (h *ReservaHandler) Disponibles(c *fiber.Ctx) error {
	// No se filtra por estado: un departamento "reservado" puede estar libre
	// en otras fechas; el predicado de disponibilidad decide.
	filtro := repository.FiltroDepartamentos{Tipo: c.Query("tipo")}
	deps, err := h.uc.Disponibles(c.Query("fechaInicio"), c.Query("fechaFin"), filtro)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.DepartamentoResponse, 0, len(deps))
	for _, d := range deps {
		out = append(out, dto.DepartamentoResponse{
			ID:                d.ID,
			Numero:            d.Numero,
			Tipo:              d.Tipo,
			Descripcion:       d.Descripcion,
			Piso:              d.Piso,
			PrecioNoche:       d.PrecioNoche,
			CapacidadPersonas: d.CapacidadPersonas,
			NumeroCamas:       d.NumeroCamas,
			Imagenes:          d.Imagenes,
			Estado:            d.Estado,
		})
	}
	return c.JSON(dto.OKLista(out, len(out)))
}
