package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/application/usecase"
)

// ClienteHandler gestión de huéspedes facturables (solo admin).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create registra un huésped (reserva hecha en recepción, sin cuenta web).
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("cliente creado", out))
}

// GetByID obtiene un cliente por ID.
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List devuelve clientes paginados.
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKLista(out, len(out)))
}

// Update actualiza los datos de contacto del cliente.
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("cliente actualizado", out))
}

// Delete elimina el cliente si no tiene reservas registradas.
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("cliente eliminado", nil))
}
