package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/application/usecase"
	"github.com/paraisoverde/hotel-api/internal/domain"
)

// UsuarioHandler administración de cuentas (solo admin).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Create crea una cuenta con rol arbitrario.
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("usuario creado", out))
}

// GetByID obtiene un usuario por ID.
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List devuelve usuarios paginados.
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
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

// Update actualiza datos, rol o estado activo.
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("usuario actualizado", out))
}

// Delete elimina la cuenta. Un admin no puede eliminarse a sí mismo.
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == GetUserID(c) {
		return responderError(c, domain.ErrConflict)
	}
	if err := h.uc.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("usuario eliminado", nil))
}
