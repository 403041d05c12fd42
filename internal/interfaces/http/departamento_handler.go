package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/application/usecase"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

// DepartamentoHandler catálogo de departamentos y sus imágenes.
type DepartamentoHandler struct {
	uc *usecase.DepartamentoUseCase
}

// NewDepartamentoHandler construye el handler.
func NewDepartamentoHandler(uc *usecase.DepartamentoUseCase) *DepartamentoHandler {
	return &DepartamentoHandler{uc: uc}
}

// Create registra un departamento nuevo (solo admin).
func (h *DepartamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearDepartamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("departamento creado", out))
}

// GetByID obtiene un departamento por ID.
func (h *DepartamentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List devuelve departamentos filtrables por tipo y estado.
func (h *DepartamentoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	filtro := repository.FiltroDepartamentos{
		Tipo:   c.Query("tipo"),
		Estado: c.Query("estado"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	out, err := h.uc.List(filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKLista(out, len(out)))
}

// Update actualiza precio, estado y demás campos editables (solo admin).
func (h *DepartamentoHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarDepartamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("departamento actualizado", out))
}

// Delete elimina el departamento si no está ocupado ni reservado (solo admin).
func (h *DepartamentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.UserContext(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("departamento eliminado", nil))
}

// SubirImagen recibe un multipart con el campo "imagen" y lo sube al bucket.
func (h *DepartamentoHandler) SubirImagen(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("se requiere el archivo en el campo 'imagen'"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("no se pudo abrir el archivo"))
	}
	defer file.Close()
	contenido, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("no se pudo leer el archivo"))
	}

	out, err := h.uc.SubirImagen(
		c.UserContext(),
		c.Params("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		contenido,
		c.FormValue("descripcion"),
	)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("imagen subida", out))
}

// EliminarImagen borra la imagen identificada por la clave (query param "clave").
func (h *DepartamentoHandler) EliminarImagen(c *fiber.Ctx) error {
	clave := c.Query("clave")
	if clave == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("clave de imagen requerida"))
	}
	out, err := h.uc.EliminarImagen(c.UserContext(), c.Params("id"), clave)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("imagen eliminada", out))
}
