package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/billing"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

// FacturaHandler facturación: emisión, daños, pagos manuales y PDF.
type FacturaHandler struct {
	uc    *billing.FacturaUseCase
	pdfUC *billing.PDFUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *billing.FacturaUseCase, pdfUC *billing.PDFUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc, pdfUC: pdfUC}
}

// Create emite la factura de una reserva (solo admin; normalmente la emite el check-out).
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.ReservaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("reservaId es requerido"))
	}
	out, err := h.uc.CrearDesdeReserva(in.ReservaID)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("factura emitida", out))
}

// GetByID obtiene una factura; un cliente solo puede ver las propias.
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetUserID(c), GetRol(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List devuelve facturas; para rol cliente se fuerza el filtro al propio cliente.
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	filtro := repository.FiltroFacturas{
		ClienteID:  c.Query("clienteId"),
		EstadoPago: c.Query("estadoPago"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	out, err := h.uc.List(GetUserID(c), GetRol(c), filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKLista(out, len(out)))
}

// AgregarDanos agrega cargos por daños y recalcula los totales (staff).
func (h *FacturaHandler) AgregarDanos(c *fiber.Ctx) error {
	var in dto.AgregarDanosRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.AgregarDanos(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("daños agregados", out))
}

// RegistrarPago registra un abono manual (efectivo, tarjeta, transferencia).
func (h *FacturaHandler) RegistrarPago(c *fiber.Ctx) error {
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.RegistrarPago(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("pago registrado", out))
}

// Anular anula la factura; su estado queda congelado (solo admin).
func (h *FacturaHandler) Anular(c *fiber.Ctx) error {
	var in dto.AnularFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Anular(c.Params("id"), in.Motivo)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("factura anulada", out))
}

// DescargarPDF devuelve la factura en PDF como attachment.
func (h *FacturaHandler) DescargarPDF(c *fiber.Ctx) error {
	contenido, nombre, err := h.pdfUC.DescargarFacturaPDF(
		c.UserContext(), c.Params("id"), GetUserID(c), GetRol(c))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(contenido)
}
