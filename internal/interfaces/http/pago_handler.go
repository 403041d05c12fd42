package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/billing"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
)

// PagoHandler cobros con tarjeta vía la pasarela.
type PagoHandler struct {
	uc *billing.PagoUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *billing.PagoUseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// CrearIntencion crea una intención de pago por el saldo pendiente de la factura.
func (h *PagoHandler) CrearIntencion(c *fiber.Ctx) error {
	var in dto.CrearIntencionRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.FacturaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("facturaId es requerido"))
	}
	out, err := h.uc.CrearIntencion(c.UserContext(), in.FacturaID)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Confirmar verifica la intención contra la pasarela y registra el pago.
func (h *PagoHandler) Confirmar(c *fiber.Ctx) error {
	var in dto.ConfirmarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.PaymentIntentID == "" || in.FacturaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("paymentIntentId y facturaId son requeridos"))
	}
	out, err := h.uc.Confirmar(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("pago confirmado", out))
}

// Webhook recibe notificaciones firmadas de la pasarela. Usa el body crudo
// porque la verificación de firma es sobre los bytes exactos.
func (h *PagoHandler) Webhook(c *fiber.Ctx) error {
	firma := c.Get("Stripe-Signature")
	if err := h.uc.Webhook(c.UserContext(), c.Body(), firma); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(nil))
}
