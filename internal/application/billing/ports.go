package billing

import (
	"context"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// FacturaPDFGenerator renderiza una factura como PDF.
type FacturaPDFGenerator interface {
	GenerarFacturaPDF(
		ctx context.Context,
		factura *entity.Factura,
		cliente *entity.Cliente,
		reserva *entity.Reserva,
		departamento *entity.Departamento,
	) ([]byte, error)
}

// IntencionPago intención de cobro creada en la pasarela.
type IntencionPago struct {
	ID           string
	ClientSecret string
	Monto        decimal.Decimal
	Moneda       string
	Estado       string // requires_payment_method, processing, succeeded, ...
}

// EventoPago notificación firmada que llega por webhook.
type EventoPago struct {
	Tipo            string // payment_intent.succeeded, payment_intent.payment_failed, ...
	PaymentIntentID string
	FacturaID       string // metadata factura_id de la intención
	Monto           decimal.Decimal
}

// PasarelaPagos puerto hacia el procesador de tarjetas.
type PasarelaPagos interface {
	// CrearIntencion crea una intención de pago por el monto dado, con la
	// factura como metadata para conciliar el webhook.
	CrearIntencion(ctx context.Context, monto decimal.Decimal, moneda, facturaID string) (*IntencionPago, error)
	ObtenerIntencion(ctx context.Context, id string) (*IntencionPago, error)
	// VerificarWebhook valida la firma del payload y decodifica el evento.
	VerificarWebhook(payload []byte, firma string) (*EventoPago, error)
}
