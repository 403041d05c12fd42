// Package payments integra la pasarela de cobros con tarjeta (Stripe).
package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/paraisoverde/hotel-api/internal/application/billing"
	"github.com/paraisoverde/hotel-api/pkg/config"
)

var _ billing.PasarelaPagos = (*StripeClient)(nil)

// StripeClient implementa billing.PasarelaPagos contra la API de Stripe.
// Los montos decimales se convierten a centavos al cruzar la frontera.
type StripeClient struct {
	api           *client.API
	webhookSecret string
}

// NewStripeClient construye el cliente con las credenciales configuradas.
func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeClient{api: api, webhookSecret: cfg.WebhookSecret}
}

// CrearIntencion crea un PaymentIntent por el monto dado, con la factura como
// metadata para conciliar el webhook.
func (s *StripeClient) CrearIntencion(ctx context.Context, monto decimal.Decimal, moneda, facturaID string) (*billing.IntencionPago, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(aCentavos(monto)),
		Currency: stripe.String(moneda),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("factura_id", facturaID)

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("crear payment intent: %w", err)
	}
	return intencionDesdeStripe(pi), nil
}

// ObtenerIntencion consulta el estado actual de un PaymentIntent.
func (s *StripeClient) ObtenerIntencion(ctx context.Context, id string) (*billing.IntencionPago, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("obtener payment intent: %w", err)
	}
	return intencionDesdeStripe(pi), nil
}

// VerificarWebhook valida la firma del payload y decodifica el evento.
func (s *StripeClient) VerificarWebhook(payload []byte, firma string) (*billing.EventoPago, error) {
	event, err := webhook.ConstructEvent(payload, firma, s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verificar firma de webhook: %w", err)
	}

	evento := &billing.EventoPago{Tipo: string(event.Type)}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("decodificar evento %s: %w", event.Type, err)
	}
	evento.PaymentIntentID = pi.ID
	evento.FacturaID = pi.Metadata["factura_id"]
	evento.Monto = desdeCentavos(pi.Amount)
	return evento, nil
}

func intencionDesdeStripe(pi *stripe.PaymentIntent) *billing.IntencionPago {
	return &billing.IntencionPago{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Monto:        desdeCentavos(pi.Amount),
		Moneda:       string(pi.Currency),
		Estado:       string(pi.Status),
	}
}

// aCentavos convierte un monto decimal a la unidad mínima de la moneda.
func aCentavos(monto decimal.Decimal) int64 {
	return monto.Shift(2).Round(0).IntPart()
}

func desdeCentavos(centavos int64) decimal.Decimal {
	return decimal.NewFromInt(centavos).Shift(-2)
}
