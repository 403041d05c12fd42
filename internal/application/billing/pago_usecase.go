package billing

import (
	"context"

	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/paraisoverde/hotel-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// PagoUseCase cobra facturas a través de la pasarela de tarjetas: crea la
// intención por el saldo pendiente y concilia el resultado por confirmación
// directa o por webhook.
type PagoUseCase struct {
	facturaRepo repository.FacturaRepository
	facturaUC   *FacturaUseCase
	pasarela    PasarelaPagos
	moneda      string
	log         *logger.Logger
}

// NewPagoUseCase construye el caso de uso.
func NewPagoUseCase(
	facturaRepo repository.FacturaRepository,
	facturaUC *FacturaUseCase,
	pasarela PasarelaPagos,
	moneda string,
	log *logger.Logger,
) *PagoUseCase {
	if moneda == "" {
		moneda = "usd"
	}
	return &PagoUseCase{
		facturaRepo: facturaRepo,
		facturaUC:   facturaUC,
		pasarela:    pasarela,
		moneda:      moneda,
		log:         log,
	}
}

// CrearIntencion crea en la pasarela una intención de pago por el saldo
// pendiente de la factura y devuelve el client secret para el frontend.
func (uc *PagoUseCase) CrearIntencion(ctx context.Context, facturaID string) (*dto.IntencionPagoResponse, error) {
	if facturaID == "" {
		return nil, domain.ErrInvalidInput
	}
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	if factura.EstadoPago == entity.PagoAnulada {
		return nil, domain.ErrFacturaAnulada
	}
	saldo := factura.SaldoPendiente().Round(2)
	if !saldo.GreaterThan(decimal.Zero) {
		return nil, domain.ErrSinSaldoPendiente
	}
	intencion, err := uc.pasarela.CrearIntencion(ctx, saldo, uc.moneda, factura.ID)
	if err != nil {
		return nil, err
	}
	return &dto.IntencionPagoResponse{
		ClientSecret:    intencion.ClientSecret,
		PaymentIntentID: intencion.ID,
		Monto:           saldo,
		Factura: &dto.FacturaResumen{
			ID:            factura.ID,
			NumeroFactura: factura.NumeroFactura,
			Total:         factura.Total.Round(2),
			EstadoPago:    factura.EstadoPago,
		},
	}, nil
}

// Confirmar consulta la intención en la pasarela y, si el cobro fue exitoso,
// registra el abono sobre la factura. Repetir la confirmación no duplica el pago.
func (uc *PagoUseCase) Confirmar(ctx context.Context, in dto.ConfirmarPagoRequest) (*dto.FacturaResponse, error) {
	if in.PaymentIntentID == "" || in.FacturaID == "" {
		return nil, domain.ErrInvalidInput
	}
	intencion, err := uc.pasarela.ObtenerIntencion(ctx, in.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if intencion.Estado != "succeeded" {
		return nil, domain.ErrConflict
	}
	return uc.facturaUC.AplicarPagoPasarela(in.FacturaID, intencion.ID, intencion.Monto)
}

// Webhook procesa la notificación firmada de la pasarela. Solo los eventos
// payment_intent.succeeded mutan la factura; el resto se registra y descarta.
func (uc *PagoUseCase) Webhook(ctx context.Context, payload []byte, firma string) error {
	evento, err := uc.pasarela.VerificarWebhook(payload, firma)
	if err != nil {
		return domain.ErrUnauthorized
	}
	if evento.Tipo != "payment_intent.succeeded" {
		uc.log.Debug().
			Str("tipo", evento.Tipo).
			Str("payment_intent", evento.PaymentIntentID).
			Msg("evento de pasarela ignorado")
		return nil
	}
	if evento.FacturaID == "" {
		uc.log.Warn().
			Str("payment_intent", evento.PaymentIntentID).
			Msg("intención de pago sin factura en metadata")
		return nil
	}
	if _, err := uc.facturaUC.AplicarPagoPasarela(evento.FacturaID, evento.PaymentIntentID, evento.Monto); err != nil {
		return err
	}
	uc.log.Info().
		Str("factura_id", evento.FacturaID).
		Str("payment_intent", evento.PaymentIntentID).
		Msg("pago de pasarela conciliado")
	return nil
}
