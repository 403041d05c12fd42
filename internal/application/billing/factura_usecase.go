package billing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// FacturaUseCase agrega y cobra facturas: creación desde una reserva, cargos
// por daños y registro de abonos. El estado de pago nunca se fija a mano,
// se deriva del saldo en cada mutación.
type FacturaUseCase struct {
	facturaRepo repository.FacturaRepository
	reservaRepo repository.ReservaRepository
	clienteRepo repository.ClienteRepository
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	facturaRepo repository.FacturaRepository,
	reservaRepo repository.ReservaRepository,
	clienteRepo repository.ClienteRepository,
) *FacturaUseCase {
	return &FacturaUseCase{
		facturaRepo: facturaRepo,
		reservaRepo: reservaRepo,
		clienteRepo: clienteRepo,
	}
}

// CrearDesdeReserva emite la factura de una reserva copiando su desglose de
// precios. Devuelve ErrFacturaExiste si la reserva ya fue facturada (chequeo
// previo más constraint único sobre reserva_id como respaldo) y ErrConflict
// si la reserva está cancelada.
func (uc *FacturaUseCase) CrearDesdeReserva(reservaID string) (*dto.FacturaResponse, error) {
	if reservaID == "" {
		return nil, domain.ErrInvalidInput
	}
	reserva, err := uc.reservaRepo.GetByID(reservaID)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, domain.ErrNotFound
	}
	if reserva.Estado == entity.ReservaCancelada {
		return nil, domain.ErrConflict
	}
	existente, err := uc.facturaRepo.GetByReserva(reservaID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrFacturaExiste
	}

	now := time.Now()
	factura := &entity.Factura{
		ID:                 uuid.New().String(),
		NumeroFactura:      nuevoNumeroFactura(),
		ReservaID:          reserva.ID,
		ClienteID:          reserva.ClienteID,
		FechaEmision:       now,
		Subtotal:           reserva.Subtotal,
		DescuentoFrecuente: reserva.Descuento,
		IVA:                reserva.IVA,
		RecargoFeriado:     reserva.RecargoFeriado,
		EstadoPago:         entity.PagoPendiente,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	factura.RecalcularTotales()

	if err := uc.facturaRepo.Create(factura); err != nil {
		// Carrera perdida contra otra petición: la factura ya existe.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrFacturaExiste
		}
		return nil, err
	}
	return toFacturaResponse(factura), nil
}

// GetByID devuelve una factura. Los clientes solo ven las propias.
func (uc *FacturaUseCase) GetByID(facturaID, solicitanteID, rol string) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	if rol != entity.RolAdmin {
		cliente, err := uc.clienteRepo.GetByUsuario(solicitanteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil || cliente.ID != factura.ClienteID {
			return nil, domain.ErrForbidden
		}
	}
	return toFacturaResponse(factura), nil
}

// List devuelve facturas filtradas. Para rol cliente el filtro se fuerza al
// cliente asociado al solicitante; sin cliente asociado la lista es vacía.
func (uc *FacturaUseCase) List(solicitanteID, rol string, filtro repository.FiltroFacturas) ([]*dto.FacturaResponse, error) {
	if rol != entity.RolAdmin {
		cliente, err := uc.clienteRepo.GetByUsuario(solicitanteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return []*dto.FacturaResponse{}, nil
		}
		filtro.ClienteID = cliente.ID
	}
	facturas, err := uc.facturaRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, toFacturaResponse(f))
	}
	return out, nil
}

// AgregarDanos suma cargos por daños y recalcula totales y estado de pago.
// Si la factura estaba pagada vuelve a parcial: el saldo nuevo queda cobrable.
func (uc *FacturaUseCase) AgregarDanos(facturaID string, in dto.AgregarDanosRequest) (*dto.FacturaResponse, error) {
	if len(in.Danos) == 0 {
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
	now := time.Now()
	for _, d := range in.Danos {
		if d.Descripcion == "" || !d.Monto.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		factura.Danos = append(factura.Danos, entity.Dano{
			Descripcion: d.Descripcion,
			Monto:       d.Monto,
			Fecha:       now,
		})
	}
	factura.RecalcularTotales()
	factura.ActualizarEstadoPago()
	factura.UpdatedAt = now
	if err := uc.facturaRepo.Update(factura); err != nil {
		return nil, err
	}
	return toFacturaResponse(factura), nil
}

// RegistrarPago registra un abono manual (recepción) contra el saldo pendiente.
func (uc *FacturaUseCase) RegistrarPago(facturaID string, in dto.RegistrarPagoRequest) (*dto.FacturaResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) || in.Metodo == "" {
		return nil, domain.ErrInvalidInput
	}
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.aplicarPago(factura, entity.Pago{
		Fecha:      time.Now(),
		Monto:      in.Monto,
		Metodo:     in.Metodo,
		Referencia: in.Referencia,
	}); err != nil {
		return nil, err
	}
	return toFacturaResponse(factura), nil
}

// AplicarPagoPasarela registra el cobro confirmado por la pasarela, usando la
// intención como referencia. Idempotente: una referencia repetida no duplica el abono.
func (uc *FacturaUseCase) AplicarPagoPasarela(facturaID, paymentIntentID string, monto decimal.Decimal) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	for _, p := range factura.Pagos {
		if p.Referencia == paymentIntentID {
			return toFacturaResponse(factura), nil
		}
	}
	if err := uc.aplicarPago(factura, entity.Pago{
		Fecha:      time.Now(),
		Monto:      monto,
		Metodo:     entity.MetodoTarjeta,
		Referencia: paymentIntentID,
	}); err != nil {
		return nil, err
	}
	return toFacturaResponse(factura), nil
}

func (uc *FacturaUseCase) aplicarPago(factura *entity.Factura, pago entity.Pago) error {
	if factura.EstadoPago == entity.PagoAnulada {
		return domain.ErrFacturaAnulada
	}
	if !factura.SaldoPendiente().GreaterThan(decimal.Zero) {
		return domain.ErrSinSaldoPendiente
	}
	factura.Pagos = append(factura.Pagos, pago)
	switch {
	case factura.MetodoPago == "":
		factura.MetodoPago = pago.Metodo
	case factura.MetodoPago != pago.Metodo:
		factura.MetodoPago = entity.MetodoMixto
	}
	factura.ActualizarEstadoPago()
	factura.UpdatedAt = time.Now()
	return uc.facturaRepo.Update(factura)
}

// Anular marca la factura como anulada; desde ahí no admite más mutaciones.
// Una factura ya pagada por completo no se puede anular.
func (uc *FacturaUseCase) Anular(facturaID, motivo string) (*dto.FacturaResponse, error) {
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
	if factura.EstadoPago == entity.PagoPagada {
		return nil, domain.ErrFacturaPagada
	}
	factura.EstadoPago = entity.PagoAnulada
	if motivo != "" {
		factura.Observaciones = motivo
	}
	factura.UpdatedAt = time.Now()
	if err := uc.facturaRepo.Update(factura); err != nil {
		return nil, err
	}
	return toFacturaResponse(factura), nil
}

func nuevoNumeroFactura() string {
	return "FACT-" + strings.ToUpper(uuid.New().String()[:8])
}

func toFacturaResponse(f *entity.Factura) *dto.FacturaResponse {
	if f == nil {
		return nil
	}
	danos := make([]dto.DanoResponse, 0, len(f.Danos))
	for _, d := range f.Danos {
		danos = append(danos, dto.DanoResponse{Descripcion: d.Descripcion, Monto: d.Monto.Round(2), Fecha: d.Fecha})
	}
	pagos := make([]dto.PagoResponse, 0, len(f.Pagos))
	for _, p := range f.Pagos {
		pagos = append(pagos, dto.PagoResponse{Fecha: p.Fecha, Monto: p.Monto.Round(2), Metodo: p.Metodo, Referencia: p.Referencia})
	}
	return &dto.FacturaResponse{
		ID:                 f.ID,
		NumeroFactura:      f.NumeroFactura,
		ReservaID:          f.ReservaID,
		ClienteID:          f.ClienteID,
		FechaEmision:       f.FechaEmision,
		Subtotal:           f.Subtotal.Round(2),
		DescuentoFrecuente: f.DescuentoFrecuente.Round(2),
		OtrosDescuentos:    f.OtrosDescuentos.Round(2),
		IVA:                f.IVA.Round(2),
		RecargoFeriado:     f.RecargoFeriado.Round(2),
		OtrosRecargos:      f.OtrosRecargos.Round(2),
		Danos:              danos,
		TotalDanos:         f.TotalDanos.Round(2),
		Total:              f.Total.Round(2),
		EstadoPago:         f.EstadoPago,
		MetodoPago:         f.MetodoPago,
		Pagos:              pagos,
		SaldoPendiente:     f.SaldoPendiente().Round(2),
	}
}
