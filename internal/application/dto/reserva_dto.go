package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// CrearReservaRequest body para POST /api/reservas.
// Exactamente una fuente de cliente: ClienteID existente, ClienteNuevo para
// crearlo al vuelo, o ninguno para usar el cliente asociado al usuario logueado.
type CrearReservaRequest struct {
	ClienteID             string               `json:"clienteId,omitempty"`
	ClienteNuevo          *CrearClienteRequest `json:"clienteNuevo,omitempty"`
	DepartamentoID        string               `json:"departamentoId"`
	FechaInicio           string               `json:"fechaInicio"` // formato 2006-01-02
	FechaFin              string               `json:"fechaFin"`
	NumeroHuespedes       int                  `json:"numeroHuespedes"`
	EsFeriado             bool                 `json:"esFeriado"`
	SolicitudesEspeciales string               `json:"solicitudesEspeciales,omitempty"`
}

// ActualizarReservaRequest body para PUT /api/reservas/:id (solo campos editables).
type ActualizarReservaRequest struct {
	NumeroHuespedes       *int    `json:"numeroHuespedes,omitempty"`
	Observaciones         *string `json:"observaciones,omitempty"`
	SolicitudesEspeciales *string `json:"solicitudesEspeciales,omitempty"`
}

// RegistroCheckResponse sub-registro de check-in/check-out en respuestas.
type RegistroCheckResponse struct {
	Realizado    bool       `json:"realizado"`
	Fecha        *time.Time `json:"fecha,omitempty"`
	RealizadoPor string     `json:"realizadoPor,omitempty"`
}

// ReservaResponse reserva con su desglose de precios (montos redondeados a 2 decimales).
type ReservaResponse struct {
	ID                    string                `json:"id"`
	CodigoReserva         string                `json:"codigoReserva"`
	UsuarioID             string                `json:"usuarioId"`
	ClienteID             string                `json:"clienteId"`
	DepartamentoID        string                `json:"departamentoId"`
	FechaInicio           time.Time             `json:"fechaInicio"`
	FechaFin              time.Time             `json:"fechaFin"`
	NumeroNoches          int                   `json:"numeroNoches"`
	NumeroHuespedes       int                   `json:"numeroHuespedes"`
	PrecioNoche           decimal.Decimal       `json:"precioNoche"`
	Subtotal              decimal.Decimal       `json:"subtotal"`
	Descuento             decimal.Decimal       `json:"descuentoClienteFrecuente"`
	EsFeriado             bool                  `json:"esFeriado"`
	IVA                   decimal.Decimal       `json:"iva"`
	RecargoFeriado        decimal.Decimal       `json:"recargoFeriado"`
	Total                 decimal.Decimal       `json:"total"`
	Estado                string                `json:"estado"`
	CheckIn               RegistroCheckResponse `json:"checkIn"`
	CheckOut              RegistroCheckResponse `json:"checkOut"`
	Observaciones         string                `json:"observaciones,omitempty"`
	SolicitudesEspeciales string                `json:"solicitudesEspeciales,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
}

// FacturaResumen referencia corta a la factura generada junto a la reserva.
type FacturaResumen struct {
	ID            string          `json:"id"`
	NumeroFactura string          `json:"numeroFactura"`
	Total         decimal.Decimal `json:"total"`
	EstadoPago    string          `json:"estadoPago"`
}

// ReservaCreadaResponse reserva recién creada más su factura (si se generó).
type ReservaCreadaResponse struct {
	Reserva *ReservaResponse `json:"reserva"`
	Factura *FacturaResumen  `json:"factura,omitempty"`
}

// NewReservaResponse mapea la entidad a su representación de API.
func NewReservaResponse(r *entity.Reserva) *ReservaResponse {
	if r == nil {
		return nil
	}
	return &ReservaResponse{
		ID:                    r.ID,
		CodigoReserva:         r.CodigoReserva,
		UsuarioID:             r.UsuarioID,
		ClienteID:             r.ClienteID,
		DepartamentoID:        r.DepartamentoID,
		FechaInicio:           r.FechaInicio,
		FechaFin:              r.FechaFin,
		NumeroNoches:          r.NumeroNoches,
		NumeroHuespedes:       r.NumeroHuespedes,
		PrecioNoche:           r.PrecioNoche,
		Subtotal:              r.Subtotal,
		Descuento:             r.Descuento,
		EsFeriado:             r.EsFeriado,
		IVA:                   r.IVA,
		RecargoFeriado:        r.RecargoFeriado,
		Total:                 r.Total,
		Estado:                r.Estado,
		CheckIn:               newRegistroCheck(r.CheckIn),
		CheckOut:              newRegistroCheck(r.CheckOut),
		Observaciones:         r.Observaciones,
		SolicitudesEspeciales: r.SolicitudesEspeciales,
		CreatedAt:             r.CreatedAt,
	}
}

func newRegistroCheck(rc entity.RegistroCheck) RegistroCheckResponse {
	out := RegistroCheckResponse{Realizado: rc.Realizado, RealizadoPor: rc.RealizadoPor}
	if rc.Realizado {
		fecha := rc.Fecha
		out.Fecha = &fecha
	}
	return out
}
