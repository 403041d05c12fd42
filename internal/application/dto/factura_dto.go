package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearFacturaRequest body para POST /api/facturas.
type CrearFacturaRequest struct {
	ReservaID string `json:"reservaId"`
}

// AnularFacturaRequest body para POST /api/facturas/{id}/anular.
type AnularFacturaRequest struct {
	Motivo string `json:"motivo"`
}

// DanoRequest un cargo por daños.
type DanoRequest struct {
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
}

// AgregarDanosRequest body para PUT /api/facturas/:id/danos.
type AgregarDanosRequest struct {
	Danos []DanoRequest `json:"danos"`
}

// RegistrarPagoRequest body para PUT /api/facturas/:id/pago.
type RegistrarPagoRequest struct {
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia string          `json:"referencia,omitempty"`
}

// DanoResponse cargo por daños en respuestas.
type DanoResponse struct {
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
}

// PagoResponse abono en respuestas.
type PagoResponse struct {
	Fecha      time.Time       `json:"fecha"`
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia string          `json:"referencia,omitempty"`
}

// FacturaResponse factura completa (montos redondeados a 2 decimales).
type FacturaResponse struct {
	ID                 string          `json:"id"`
	NumeroFactura      string          `json:"numeroFactura"`
	ReservaID          string          `json:"reservaId"`
	ClienteID          string          `json:"clienteId"`
	FechaEmision       time.Time       `json:"fechaEmision"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DescuentoFrecuente decimal.Decimal `json:"descuentoClienteFrecuente"`
	OtrosDescuentos    decimal.Decimal `json:"otrosDescuentos"`
	IVA                decimal.Decimal `json:"iva"`
	RecargoFeriado     decimal.Decimal `json:"recargoFeriado"`
	OtrosRecargos      decimal.Decimal `json:"otrosRecargos"`
	Danos              []DanoResponse  `json:"danos,omitempty"`
	TotalDanos         decimal.Decimal `json:"totalDanos"`
	Total              decimal.Decimal `json:"total"`
	EstadoPago         string          `json:"estadoPago"`
	MetodoPago         string          `json:"metodoPago,omitempty"`
	Pagos              []PagoResponse  `json:"pagos,omitempty"`
	SaldoPendiente     decimal.Decimal `json:"saldoPendiente"`
}
