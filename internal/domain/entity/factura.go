package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura.
const (
	PagoPendiente = "pendiente"
	PagoPagada    = "pagada"
	PagoParcial   = "parcial"
	PagoAnulada   = "anulada"
)

// Métodos de pago aceptados.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTarjeta       = "tarjeta"
	MetodoTransferencia = "transferencia"
	MetodoMixto         = "mixto"
)

// Dano cargo por daños agregado a la factura después del check-out.
type Dano struct {
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
}

// Pago abono registrado contra la factura.
type Pago struct {
	Fecha      time.Time       `json:"fecha"`
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia string          `json:"referencia,omitempty"`
}

// Factura es el documento de cobro derivado de una reserva.
// Invariante: a lo más una factura por reserva (constraint único en DB).
type Factura struct {
	ID                 string
	NumeroFactura      string
	ReservaID          string
	ClienteID          string
	FechaEmision       time.Time
	Subtotal           decimal.Decimal
	DescuentoFrecuente decimal.Decimal
	OtrosDescuentos    decimal.Decimal
	IVA                decimal.Decimal
	RecargoFeriado     decimal.Decimal
	OtrosRecargos      decimal.Decimal
	Danos              []Dano
	TotalDanos         decimal.Decimal
	Total              decimal.Decimal
	EstadoPago         string
	MetodoPago         string
	Pagos              []Pago
	Observaciones      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RecalcularTotales recalcula TotalDanos y Total a partir del estado actual:
// Total = Subtotal − descuentos + IVA + recargos + TotalDanos.
// El Subtotal almacenado ya viene neto del descuento frecuente (copiado de la
// reserva), por lo que el descuento no se resta otra vez aquí; solo se restan
// OtrosDescuentos agregados sobre la factura.
func (f *Factura) RecalcularTotales() {
	total := decimal.Zero
	for _, d := range f.Danos {
		total = total.Add(d.Monto)
	}
	f.TotalDanos = total
	f.Total = f.Subtotal.
		Sub(f.OtrosDescuentos).
		Add(f.IVA).
		Add(f.RecargoFeriado).
		Add(f.OtrosRecargos).
		Add(f.TotalDanos)
}

// TotalPagado suma todos los abonos registrados.
func (f *Factura) TotalPagado() decimal.Decimal {
	total := decimal.Zero
	for _, p := range f.Pagos {
		total = total.Add(p.Monto)
	}
	return total
}

// SaldoPendiente devuelve Total − TotalPagado (puede ser negativo si se sobrepagó).
func (f *Factura) SaldoPendiente() decimal.Decimal {
	return f.Total.Sub(f.TotalPagado())
}

// ActualizarEstadoPago deriva el estado de pago del saldo actual.
// Política: el estado se recalcula SIEMPRE a partir de pagos vs total, de modo
// que agregar daños después de un pago completo regresa la factura a "parcial"
// y vuelve a quedar cobrable. Una factura anulada nunca cambia de estado.
func (f *Factura) ActualizarEstadoPago() {
	if f.EstadoPago == PagoAnulada {
		return
	}
	pagado := f.TotalPagado()
	switch {
	case pagado.GreaterThanOrEqual(f.Total) && pagado.GreaterThan(decimal.Zero):
		f.EstadoPago = PagoPagada
	case pagado.GreaterThan(decimal.Zero):
		f.EstadoPago = PagoParcial
	default:
		f.EstadoPago = PagoPendiente
	}
}
