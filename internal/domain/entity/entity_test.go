package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

func fecha(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestEdad_AntesYDespuesDelCumpleanos(t *testing.T) {
	nacimiento := fecha(1990, 6, 15)

	assert.Equal(t, 35, entity.Edad(nacimiento, fecha(2026, 6, 15)), "el día del cumpleaños ya cumplió")
	assert.Equal(t, 35, entity.Edad(nacimiento, fecha(2026, 6, 16)))
	assert.Equal(t, 34, entity.Edad(nacimiento, fecha(2026, 6, 14)), "un día antes aún no cumple")
	assert.Equal(t, 34, entity.Edad(nacimiento, fecha(2026, 1, 1)))
}

func TestCliente_ActualizarFrecuente(t *testing.T) {
	c := &entity.Cliente{ReservasRealizadas: 4}
	c.ActualizarFrecuente()
	assert.False(t, c.EsFrecuente, "con 4 reservas todavía no es frecuente")

	c.ReservasRealizadas = 5
	c.ActualizarFrecuente()
	assert.True(t, c.EsFrecuente, "con 5 reservas pasa a frecuente")
}

func TestNoches_DiasCompletos(t *testing.T) {
	assert.Equal(t, 3, entity.Noches(fecha(2026, 1, 10), fecha(2026, 1, 13)))
	assert.Equal(t, 1, entity.Noches(fecha(2026, 1, 10), fecha(2026, 1, 11)))
}

// Una diferencia fraccional redondea hacia arriba (techo).
func TestNoches_FraccionRedondeaArriba(t *testing.T) {
	inicio := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2026, 1, 12, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, entity.Noches(inicio, fin))
}

func TestFactura_RecalcularTotales(t *testing.T) {
	f := &entity.Factura{
		Subtotal:       decimal.NewFromInt(270),
		IVA:            decimal.NewFromFloat(40.5),
		RecargoFeriado: decimal.Zero,
	}
	f.RecalcularTotales()
	assert.True(t, f.Total.Equal(decimal.NewFromFloat(310.5)), "total inicial %s", f.Total)

	f.Danos = append(f.Danos,
		entity.Dano{Descripcion: "lámpara rota", Monto: decimal.NewFromInt(25)},
		entity.Dano{Descripcion: "toalla perdida", Monto: decimal.NewFromFloat(12.5)},
	)
	f.RecalcularTotales()
	assert.True(t, f.TotalDanos.Equal(decimal.NewFromFloat(37.5)))
	assert.True(t, f.Total.Equal(decimal.NewFromFloat(348)), "total con daños %s", f.Total)
}

func TestFactura_ActualizarEstadoPago(t *testing.T) {
	f := &entity.Factura{
		Subtotal:   decimal.NewFromInt(100),
		EstadoPago: entity.PagoPendiente,
	}
	f.RecalcularTotales()

	f.ActualizarEstadoPago()
	assert.Equal(t, entity.PagoPendiente, f.EstadoPago, "sin pagos queda pendiente")

	f.Pagos = append(f.Pagos, entity.Pago{Monto: decimal.NewFromInt(40)})
	f.ActualizarEstadoPago()
	assert.Equal(t, entity.PagoParcial, f.EstadoPago)

	f.Pagos = append(f.Pagos, entity.Pago{Monto: decimal.NewFromInt(60)})
	f.ActualizarEstadoPago()
	assert.Equal(t, entity.PagoPagada, f.EstadoPago)
}

// Política documentada: agregar daños tras un pago completo regresa la
// factura a parcial; el estado siempre se deriva de pagos vs total.
func TestFactura_DanosDespuesDePagoCompleto(t *testing.T) {
	f := &entity.Factura{Subtotal: decimal.NewFromInt(100), EstadoPago: entity.PagoPendiente}
	f.RecalcularTotales()
	f.Pagos = append(f.Pagos, entity.Pago{Monto: decimal.NewFromInt(100)})
	f.ActualizarEstadoPago()
	assert.Equal(t, entity.PagoPagada, f.EstadoPago)

	f.Danos = append(f.Danos, entity.Dano{Descripcion: "vidrio roto", Monto: decimal.NewFromInt(30)})
	f.RecalcularTotales()
	f.ActualizarEstadoPago()
	assert.Equal(t, entity.PagoParcial, f.EstadoPago, "con saldo pendiente vuelve a parcial")
	assert.True(t, f.SaldoPendiente().Equal(decimal.NewFromInt(30)))
}

// Una factura anulada nunca cambia de estado, pase lo que pase con los pagos.
func TestFactura_AnuladaNoMuta(t *testing.T) {
	f := &entity.Factura{Subtotal: decimal.NewFromInt(50), EstadoPago: entity.PagoAnulada}
	f.RecalcularTotales()
	f.Pagos = append(f.Pagos, entity.Pago{Monto: decimal.NewFromInt(50)})
	f.ActualizarEstadoPago()
	assert.Equal(t, entity.PagoAnulada, f.EstadoPago)
}
