package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paraisoverde/hotel-api/internal/domain/pricing"
)

func calcular(t *testing.T, precio float64, noches int, terceraEdad, frecuente, feriado bool) pricing.Desglose {
	t.Helper()
	return pricing.Calcular(pricing.TarifasPorDefecto(), pricing.Estadia{
		PrecioNoche: decimal.NewFromFloat(precio),
		Noches:      noches,
		TerceraEdad: terceraEdad,
		Frecuente:   frecuente,
		Feriado:     feriado,
	})
}

// Vector de referencia: 100 × 3 noches, cliente frecuente, sin tercera edad
// ni feriado → subtotal base 300, descuento 30, subtotal 270, IVA 40.50,
// recargo 0, total 310.50.
func TestCalcular_ClienteFrecuente(t *testing.T) {
	d := calcular(t, 100, 3, false, true, false)

	assert.True(t, d.SubtotalBase.Equal(decimal.NewFromInt(300)), "subtotal base debe ser 300, fue %s", d.SubtotalBase)
	assert.True(t, d.Descuento.Equal(decimal.NewFromInt(30)), "descuento debe ser 30, fue %s", d.Descuento)
	assert.True(t, d.Subtotal.Equal(decimal.NewFromInt(270)), "subtotal debe ser 270, fue %s", d.Subtotal)
	assert.True(t, d.IVA.Equal(decimal.NewFromFloat(40.5)), "IVA debe ser 40.5, fue %s", d.IVA)
	assert.True(t, d.Recargo.IsZero(), "recargo debe ser 0, fue %s", d.Recargo)
	assert.True(t, d.Total.Equal(decimal.NewFromFloat(310.5)), "total debe ser 310.5, fue %s", d.Total)
}

// Vector de referencia: 50 × 2 noches, tercera edad en feriado → sin IVA
// (tercera edad) y sin recargo (tercera edad anula el recargo feriado),
// total igual al subtotal 100.
func TestCalcular_TerceraEdadEnFeriado(t *testing.T) {
	d := calcular(t, 50, 2, true, false, true)

	assert.True(t, d.SubtotalBase.Equal(decimal.NewFromInt(100)))
	assert.True(t, d.Descuento.IsZero())
	assert.True(t, d.IVA.IsZero(), "tercera edad no paga IVA")
	assert.True(t, d.Recargo.IsZero(), "tercera edad no paga recargo feriado")
	assert.True(t, d.Total.Equal(decimal.NewFromInt(100)))
}

// Feriado sin tercera edad: paga recargo del 10% pero nunca IVA.
func TestCalcular_FeriadoSinIVA(t *testing.T) {
	d := calcular(t, 80, 1, false, false, true)

	assert.True(t, d.IVA.IsZero(), "una estadía en feriado nunca paga IVA")
	assert.True(t, d.Recargo.Equal(decimal.NewFromInt(8)), "recargo debe ser 8, fue %s", d.Recargo)
	assert.True(t, d.Total.Equal(decimal.NewFromInt(88)))
}

// IVA y recargo son mutuamente excluyentes en cualquier combinación de flags.
func TestCalcular_IVAYRecargoExcluyentes(t *testing.T) {
	for _, terceraEdad := range []bool{false, true} {
		for _, frecuente := range []bool{false, true} {
			for _, feriado := range []bool{false, true} {
				d := calcular(t, 120, 4, terceraEdad, frecuente, feriado)
				if d.IVA.GreaterThan(decimal.Zero) {
					assert.True(t, d.Recargo.IsZero(),
						"IVA>0 implica recargo==0 (terceraEdad=%v frecuente=%v feriado=%v)",
						terceraEdad, frecuente, feriado)
				}
				if d.Recargo.GreaterThan(decimal.Zero) {
					assert.True(t, d.IVA.IsZero(),
						"recargo>0 implica IVA==0 (terceraEdad=%v frecuente=%v feriado=%v)",
						terceraEdad, frecuente, feriado)
				}
			}
		}
	}
}

// El descuento frecuente es exactamente el 10% del subtotal pre-descuento.
func TestCalcular_DescuentoExacto(t *testing.T) {
	d := calcular(t, 73.50, 5, false, true, false)

	esperado := d.SubtotalBase.Mul(decimal.NewFromFloat(0.10))
	assert.True(t, d.Descuento.Equal(esperado),
		"descuento debe ser 10%% del subtotal base: esperado %s, fue %s", esperado, d.Descuento)
	assert.True(t, d.Subtotal.Equal(d.SubtotalBase.Sub(d.Descuento)))
}

// Tercera edad nunca paga IVA ni recargo, con o sin feriado.
func TestCalcular_TerceraEdadExenta(t *testing.T) {
	for _, feriado := range []bool{false, true} {
		d := calcular(t, 200, 2, true, true, feriado)
		assert.True(t, d.IVA.IsZero(), "tercera edad exenta de IVA (feriado=%v)", feriado)
		assert.True(t, d.Recargo.IsZero(), "tercera edad exenta de recargo (feriado=%v)", feriado)
	}
}

// Mismo input, mismo output: el cálculo es determinista y puro.
func TestCalcular_Determinista(t *testing.T) {
	d1 := calcular(t, 99.99, 7, false, true, false)
	d2 := calcular(t, 99.99, 7, false, true, false)

	assert.True(t, d1.Total.Equal(d2.Total))
	assert.True(t, d1.Descuento.Equal(d2.Descuento))
	assert.True(t, d1.IVA.Equal(d2.IVA))
}

// Montos no negativos para cualquier precio >= 0 y noches >= 1.
func TestCalcular_NoNegativos(t *testing.T) {
	casos := []struct {
		precio float64
		noches int
	}{
		{0, 1},
		{0.01, 1},
		{500, 30},
	}
	for _, c := range casos {
		d := calcular(t, c.precio, c.noches, false, true, false)
		require.False(t, d.Total.IsNegative(), "total no puede ser negativo (precio=%v)", c.precio)
		require.False(t, d.Subtotal.IsNegative())
		require.False(t, d.Descuento.IsNegative())
	}
}

// Precisión: el cálculo interno no redondea; redondear es de presentación.
func TestCalcular_SinRedondeoInterno(t *testing.T) {
	d := calcular(t, 33.33, 3, false, true, false)

	// 33.33×3 = 99.99; descuento 9.999; subtotal 89.991; IVA 13.49865
	assert.True(t, d.Descuento.Equal(decimal.NewFromFloat(9.999)),
		"el descuento debe conservar precisión completa, fue %s", d.Descuento)
	assert.Equal(t, "13.49865", d.IVA.String())
}
