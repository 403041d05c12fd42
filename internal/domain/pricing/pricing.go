// Package pricing implementa el cálculo de precios de una estadía.
//
// Orden fijo del algoritmo:
//
//	1. subtotal = precioNoche × noches
//	2. cliente frecuente  → descuento 10% y se resta del subtotal
//	3. IVA 15% solo si NO es tercera edad y NO es feriado
//	4. recargo feriado 10% solo si es feriado y NO es tercera edad
//	5. total = subtotal + IVA + recargo
//
// IVA y recargo feriado son mutuamente excluyentes: una estadía en feriado
// nunca paga IVA. Los porcentajes son constantes de configuración (Tarifas),
// no globals. El cálculo mantiene precisión completa; redondear a 2 decimales
// es responsabilidad de la capa de presentación.
package pricing

import "github.com/shopspring/decimal"

// Tarifas porcentajes aplicables, inyectados al construir los casos de uso.
type Tarifas struct {
	DescuentoFrecuente decimal.Decimal
	IVA                decimal.Decimal
	RecargoFeriado     decimal.Decimal
}

// TarifasPorDefecto valores de diseño: 10% descuento, 15% IVA, 10% recargo.
func TarifasPorDefecto() Tarifas {
	return Tarifas{
		DescuentoFrecuente: decimal.NewFromFloat(0.10),
		IVA:                decimal.NewFromFloat(0.15),
		RecargoFeriado:     decimal.NewFromFloat(0.10),
	}
}

// Estadia entrada del cálculo. El caller garantiza Noches >= 1 y
// PrecioNoche >= 0; no hay condiciones de error.
type Estadia struct {
	PrecioNoche decimal.Decimal
	Noches      int
	TerceraEdad bool
	Frecuente   bool
	Feriado     bool
}

// Desglose salida del cálculo, todos los montos no negativos.
type Desglose struct {
	SubtotalBase decimal.Decimal // precio × noches, antes de descuento
	Descuento    decimal.Decimal
	Subtotal     decimal.Decimal // tras descuento
	IVA          decimal.Decimal
	Recargo      decimal.Decimal
	Total        decimal.Decimal
}

// Calcular aplica las reglas de precios en orden fijo.
func Calcular(t Tarifas, e Estadia) Desglose {
	var d Desglose

	d.SubtotalBase = e.PrecioNoche.Mul(decimal.NewFromInt(int64(e.Noches)))
	d.Subtotal = d.SubtotalBase

	if e.Frecuente {
		d.Descuento = d.Subtotal.Mul(t.DescuentoFrecuente)
		d.Subtotal = d.Subtotal.Sub(d.Descuento)
	} else {
		d.Descuento = decimal.Zero
	}

	if !e.TerceraEdad && !e.Feriado {
		d.IVA = d.Subtotal.Mul(t.IVA)
	} else {
		d.IVA = decimal.Zero
	}

	if e.Feriado && !e.TerceraEdad {
		d.Recargo = d.Subtotal.Mul(t.RecargoFeriado)
	} else {
		d.Recargo = decimal.Zero
	}

	d.Total = d.Subtotal.Add(d.IVA).Add(d.Recargo)
	return d
}
