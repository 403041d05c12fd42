// Package pdf implementa la representación imprimible de la factura del hotel.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hotel + N° Factura + Fecha de emisión              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + cédula + contacto                        │
//	│  RESERVA: Código, departamento, fechas, noches, huéspedes   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Monto (estadía, descuento, IVA, daños)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / Saldo pendiente                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGOS: fecha, método y referencia de cada abono            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/paraisoverde/hotel-api/internal/application/billing"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

const nombreHotel = "Hotel Paraíso Verde"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 54}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.FacturaPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.FacturaPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarFacturaPDF genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarFacturaPDF(
	_ context.Context,
	factura *entity.Factura,
	cliente *entity.Cliente,
	reserva *entity.Reserva,
	departamento *entity.Departamento,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+factura.NumeroFactura, true).
		WithAuthor(nombreHotel, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(factura))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(reservaRow(reserva, departamento))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range conceptoRows(factura) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(factura))

	if len(factura.Pagos) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range pagosRows(factura.Pagos) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del hotel (izq) y N° Factura + fecha de emisión (der).
func headerRow(factura *entity.Factura) core.Row {
	fecha := factura.FechaEmision.Format("02/01/2006")

	r := row.New(18).Add(
		col.New(7).Add(
			text.New(nombreHotel, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reservas y hospedaje", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(factura.NumeroFactura, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
	return r
}

// clienteRow: datos del huésped facturado.
func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nombres+" "+cliente.Apellidos, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Cédula: %s   |   Email: %s   |   Tel: %s",
				cliente.Cedula,
				nonEmpty(cliente.Email, "—"),
				nonEmpty(cliente.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// reservaRow: resumen de la estadía facturada.
func reservaRow(reserva *entity.Reserva, departamento *entity.Departamento) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RESERVA "+reserva.CodigoReserva, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Departamento %s (%s)   |   %s a %s   |   %d noche(s)   |   %d huésped(es)",
				departamento.Numero, departamento.Tipo,
				reserva.FechaInicio.Format("02/01/2006"),
				reserva.FechaFin.Format("02/01/2006"),
				reserva.NumeroNoches, reserva.NumeroHuespedes,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de conceptos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 9, align.Left),
		h("Monto", 3, align.Right),
	)
}

// conceptoRows: una fila por línea del desglose, daños incluidos.
func conceptoRows(factura *entity.Factura) []core.Row {
	var rows []core.Row
	add := func(concepto, monto string) {
		rows = append(rows, row.New(7).Add(
			col.New(9).Add(text.New(concepto, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(monto, props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}

	add("Estadía (subtotal tras descuento)", fmtMonto(factura.Subtotal))
	if factura.DescuentoFrecuente.GreaterThan(decimal.Zero) {
		add("Descuento cliente frecuente aplicado", "-"+fmtMonto(factura.DescuentoFrecuente))
	}
	if factura.OtrosDescuentos.GreaterThan(decimal.Zero) {
		add("Otros descuentos", "-"+fmtMonto(factura.OtrosDescuentos))
	}
	if factura.IVA.GreaterThan(decimal.Zero) {
		add("IVA (15%)", fmtMonto(factura.IVA))
	}
	if factura.RecargoFeriado.GreaterThan(decimal.Zero) {
		add("Recargo por feriado (10%)", fmtMonto(factura.RecargoFeriado))
	}
	if factura.OtrosRecargos.GreaterThan(decimal.Zero) {
		add("Otros recargos", fmtMonto(factura.OtrosRecargos))
	}
	for _, d := range factura.Danos {
		add("Daños: "+d.Descripcion, fmtMonto(d.Monto))
	}
	return rows
}

// totalesRow: bloque de totales alineado a la derecha.
func totalesRow(factura *entity.Factura) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	saldo := factura.SaldoPendiente()
	if saldo.LessThan(decimal.Zero) {
		saldo = decimal.Zero
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Total pagado:"),
			label("Saldo pendiente:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(fmtMonto(factura.TotalPagado())),
			value(fmtMonto(saldo)),
			grandValue(fmtMonto(factura.Total)),
		),
		col.New(2),
	)
}

// pagosRows: detalle de cada abono registrado.
func pagosRows(pagos []entity.Pago) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAGOS REGISTRADOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, p := range pagos {
		detalle := fmt.Sprintf("%s   |   %s   |   %s",
			p.Fecha.Format("02/01/2006 15:04"), p.Metodo, fmtMonto(p.Monto))
		if p.Referencia != "" {
			detalle += "   |   Ref: " + p.Referencia
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(detalle, props.Text{Size: 7.5, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func fmtMonto(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
