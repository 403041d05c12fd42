package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConteoReservas contadores globales de reservas para el dashboard.
type ConteoReservas struct {
	Total   int
	Activas int // confirmadas + en curso
	Hoy     int // con fecha de inicio hoy
}

// ConteoDepartamentos departamentos agrupados por estado.
type ConteoDepartamentos struct {
	Total         int
	Disponibles   int
	Ocupados      int
	Mantenimiento int
	Reservados    int
}

// MesStats reservas e ingresos de un mes calendario.
type MesStats struct {
	Anio     int
	Mes      int
	Reservas int
	Ingresos decimal.Decimal
}

// EstadoStats cuántas reservas hay en cada estado.
type EstadoStats struct {
	Estado string
	Total  int
}

// ResumenFinanciero agregados de facturación para un rango de fechas.
type ResumenFinanciero struct {
	TotalFacturas   int
	TotalFacturado  decimal.Decimal
	TotalCobrado    decimal.Decimal // solo facturas pagadas
	TotalPendiente  decimal.Decimal
	TotalDanos      decimal.Decimal
	FacturasPagadas int
}

// OcupacionDepartamento noches vendidas e ingresos por departamento en un rango.
type OcupacionDepartamento struct {
	DepartamentoID string
	Numero         string
	Tipo           string
	Reservas       int
	NochesVendidas int
	Ingresos       decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para dashboard y reportes.
type AnalyticsRepository interface {
	ContarReservas(ctx context.Context) (ConteoReservas, error)
	ContarDepartamentos(ctx context.Context) (ConteoDepartamentos, error)
	// ContarPersonas devuelve total de usuarios, total de clientes y clientes frecuentes.
	ContarPersonas(ctx context.Context) (usuarios, clientes, frecuentes int, err error)
	// IngresosPagados suma el total de facturas pagadas emitidas desde la fecha dada.
	// Con desde en cero suma el histórico completo.
	IngresosPagados(ctx context.Context, desde time.Time) (decimal.Decimal, error)
	// ReservasPorMes agrega reservas e ingresos por mes calendario desde la fecha dada.
	// Los meses sin datos no aparecen; el caso de uso rellena con ceros.
	ReservasPorMes(ctx context.Context, desde time.Time) ([]MesStats, error)
	ReservasPorEstado(ctx context.Context, desde, hasta time.Time) ([]EstadoStats, error)
	ResumenFinanciero(ctx context.Context, desde, hasta time.Time) (ResumenFinanciero, error)
	OcupacionPorDepartamento(ctx context.Context, desde, hasta time.Time) ([]OcupacionDepartamento, error)
}
