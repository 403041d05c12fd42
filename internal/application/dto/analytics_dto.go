package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MesResponse reservas e ingresos de un mes (los meses sin datos van en cero).
type MesResponse struct {
	Anio     int             `json:"año"`
	Mes      int             `json:"mes"`
	Reservas int             `json:"total"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

// EstadisticasResponse resumen del dashboard administrativo.
type EstadisticasResponse struct {
	Reservas struct {
		Total   int `json:"total"`
		Activas int `json:"activas"`
		Hoy     int `json:"hoy"`
	} `json:"reservas"`
	Departamentos struct {
		Total         int `json:"total"`
		Disponibles   int `json:"disponibles"`
		Ocupados      int `json:"ocupados"`
		Mantenimiento int `json:"mantenimiento"`
		Reservados    int `json:"reservados"`
	} `json:"departamentos"`
	Finanzas struct {
		IngresosTotales decimal.Decimal `json:"ingresosTotales"`
		IngresosMes     decimal.Decimal `json:"ingresosMes"`
	} `json:"finanzas"`
	Personas struct {
		Usuarios           int `json:"totalUsuarios"`
		Clientes           int `json:"totalClientes"`
		ClientesFrecuentes int `json:"clientesFrecuentes"`
	} `json:"personas"`
	ReservasPorMes []MesResponse `json:"reservasPorMes"`
}

// EstadoReservasResponse conteo de reservas en un estado.
type EstadoReservasResponse struct {
	Estado string `json:"estado"`
	Total  int    `json:"total"`
}

// ReporteReservasResponse listado + estadísticas para /api/reportes/reservas.
type ReporteReservasResponse struct {
	Reservas     []*ReservaResponse `json:"reservas"`
	Estadisticas struct {
		TotalReservas     int                      `json:"totalReservas"`
		TotalIngresos     decimal.Decimal          `json:"totalIngresos"`
		PromedioIngreso   decimal.Decimal          `json:"promedioIngreso"`
		ReservasPorEstado []EstadoReservasResponse `json:"reservasPorEstado"`
	} `json:"estadisticas"`
}

// ReporteFinancieroResponse agregados de facturación para un rango.
type ReporteFinancieroResponse struct {
	Desde           time.Time       `json:"fechaInicio"`
	Hasta           time.Time       `json:"fechaFin"`
	TotalFacturas   int             `json:"totalFacturas"`
	FacturasPagadas int             `json:"facturasPagadas"`
	TotalFacturado  decimal.Decimal `json:"totalFacturado"`
	TotalCobrado    decimal.Decimal `json:"totalCobrado"`
	TotalPendiente  decimal.Decimal `json:"totalPendiente"`
	TotalDanos      decimal.Decimal `json:"totalDanos"`
}

// OcupacionResponse noches vendidas e ingresos por departamento.
type OcupacionResponse struct {
	DepartamentoID string          `json:"departamentoId"`
	Numero         string          `json:"numero"`
	Tipo           string          `json:"tipo"`
	Reservas       int             `json:"reservas"`
	NochesVendidas int             `json:"nochesVendidas"`
	Ingresos       decimal.Decimal `json:"ingresos"`
}
