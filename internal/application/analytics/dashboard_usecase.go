package analytics

import (
	"context"
	"time"

	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// mesesDashboard ventana del gráfico de reservas por mes.
const mesesDashboard = 6

// DashboardUseCase arma el resumen del panel administrativo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// Estadisticas reúne los contadores del dashboard: reservas, departamentos
// por estado, personas, ingresos y la serie mensual de los últimos 6 meses
// con los meses vacíos rellenados en cero.
func (uc *DashboardUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	reservas, err := uc.analyticsRepo.ContarReservas(ctx)
	if err != nil {
		return nil, err
	}
	departamentos, err := uc.analyticsRepo.ContarDepartamentos(ctx)
	if err != nil {
		return nil, err
	}
	usuarios, clientes, frecuentes, err := uc.analyticsRepo.ContarPersonas(ctx)
	if err != nil {
		return nil, err
	}
	ingresosTotales, err := uc.analyticsRepo.IngresosPagados(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	ingresosMes, err := uc.analyticsRepo.IngresosPagados(ctx, inicioMes)
	if err != nil {
		return nil, err
	}
	desde := inicioMes.AddDate(0, -(mesesDashboard - 1), 0)
	porMes, err := uc.analyticsRepo.ReservasPorMes(ctx, desde)
	if err != nil {
		return nil, err
	}

	out := &dto.EstadisticasResponse{}
	out.Reservas.Total = reservas.Total
	out.Reservas.Activas = reservas.Activas
	out.Reservas.Hoy = reservas.Hoy
	out.Departamentos.Total = departamentos.Total
	out.Departamentos.Disponibles = departamentos.Disponibles
	out.Departamentos.Ocupados = departamentos.Ocupados
	out.Departamentos.Mantenimiento = departamentos.Mantenimiento
	out.Departamentos.Reservados = departamentos.Reservados
	out.Finanzas.IngresosTotales = ingresosTotales.Round(2)
	out.Finanzas.IngresosMes = ingresosMes.Round(2)
	out.Personas.Usuarios = usuarios
	out.Personas.Clientes = clientes
	out.Personas.ClientesFrecuentes = frecuentes
	out.ReservasPorMes = rellenarMeses(porMes, desde, mesesDashboard)
	return out, nil
}

// rellenarMeses expande la serie a n meses consecutivos desde la fecha dada,
// poniendo en cero los meses sin reservas.
func rellenarMeses(stats []repository.MesStats, desde time.Time, n int) []dto.MesResponse {
	porClave := make(map[[2]int]repository.MesStats, len(stats))
	for _, s := range stats {
		porClave[[2]int{s.Anio, s.Mes}] = s
	}
	out := make([]dto.MesResponse, 0, n)
	for i := 0; i < n; i++ {
		mes := desde.AddDate(0, i, 0)
		clave := [2]int{mes.Year(), int(mes.Month())}
		entrada := dto.MesResponse{
			Anio:     clave[0],
			Mes:      clave[1],
			Ingresos: decimal.Zero,
		}
		if s, ok := porClave[clave]; ok {
			entrada.Reservas = s.Reservas
			entrada.Ingresos = s.Ingresos.Round(2)
		}
		out = append(out, entrada)
	}
	return out
}
