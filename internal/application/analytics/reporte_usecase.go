package analytics

import (
	"context"
	"time"

	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReporteUseCase reportes administrativos por rango de fechas.
type ReporteUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	reservaRepo   repository.ReservaRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(analyticsRepo repository.AnalyticsRepository, reservaRepo repository.ReservaRepository) *ReporteUseCase {
	return &ReporteUseCase{analyticsRepo: analyticsRepo, reservaRepo: reservaRepo}
}

// parseRangoReporte interpreta el rango pedido; sin fechas se reportan los
// últimos 30 días.
func parseRangoReporte(desdeStr, hastaStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	hasta := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	desde := hasta.AddDate(0, 0, -30)
	if desdeStr != "" {
		t, err := time.Parse("2006-01-02", desdeStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrFechasInvalidas
		}
		desde = t
	}
	if hastaStr != "" {
		t, err := time.Parse("2006-01-02", hastaStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrFechasInvalidas
		}
		hasta = t.AddDate(0, 0, 1) // inclusivo hasta el fin del día
	}
	if !hasta.After(desde) {
		return time.Time{}, time.Time{}, domain.ErrFechasInvalidas
	}
	return desde, hasta, nil
}

// ReporteReservas lista las reservas del rango con estadísticas agregadas.
func (uc *ReporteUseCase) ReporteReservas(ctx context.Context, desdeStr, hastaStr string) (*dto.ReporteReservasResponse, error) {
	desde, hasta, err := parseRangoReporte(desdeStr, hastaStr)
	if err != nil {
		return nil, err
	}
	reservas, err := uc.reservaRepo.List(repository.FiltroReservas{Desde: desde, Hasta: hasta})
	if err != nil {
		return nil, err
	}
	porEstado, err := uc.analyticsRepo.ReservasPorEstado(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	out := &dto.ReporteReservasResponse{Reservas: make([]*dto.ReservaResponse, 0, len(reservas))}
	ingresos := decimal.Zero
	for _, r := range reservas {
		out.Reservas = append(out.Reservas, dto.NewReservaResponse(r))
		if r.Estado != entity.ReservaCancelada {
			ingresos = ingresos.Add(r.Total)
		}
	}
	out.Estadisticas.TotalReservas = len(reservas)
	out.Estadisticas.TotalIngresos = ingresos.Round(2)
	out.Estadisticas.PromedioIngreso = decimal.Zero
	if len(reservas) > 0 {
		out.Estadisticas.PromedioIngreso = ingresos.Div(decimal.NewFromInt(int64(len(reservas)))).Round(2)
	}
	out.Estadisticas.ReservasPorEstado = make([]dto.EstadoReservasResponse, 0, len(porEstado))
	for _, e := range porEstado {
		out.Estadisticas.ReservasPorEstado = append(out.Estadisticas.ReservasPorEstado, dto.EstadoReservasResponse{
			Estado: e.Estado,
			Total:  e.Total,
		})
	}
	return out, nil
}

// ReporteFinanciero agrega la facturación del rango.
func (uc *ReporteUseCase) ReporteFinanciero(ctx context.Context, desdeStr, hastaStr string) (*dto.ReporteFinancieroResponse, error) {
	desde, hasta, err := parseRangoReporte(desdeStr, hastaStr)
	if err != nil {
		return nil, err
	}
	resumen, err := uc.analyticsRepo.ResumenFinanciero(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return &dto.ReporteFinancieroResponse{
		Desde:           desde,
		Hasta:           hasta,
		TotalFacturas:   resumen.TotalFacturas,
		FacturasPagadas: resumen.FacturasPagadas,
		TotalFacturado:  resumen.TotalFacturado.Round(2),
		TotalCobrado:    resumen.TotalCobrado.Round(2),
		TotalPendiente:  resumen.TotalPendiente.Round(2),
		TotalDanos:      resumen.TotalDanos.Round(2),
	}, nil
}

// ReporteOcupacion devuelve noches vendidas e ingresos por departamento.
func (uc *ReporteUseCase) ReporteOcupacion(ctx context.Context, desdeStr, hastaStr string) ([]dto.OcupacionResponse, error) {
	desde, hasta, err := parseRangoReporte(desdeStr, hastaStr)
	if err != nil {
		return nil, err
	}
	ocupacion, err := uc.analyticsRepo.OcupacionPorDepartamento(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OcupacionResponse, 0, len(ocupacion))
	for _, o := range ocupacion {
		out = append(out, dto.OcupacionResponse{
			DepartamentoID: o.DepartamentoID,
			Numero:         o.Numero,
			Tipo:           o.Tipo,
			Reservas:       o.Reservas,
			NochesVendidas: o.NochesVendidas,
			Ingresos:       o.Ingresos.Round(2),
		})
	}
	return out, nil
}
