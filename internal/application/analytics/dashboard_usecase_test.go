package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

type mockAnalyticsRepo struct {
	contarReservasFn      func(ctx context.Context) (repository.ConteoReservas, error)
	contarDepartamentosFn func(ctx context.Context) (repository.ConteoDepartamentos, error)
	contarPersonasFn      func(ctx context.Context) (int, int, int, error)
	ingresosPagadosFn     func(ctx context.Context, desde time.Time) (decimal.Decimal, error)
	reservasPorMesFn      func(ctx context.Context, desde time.Time) ([]repository.MesStats, error)
	reservasPorEstadoFn   func(ctx context.Context, desde, hasta time.Time) ([]repository.EstadoStats, error)
	resumenFinancieroFn   func(ctx context.Context, desde, hasta time.Time) (repository.ResumenFinanciero, error)
	ocupacionFn           func(ctx context.Context, desde, hasta time.Time) ([]repository.OcupacionDepartamento, error)
}

var _ repository.AnalyticsRepository = (*mockAnalyticsRepo)(nil)

func (m *mockAnalyticsRepo) ContarReservas(ctx context.Context) (repository.ConteoReservas, error) {
	if m.contarReservasFn == nil {
		return repository.ConteoReservas{}, nil
	}
	return m.contarReservasFn(ctx)
}

func (m *mockAnalyticsRepo) ContarDepartamentos(ctx context.Context) (repository.ConteoDepartamentos, error) {
	if m.contarDepartamentosFn == nil {
		return repository.ConteoDepartamentos{}, nil
	}
	return m.contarDepartamentosFn(ctx)
}

func (m *mockAnalyticsRepo) ContarPersonas(ctx context.Context) (int, int, int, error) {
	if m.contarPersonasFn == nil {
		return 0, 0, 0, nil
	}
	return m.contarPersonasFn(ctx)
}

func (m *mockAnalyticsRepo) IngresosPagados(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	if m.ingresosPagadosFn == nil {
		return decimal.Zero, nil
	}
	return m.ingresosPagadosFn(ctx, desde)
}

func (m *mockAnalyticsRepo) ReservasPorMes(ctx context.Context, desde time.Time) ([]repository.MesStats, error) {
	if m.reservasPorMesFn == nil {
		return nil, nil
	}
	return m.reservasPorMesFn(ctx, desde)
}

func (m *mockAnalyticsRepo) ReservasPorEstado(ctx context.Context, desde, hasta time.Time) ([]repository.EstadoStats, error) {
	if m.reservasPorEstadoFn == nil {
		return nil, nil
	}
	return m.reservasPorEstadoFn(ctx, desde, hasta)
}

func (m *mockAnalyticsRepo) ResumenFinanciero(ctx context.Context, desde, hasta time.Time) (repository.ResumenFinanciero, error) {
	if m.resumenFinancieroFn == nil {
		return repository.ResumenFinanciero{}, nil
	}
	return m.resumenFinancieroFn(ctx, desde, hasta)
}

func (m *mockAnalyticsRepo) OcupacionPorDepartamento(ctx context.Context, desde, hasta time.Time) ([]repository.OcupacionDepartamento, error) {
	if m.ocupacionFn == nil {
		return nil, nil
	}
	return m.ocupacionFn(ctx, desde, hasta)
}

type mockReservaRepo struct {
	listFn func(f repository.FiltroReservas) ([]*entity.Reserva, error)
}

var _ repository.ReservaRepository = (*mockReservaRepo)(nil)

func (m *mockReservaRepo) Create(r *entity.Reserva) error                { return nil }
func (m *mockReservaRepo) GetByID(id string) (*entity.Reserva, error)   { return nil, nil }
func (m *mockReservaRepo) Update(r *entity.Reserva) error               { return nil }
func (m *mockReservaRepo) Delete(id string) error                       { return nil }
func (m *mockReservaRepo) ListActivasPorDepartamento(departamentoID string) ([]*entity.Reserva, error) {
	return nil, nil
}

func (m *mockReservaRepo) List(f repository.FiltroReservas) ([]*entity.Reserva, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(f)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEstadisticas_RellenaMesesVacios(t *testing.T) {
	now := time.Now()
	mesActual := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	repo := &mockAnalyticsRepo{
		contarReservasFn: func(ctx context.Context) (repository.ConteoReservas, error) {
			return repository.ConteoReservas{Total: 40, Activas: 7, Hoy: 2}, nil
		},
		contarDepartamentosFn: func(ctx context.Context) (repository.ConteoDepartamentos, error) {
			return repository.ConteoDepartamentos{Total: 10, Disponibles: 6, Ocupados: 2, Mantenimiento: 1, Reservados: 1}, nil
		},
		contarPersonasFn: func(ctx context.Context) (int, int, int, error) { return 25, 18, 4, nil },
		ingresosPagadosFn: func(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
			if desde.IsZero() {
				return dec("12500.75"), nil
			}
			return dec("900"), nil
		},
		reservasPorMesFn: func(ctx context.Context, desde time.Time) ([]repository.MesStats, error) {
			// Solo el mes actual tiene datos; los 5 anteriores deben salir en cero.
			return []repository.MesStats{{
				Anio:     mesActual.Year(),
				Mes:      int(mesActual.Month()),
				Reservas: 9,
				Ingresos: dec("900"),
			}}, nil
		},
	}
	uc := NewDashboardUseCase(repo)

	resp, err := uc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40, resp.Reservas.Total)
	assert.Equal(t, 7, resp.Reservas.Activas)
	assert.Equal(t, 6, resp.Departamentos.Disponibles)
	assert.Equal(t, 25, resp.Personas.Usuarios)
	assert.Equal(t, 4, resp.Personas.ClientesFrecuentes)
	assert.True(t, resp.Finanzas.IngresosTotales.Equal(dec("12500.75")))
	assert.True(t, resp.Finanzas.IngresosMes.Equal(dec("900")))

	require.Len(t, resp.ReservasPorMes, 6, "siempre 6 meses, con o sin datos")
	for i := 0; i < 5; i++ {
		assert.Zero(t, resp.ReservasPorMes[i].Reservas, "mes %d debe ir en cero", i)
		assert.True(t, resp.ReservasPorMes[i].Ingresos.IsZero())
	}
	ultimo := resp.ReservasPorMes[5]
	assert.Equal(t, int(mesActual.Month()), ultimo.Mes)
	assert.Equal(t, 9, ultimo.Reservas)
	assert.True(t, ultimo.Ingresos.Equal(dec("900")))
}

func TestReporteReservas_CalculaIngresosYPromedio(t *testing.T) {
	reservas := []*entity.Reserva{
		{ID: "r-1", Estado: entity.ReservaCompletada, Total: dec("310.5")},
		{ID: "r-2", Estado: entity.ReservaConfirmada, Total: dec("100")},
		{ID: "r-3", Estado: entity.ReservaCancelada, Total: dec("999")},
	}
	analyticsRepo := &mockAnalyticsRepo{
		reservasPorEstadoFn: func(ctx context.Context, desde, hasta time.Time) ([]repository.EstadoStats, error) {
			return []repository.EstadoStats{
				{Estado: entity.ReservaCompletada, Total: 1},
				{Estado: entity.ReservaConfirmada, Total: 1},
				{Estado: entity.ReservaCancelada, Total: 1},
			}, nil
		},
	}
	uc := NewReporteUseCase(analyticsRepo, &mockReservaRepo{
		listFn: func(f repository.FiltroReservas) ([]*entity.Reserva, error) { return reservas, nil },
	})

	resp, err := uc.ReporteReservas(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Estadisticas.TotalReservas)
	assert.True(t, resp.Estadisticas.TotalIngresos.Equal(dec("410.5")), "las canceladas no suman ingresos")
	assert.True(t, resp.Estadisticas.PromedioIngreso.Equal(dec("136.83")))
	assert.Len(t, resp.Estadisticas.ReservasPorEstado, 3)
}

func TestReporteReservas_RangoInvalido(t *testing.T) {
	uc := NewReporteUseCase(&mockAnalyticsRepo{}, &mockReservaRepo{})

	_, err := uc.ReporteReservas(context.Background(), "2026-02-10", "2026-02-01")
	assert.ErrorIs(t, err, domain.ErrFechasInvalidas)
}

func TestReporteFinanciero_MapeaElResumen(t *testing.T) {
	uc := NewReporteUseCase(&mockAnalyticsRepo{
		resumenFinancieroFn: func(ctx context.Context, desde, hasta time.Time) (repository.ResumenFinanciero, error) {
			return repository.ResumenFinanciero{
				TotalFacturas:   12,
				FacturasPagadas: 8,
				TotalFacturado:  dec("4000"),
				TotalCobrado:    dec("3100"),
				TotalPendiente:  dec("900"),
				TotalDanos:      dec("150"),
			}, nil
		},
	}, &mockReservaRepo{})

	resp, err := uc.ReporteFinanciero(context.Background(), "2026-01-01", "2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, 12, resp.TotalFacturas)
	assert.Equal(t, 8, resp.FacturasPagadas)
	assert.True(t, resp.TotalPendiente.Equal(dec("900")))
}
