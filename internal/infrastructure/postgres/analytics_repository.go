package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para dashboard y reportes.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// ContarReservas devuelve totales de reservas para el dashboard.
func (r *AnalyticsRepo) ContarReservas(ctx context.Context) (repository.ConteoReservas, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE estado IN ($1, $2)),
		       COUNT(*) FILTER (WHERE fecha_inicio::date = CURRENT_DATE)
		FROM reservas`
	var c repository.ConteoReservas
	err := r.q.QueryRow(ctx, query, entity.ReservaConfirmada, entity.ReservaEnCurso).
		Scan(&c.Total, &c.Activas, &c.Hoy)
	if err != nil {
		return repository.ConteoReservas{}, fmt.Errorf("contar reservas: %w", err)
	}
	return c, nil
}

// ContarDepartamentos devuelve departamentos agrupados por estado.
func (r *AnalyticsRepo) ContarDepartamentos(ctx context.Context) (repository.ConteoDepartamentos, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE estado = $1),
		       COUNT(*) FILTER (WHERE estado = $2),
		       COUNT(*) FILTER (WHERE estado = $3),
		       COUNT(*) FILTER (WHERE estado = $4)
		FROM departamentos`
	var c repository.ConteoDepartamentos
	err := r.q.QueryRow(ctx, query,
		entity.EstadoDisponible, entity.EstadoOcupado,
		entity.EstadoMantenimiento, entity.EstadoReservado).
		Scan(&c.Total, &c.Disponibles, &c.Ocupados, &c.Mantenimiento, &c.Reservados)
	if err != nil {
		return repository.ConteoDepartamentos{}, fmt.Errorf("contar departamentos: %w", err)
	}
	return c, nil
}

// ContarPersonas devuelve total de usuarios, total de clientes y clientes frecuentes.
func (r *AnalyticsRepo) ContarPersonas(ctx context.Context) (usuarios, clientes, frecuentes int, err error) {
	query := `
		SELECT (SELECT COUNT(*) FROM usuarios),
		       (SELECT COUNT(*) FROM clientes),
		       (SELECT COUNT(*) FROM clientes WHERE es_frecuente)`
	if err := r.q.QueryRow(ctx, query).Scan(&usuarios, &clientes, &frecuentes); err != nil {
		return 0, 0, 0, fmt.Errorf("contar personas: %w", err)
	}
	return usuarios, clientes, frecuentes, nil
}

// IngresosPagados suma el total de facturas pagadas emitidas desde la fecha dada.
// Con desde en cero suma el histórico completo.
func (r *AnalyticsRepo) IngresosPagados(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM facturas
		WHERE estado_pago = $1 AND ($2::timestamptz IS NULL OR fecha_emision >= $2)`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, entity.PagoPagada, nullIfZero(desde)).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("ingresos pagados: %w", err)
	}
	return total, nil
}

// ReservasPorMes agrega reservas e ingresos por mes calendario desde la fecha dada.
// Los meses sin datos no aparecen en el resultado.
func (r *AnalyticsRepo) ReservasPorMes(ctx context.Context, desde time.Time) ([]repository.MesStats, error) {
	query := `
		SELECT EXTRACT(YEAR FROM fecha_inicio)::int,
		       EXTRACT(MONTH FROM fecha_inicio)::int,
		       COUNT(*),
		       COALESCE(SUM(total) FILTER (WHERE estado <> $2), 0)
		FROM reservas
		WHERE fecha_inicio >= $1
		GROUP BY 1, 2
		ORDER BY 1, 2`
	rows, err := r.q.Query(ctx, query, desde, entity.ReservaCancelada)
	if err != nil {
		return nil, fmt.Errorf("reservas por mes: %w", err)
	}
	defer rows.Close()
	var list []repository.MesStats
	for rows.Next() {
		var m repository.MesStats
		if err := rows.Scan(&m.Anio, &m.Mes, &m.Reservas, &m.Ingresos); err != nil {
			return nil, fmt.Errorf("scan mes: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ReservasPorEstado cuenta reservas por estado con fecha de inicio en el rango [desde, hasta).
func (r *AnalyticsRepo) ReservasPorEstado(ctx context.Context, desde, hasta time.Time) ([]repository.EstadoStats, error) {
	query := `
		SELECT estado, COUNT(*)
		FROM reservas
		WHERE fecha_inicio >= $1 AND fecha_inicio < $2
		GROUP BY estado
		ORDER BY estado`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reservas por estado: %w", err)
	}
	defer rows.Close()
	var list []repository.EstadoStats
	for rows.Next() {
		var e repository.EstadoStats
		if err := rows.Scan(&e.Estado, &e.Total); err != nil {
			return nil, fmt.Errorf("scan estado: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ResumenFinanciero devuelve agregados de facturación para facturas emitidas en [desde, hasta).
// Las facturas anuladas no se cuentan.
func (r *AnalyticsRepo) ResumenFinanciero(ctx context.Context, desde, hasta time.Time) (repository.ResumenFinanciero, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total), 0),
		       COALESCE(SUM(total) FILTER (WHERE estado_pago = $3), 0),
		       COALESCE(SUM(total) FILTER (WHERE estado_pago IN ($4, $5)), 0),
		       COALESCE(SUM(total_danos), 0),
		       COUNT(*) FILTER (WHERE estado_pago = $3)
		FROM facturas
		WHERE fecha_emision >= $1 AND fecha_emision < $2 AND estado_pago <> $6`
	var res repository.ResumenFinanciero
	err := r.q.QueryRow(ctx, query, desde, hasta,
		entity.PagoPagada, entity.PagoPendiente, entity.PagoParcial, entity.PagoAnulada).
		Scan(&res.TotalFacturas, &res.TotalFacturado, &res.TotalCobrado,
			&res.TotalPendiente, &res.TotalDanos, &res.FacturasPagadas)
	if err != nil {
		return repository.ResumenFinanciero{}, fmt.Errorf("resumen financiero: %w", err)
	}
	return res, nil
}

// OcupacionPorDepartamento agrega noches vendidas e ingresos por departamento
// sobre reservas no canceladas con fecha de inicio en [desde, hasta).
func (r *AnalyticsRepo) OcupacionPorDepartamento(ctx context.Context, desde, hasta time.Time) ([]repository.OcupacionDepartamento, error) {
	query := `
		SELECT d.id, d.numero, d.tipo,
		       COUNT(r.id),
		       COALESCE(SUM(r.numero_noches), 0),
		       COALESCE(SUM(r.total), 0)
		FROM departamentos d
		LEFT JOIN reservas r
		       ON r.departamento_id = d.id
		      AND r.estado <> $3
		      AND r.fecha_inicio >= $1 AND r.fecha_inicio < $2
		GROUP BY d.id, d.numero, d.tipo
		ORDER BY d.numero`
	rows, err := r.q.Query(ctx, query, desde, hasta, entity.ReservaCancelada)
	if err != nil {
		return nil, fmt.Errorf("ocupacion por departamento: %w", err)
	}
	defer rows.Close()
	var list []repository.OcupacionDepartamento
	for rows.Next() {
		var o repository.OcupacionDepartamento
		if err := rows.Scan(&o.DepartamentoID, &o.Numero, &o.Tipo,
			&o.Reservas, &o.NochesVendidas, &o.Ingresos); err != nil {
			return nil, fmt.Errorf("scan ocupacion: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
