package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

var _ repository.ReservaRepository = (*ReservaRepo)(nil)

// ReservaRepo implementación de ReservaRepository (usable con pool o tx).
type ReservaRepo struct {
	q Querier
}

// NewReservaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservaRepository(q Querier) *ReservaRepo {
	return &ReservaRepo{q: q}
}

const reservaColumns = `id, codigo_reserva, COALESCE(usuario_id, ''), cliente_id, departamento_id,
	       fecha_inicio, fecha_fin, numero_noches, numero_huespedes,
	       precio_noche, subtotal, descuento, es_feriado, iva, recargo_feriado, total,
	       estado, check_in, check_out,
	       COALESCE(observaciones, ''), COALESCE(solicitudes_especiales, ''),
	       created_at, updated_at`

// Create persiste una reserva nueva.
func (r *ReservaRepo) Create(reserva *entity.Reserva) error {
	if reserva.ID == "" {
		reserva.ID = uuid.New().String()
	}
	checkIn, err := toJSON(reserva.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := toJSON(reserva.CheckOut)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO reservas (id, codigo_reserva, usuario_id, cliente_id, departamento_id,
		                      fecha_inicio, fecha_fin, numero_noches, numero_huespedes,
		                      precio_noche, subtotal, descuento, es_feriado, iva, recargo_feriado, total,
		                      estado, check_in, check_out, observaciones, solicitudes_especiales,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23)`
	_, err = r.q.Exec(context.Background(), query,
		reserva.ID, reserva.CodigoReserva, nullIfEmpty(reserva.UsuarioID),
		reserva.ClienteID, reserva.DepartamentoID,
		reserva.FechaInicio, reserva.FechaFin, reserva.NumeroNoches, reserva.NumeroHuespedes,
		reserva.PrecioNoche, reserva.Subtotal, reserva.Descuento, reserva.EsFeriado,
		reserva.IVA, reserva.RecargoFeriado, reserva.Total,
		reserva.Estado, checkIn, checkOut,
		nullIfEmpty(reserva.Observaciones), nullIfEmpty(reserva.SolicitudesEspeciales),
		reserva.CreatedAt, reserva.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reserva: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ReservaRepo) GetByID(id string) (*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + ` FROM reservas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List devuelve reservas con filtros opcionales, las más recientes primero.
// Desde y Hasta acotan por fecha_inicio.
func (r *ReservaRepo) List(filtro repository.FiltroReservas) ([]*entity.Reserva, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + reservaColumns + ` FROM reservas`)

	var conds []string
	var args []any
	if filtro.UsuarioID != "" {
		args = append(args, filtro.UsuarioID)
		conds = append(conds, "usuario_id = $"+strconv.Itoa(len(args)))
	}
	if filtro.DepartamentoID != "" {
		args = append(args, filtro.DepartamentoID)
		conds = append(conds, "departamento_id = $"+strconv.Itoa(len(args)))
	}
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		conds = append(conds, "estado = $"+strconv.Itoa(len(args)))
	}
	if !filtro.Desde.IsZero() {
		args = append(args, filtro.Desde)
		conds = append(conds, "fecha_inicio >= $"+strconv.Itoa(len(args)))
	}
	if !filtro.Hasta.IsZero() {
		args = append(args, filtro.Hasta)
		conds = append(conds, "fecha_inicio < $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	limit := filtro.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, filtro.Offset)
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reserva
	for rows.Next() {
		res, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// ListActivasPorDepartamento devuelve las reservas confirmadas o en curso del
// departamento, para el chequeo de solapamiento.
func (r *ReservaRepo) ListActivasPorDepartamento(departamentoID string) ([]*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + `
		FROM reservas
		WHERE departamento_id = $1 AND estado IN ($2, $3)
		ORDER BY fecha_inicio`
	rows, err := r.q.Query(context.Background(), query,
		departamentoID, entity.ReservaConfirmada, entity.ReservaEnCurso)
	if err != nil {
		return nil, fmt.Errorf("list reservas activas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reserva
	for rows.Next() {
		res, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// Update persiste estado, check-in/check-out y campos editables en una sola sentencia.
func (r *ReservaRepo) Update(reserva *entity.Reserva) error {
	checkIn, err := toJSON(reserva.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := toJSON(reserva.CheckOut)
	if err != nil {
		return err
	}
	query := `
		UPDATE reservas
		SET fecha_inicio           = $2,
		    fecha_fin              = $3,
		    numero_noches          = $4,
		    numero_huespedes       = $5,
		    subtotal               = $6,
		    descuento              = $7,
		    iva                    = $8,
		    recargo_feriado        = $9,
		    total                  = $10,
		    estado                 = $11,
		    check_in               = $12,
		    check_out              = $13,
		    observaciones          = $14,
		    solicitudes_especiales = $15,
		    updated_at             = $16
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		reserva.ID, reserva.FechaInicio, reserva.FechaFin,
		reserva.NumeroNoches, reserva.NumeroHuespedes,
		reserva.Subtotal, reserva.Descuento, reserva.IVA, reserva.RecargoFeriado, reserva.Total,
		reserva.Estado, checkIn, checkOut,
		nullIfEmpty(reserva.Observaciones), nullIfEmpty(reserva.SolicitudesEspeciales),
		reserva.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reserva: %w", err)
	}
	return nil
}

// Delete elimina la reserva.
func (r *ReservaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reservas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reserva: %w", err)
	}
	return nil
}

func (r *ReservaRepo) scanOne(row pgx.Row) (*entity.Reserva, error) {
	res, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (r *ReservaRepo) scan(row pgx.Row) (*entity.Reserva, error) {
	var res entity.Reserva
	var checkIn, checkOut []byte
	err := row.Scan(
		&res.ID, &res.CodigoReserva, &res.UsuarioID, &res.ClienteID, &res.DepartamentoID,
		&res.FechaInicio, &res.FechaFin, &res.NumeroNoches, &res.NumeroHuespedes,
		&res.PrecioNoche, &res.Subtotal, &res.Descuento, &res.EsFeriado,
		&res.IVA, &res.RecargoFeriado, &res.Total,
		&res.Estado, &checkIn, &checkOut,
		&res.Observaciones, &res.SolicitudesEspeciales,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan reserva: %w", err)
	}
	if err := fromJSON(checkIn, &res.CheckIn); err != nil {
		return nil, err
	}
	if err := fromJSON(checkOut, &res.CheckOut); err != nil {
		return nil, err
	}
	return &res, nil
}
