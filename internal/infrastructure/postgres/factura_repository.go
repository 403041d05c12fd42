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

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `id, numero_factura, reserva_id, cliente_id, fecha_emision,
	       subtotal, descuento_frecuente, otros_descuentos, iva, recargo_feriado, otros_recargos,
	       danos, total_danos, total, estado_pago, COALESCE(metodo_pago, ''), pagos,
	       COALESCE(observaciones, ''), created_at, updated_at`

// Create persiste la factura. El constraint único sobre reserva_id garantiza
// a lo más una factura por reserva; la violación se reporta como ErrDuplicate.
func (r *FacturaRepo) Create(factura *entity.Factura) error {
	if factura.ID == "" {
		factura.ID = uuid.New().String()
	}
	danos, err := toJSON(danosNoNil(factura.Danos))
	if err != nil {
		return err
	}
	pagos, err := toJSON(pagosNoNil(factura.Pagos))
	if err != nil {
		return err
	}
	query := `
		INSERT INTO facturas (id, numero_factura, reserva_id, cliente_id, fecha_emision,
		                      subtotal, descuento_frecuente, otros_descuentos, iva,
		                      recargo_feriado, otros_recargos, danos, total_danos, total,
		                      estado_pago, metodo_pago, pagos, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = r.q.Exec(context.Background(), query,
		factura.ID, factura.NumeroFactura, factura.ReservaID, factura.ClienteID, factura.FechaEmision,
		factura.Subtotal, factura.DescuentoFrecuente, factura.OtrosDescuentos, factura.IVA,
		factura.RecargoFeriado, factura.OtrosRecargos, danos, factura.TotalDanos, factura.Total,
		factura.EstadoPago, nullIfEmpty(factura.MetodoPago), pagos,
		nullIfEmpty(factura.Observaciones), factura.CreatedAt, factura.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByReserva obtiene la factura de una reserva, o nil si aún no se emitió.
func (r *FacturaRepo) GetByReserva(reservaID string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE reserva_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, reservaID))
}

// List devuelve facturas con filtros opcionales, las más recientes primero.
func (r *FacturaRepo) List(filtro repository.FiltroFacturas) ([]*entity.Factura, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + facturaColumns + ` FROM facturas`)

	var conds []string
	var args []any
	if filtro.ClienteID != "" {
		args = append(args, filtro.ClienteID)
		conds = append(conds, "cliente_id = $"+strconv.Itoa(len(args)))
	}
	if filtro.EstadoPago != "" {
		args = append(args, filtro.EstadoPago)
		conds = append(conds, "estado_pago = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY fecha_emision DESC")
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
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		f, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Update persiste daños, pagos, totales y estado de pago en una sola sentencia.
func (r *FacturaRepo) Update(factura *entity.Factura) error {
	danos, err := toJSON(danosNoNil(factura.Danos))
	if err != nil {
		return err
	}
	pagos, err := toJSON(pagosNoNil(factura.Pagos))
	if err != nil {
		return err
	}
	query := `
		UPDATE facturas
		SET otros_descuentos = $2,
		    otros_recargos   = $3,
		    danos            = $4,
		    total_danos      = $5,
		    total            = $6,
		    estado_pago      = $7,
		    metodo_pago      = $8,
		    pagos            = $9,
		    observaciones    = $10,
		    updated_at       = $11
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		factura.ID, factura.OtrosDescuentos, factura.OtrosRecargos,
		danos, factura.TotalDanos, factura.Total,
		factura.EstadoPago, nullIfEmpty(factura.MetodoPago), pagos,
		nullIfEmpty(factura.Observaciones), factura.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

func (r *FacturaRepo) scanOne(row pgx.Row) (*entity.Factura, error) {
	f, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return f, nil
}

func (r *FacturaRepo) scan(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	var danos, pagos []byte
	err := row.Scan(
		&f.ID, &f.NumeroFactura, &f.ReservaID, &f.ClienteID, &f.FechaEmision,
		&f.Subtotal, &f.DescuentoFrecuente, &f.OtrosDescuentos, &f.IVA,
		&f.RecargoFeriado, &f.OtrosRecargos,
		&danos, &f.TotalDanos, &f.Total,
		&f.EstadoPago, &f.MetodoPago, &pagos,
		&f.Observaciones, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan factura: %w", err)
	}
	if err := fromJSON(danos, &f.Danos); err != nil {
		return nil, err
	}
	if err := fromJSON(pagos, &f.Pagos); err != nil {
		return nil, err
	}
	return &f, nil
}

func danosNoNil(d []entity.Dano) []entity.Dano {
	if d == nil {
		return []entity.Dano{}
	}
	return d
}

func pagosNoNil(p []entity.Pago) []entity.Pago {
	if p == nil {
		return []entity.Pago{}
	}
	return p
}
