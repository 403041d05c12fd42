package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo implementación de LogRepository. La tabla es de solo inserción.
type LogRepo struct {
	q Querier
}

// NewLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Create inserta un registro de auditoría.
func (r *LogRepo) Create(log *entity.LogAuditoria) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	detalles, err := toJSON(log.Detalles)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO logs_auditoria (id, usuario_id, accion, entidad, entidad_id, ip, user_agent,
		                            metodo, ruta, descripcion, detalles, exitoso, error_mensaje, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		log.ID, nullIfEmpty(log.UsuarioID), log.Accion,
		nullIfEmpty(log.Entidad), nullIfEmpty(log.EntidadID),
		nullIfEmpty(log.IP), nullIfEmpty(log.UserAgent),
		nullIfEmpty(log.Metodo), nullIfEmpty(log.Ruta),
		nullIfEmpty(log.Descripcion), detalles,
		log.Exitoso, nullIfEmpty(log.ErrorMensaje), log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// List devuelve registros de auditoría con filtros opcionales, los más recientes primero.
func (r *LogRepo) List(filtro repository.FiltroLogs) ([]*entity.LogAuditoria, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, COALESCE(usuario_id, ''), accion, COALESCE(entidad, ''), COALESCE(entidad_id, ''),
		       COALESCE(ip, ''), COALESCE(user_agent, ''), COALESCE(metodo, ''), COALESCE(ruta, ''),
		       COALESCE(descripcion, ''), detalles, exitoso, COALESCE(error_mensaje, ''), created_at
		FROM logs_auditoria`)

	var conds []string
	var args []any
	if filtro.UsuarioID != "" {
		args = append(args, filtro.UsuarioID)
		conds = append(conds, "usuario_id = $"+strconv.Itoa(len(args)))
	}
	if filtro.Accion != "" {
		args = append(args, filtro.Accion)
		conds = append(conds, "accion = $"+strconv.Itoa(len(args)))
	}
	if filtro.Entidad != "" {
		args = append(args, filtro.Entidad)
		conds = append(conds, "entidad = $"+strconv.Itoa(len(args)))
	}
	if !filtro.Desde.IsZero() {
		args = append(args, filtro.Desde)
		conds = append(conds, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if !filtro.Hasta.IsZero() {
		args = append(args, filtro.Hasta)
		conds = append(conds, "created_at < $"+strconv.Itoa(len(args)))
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
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.LogAuditoria
	for rows.Next() {
		var l entity.LogAuditoria
		var detalles []byte
		if err := rows.Scan(
			&l.ID, &l.UsuarioID, &l.Accion, &l.Entidad, &l.EntidadID,
			&l.IP, &l.UserAgent, &l.Metodo, &l.Ruta,
			&l.Descripcion, &detalles, &l.Exitoso, &l.ErrorMensaje, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		if err := fromJSON(detalles, &l.Detalles); err != nil {
			return nil, err
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
