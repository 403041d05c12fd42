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

var _ repository.DepartamentoRepository = (*DepartamentoRepo)(nil)

// DepartamentoRepo implementación de DepartamentoRepository (usable con pool o tx).
type DepartamentoRepo struct {
	q Querier
}

// NewDepartamentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDepartamentoRepository(q Querier) *DepartamentoRepo {
	return &DepartamentoRepo{q: q}
}

const departamentoColumns = `id, numero, tipo, COALESCE(descripcion, ''), piso, precio_noche,
	       capacidad_personas, numero_camas, imagenes, estado,
	       COALESCE(observaciones, ''), created_at, updated_at`

// Create persiste un departamento nuevo.
func (r *DepartamentoRepo) Create(dep *entity.Departamento) error {
	if dep.ID == "" {
		dep.ID = uuid.New().String()
	}
	imagenes, err := toJSON(imagenesNoNil(dep.Imagenes))
	if err != nil {
		return err
	}
	query := `
		INSERT INTO departamentos (id, numero, tipo, descripcion, piso, precio_noche,
		                           capacidad_personas, numero_camas, imagenes, estado,
		                           observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		dep.ID, dep.Numero, dep.Tipo, nullIfEmpty(dep.Descripcion), dep.Piso, dep.PrecioNoche,
		dep.CapacidadPersonas, dep.NumeroCamas, imagenes, dep.Estado,
		nullIfEmpty(dep.Observaciones), dep.CreatedAt, dep.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert departamento: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID.
func (r *DepartamentoRepo) GetByID(id string) (*entity.Departamento, error) {
	query := `SELECT ` + departamentoColumns + ` FROM departamentos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate carga el departamento bloqueando su fila (SELECT ... FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *DepartamentoRepo) GetByIDForUpdate(id string) (*entity.Departamento, error) {
	query := `SELECT ` + departamentoColumns + ` FROM departamentos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNumero obtiene un departamento por su número.
func (r *DepartamentoRepo) GetByNumero(numero string) (*entity.Departamento, error) {
	query := `SELECT ` + departamentoColumns + ` FROM departamentos WHERE numero = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, numero))
}

// List devuelve departamentos con filtros opcionales, ordenados por número.
func (r *DepartamentoRepo) List(filtro repository.FiltroDepartamentos) ([]*entity.Departamento, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + departamentoColumns + ` FROM departamentos`)

	var conds []string
	var args []any
	if filtro.Tipo != "" {
		args = append(args, filtro.Tipo)
		conds = append(conds, "tipo = $"+strconv.Itoa(len(args)))
	}
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		conds = append(conds, "estado = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY numero")
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
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Departamento
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables del departamento, imágenes incluidas.
func (r *DepartamentoRepo) Update(dep *entity.Departamento) error {
	imagenes, err := toJSON(imagenesNoNil(dep.Imagenes))
	if err != nil {
		return err
	}
	query := `
		UPDATE departamentos
		SET numero             = $2,
		    tipo               = $3,
		    descripcion        = $4,
		    piso               = $5,
		    precio_noche       = $6,
		    capacidad_personas = $7,
		    numero_camas       = $8,
		    imagenes           = $9,
		    estado             = $10,
		    observaciones      = $11,
		    updated_at         = $12
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		dep.ID, dep.Numero, dep.Tipo, nullIfEmpty(dep.Descripcion), dep.Piso, dep.PrecioNoche,
		dep.CapacidadPersonas, dep.NumeroCamas, imagenes, dep.Estado,
		nullIfEmpty(dep.Observaciones), dep.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update departamento: %w", err)
	}
	return nil
}

// UpdateEstado cambia solo el estado del departamento.
func (r *DepartamentoRepo) UpdateEstado(id, estado string) error {
	query := `UPDATE departamentos SET estado = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, estado)
	if err != nil {
		return fmt.Errorf("update estado de departamento: %w", err)
	}
	return nil
}

// Delete elimina el departamento.
func (r *DepartamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM departamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete departamento: %w", err)
	}
	return nil
}

func (r *DepartamentoRepo) scanOne(row pgx.Row) (*entity.Departamento, error) {
	d, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *DepartamentoRepo) scan(row pgx.Row) (*entity.Departamento, error) {
	var d entity.Departamento
	var imagenes []byte
	err := row.Scan(
		&d.ID, &d.Numero, &d.Tipo, &d.Descripcion, &d.Piso, &d.PrecioNoche,
		&d.CapacidadPersonas, &d.NumeroCamas, &imagenes, &d.Estado,
		&d.Observaciones, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan departamento: %w", err)
	}
	if err := fromJSON(imagenes, &d.Imagenes); err != nil {
		return nil, err
	}
	return &d, nil
}

func imagenesNoNil(imgs []entity.ImagenDepartamento) []entity.ImagenDepartamento {
	if imgs == nil {
		return []entity.ImagenDepartamento{}
	}
	return imgs
}
