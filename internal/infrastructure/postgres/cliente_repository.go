package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, nombres, apellidos, cedula, fecha_nacimiento,
	       COALESCE(email, ''), COALESCE(telefono, ''), COALESCE(direccion, ''),
	       COALESCE(nacionalidad, ''), reservas_realizadas, es_frecuente,
	       COALESCE(usuario_asociado, ''), created_at, updated_at`

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clientes (id, nombres, apellidos, cedula, fecha_nacimiento, email, telefono,
		                      direccion, nacionalidad, reservas_realizadas, es_frecuente,
		                      usuario_asociado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombres, cliente.Apellidos, cliente.Cedula, cliente.FechaNacimiento,
		nullIfEmpty(cliente.Email), nullIfEmpty(cliente.Telefono), nullIfEmpty(cliente.Direccion),
		nullIfEmpty(cliente.Nacionalidad), cliente.ReservasRealizadas, cliente.EsFrecuente,
		nullIfEmpty(cliente.UsuarioAsociado), cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCedula obtiene un cliente por cédula.
func (r *ClienteRepo) GetByCedula(cedula string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE cedula = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, cedula))
}

// GetByUsuario devuelve el cliente vinculado a esa cuenta, o nil si no existe.
func (r *ClienteRepo) GetByUsuario(usuarioID string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE usuario_asociado = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, usuarioID))
}

// List devuelve clientes paginados, los más recientes primero.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto del cliente (cédula y fecha de nacimiento no se editan).
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombres      = $2,
		    apellidos    = $3,
		    email        = $4,
		    telefono     = $5,
		    direccion    = $6,
		    nacionalidad = $7,
		    updated_at   = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombres, cliente.Apellidos,
		nullIfEmpty(cliente.Email), nullIfEmpty(cliente.Telefono),
		nullIfEmpty(cliente.Direccion), nullIfEmpty(cliente.Nacionalidad),
		cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// IncrementarReservas suma 1 al contador y refresca es_frecuente en una sola sentencia.
func (r *ClienteRepo) IncrementarReservas(id string) error {
	query := `
		UPDATE clientes
		SET reservas_realizadas = reservas_realizadas + 1,
		    es_frecuente        = reservas_realizadas + 1 >= $2,
		    updated_at          = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.ReservasFrecuente)
	if err != nil {
		return fmt.Errorf("incrementar reservas de cliente: %w", err)
	}
	return nil
}

// Delete elimina el cliente.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) scanOne(row pgx.Row) (*entity.Cliente, error) {
	c, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *ClienteRepo) scan(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.Nombres, &c.Apellidos, &c.Cedula, &c.FechaNacimiento,
		&c.Email, &c.Telefono, &c.Direccion,
		&c.Nacionalidad, &c.ReservasRealizadas, &c.EsFrecuente,
		&c.UsuarioAsociado, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan cliente: %w", err)
	}
	return &c, nil
}
