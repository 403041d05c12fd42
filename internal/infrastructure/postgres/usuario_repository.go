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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id, nombre_usuario, email, password_hash, nombres, apellidos, cedula,
	       fecha_nacimiento, telefono, direccion, rol, activo,
	       COALESCE(two_factor_secret, ''), two_factor_enabled,
	       reservas_realizadas, es_frecuente, created_at, updated_at`

// Create persiste un usuario nuevo.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	if usuario.ID == "" {
		usuario.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usuarios (id, nombre_usuario, email, password_hash, nombres, apellidos, cedula,
		                      fecha_nacimiento, telefono, direccion, rol, activo,
		                      two_factor_secret, two_factor_enabled,
		                      reservas_realizadas, es_frecuente, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.NombreUsuario, usuario.Email, usuario.PasswordHash,
		usuario.Nombres, usuario.Apellidos, usuario.Cedula,
		usuario.FechaNacimiento, usuario.Telefono, usuario.Direccion,
		usuario.Rol, usuario.Activo,
		nullIfEmpty(usuario.TwoFactorSecret), usuario.TwoFactorEnabled,
		usuario.ReservasRealizadas, usuario.EsFrecuente,
		usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByEmail obtiene un usuario por email, con hash de password y secreto 2FA (para login).
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

// ExisteCredencial indica si ya hay un usuario con ese email, nombre de usuario o cédula.
func (r *UsuarioRepo) ExisteCredencial(email, nombreUsuario, cedula string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM usuarios
			WHERE email = $1 OR nombre_usuario = $2 OR cedula = $3
		)`
	var existe bool
	err := r.q.QueryRow(context.Background(), query, email, nombreUsuario, cedula).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("verificar credencial: %w", err)
	}
	return existe, nil
}

// List devuelve usuarios paginados, los más recientes primero.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables del usuario.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET nombres    = $2,
		    apellidos  = $3,
		    telefono   = $4,
		    direccion  = $5,
		    rol        = $6,
		    activo     = $7,
		    updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nombres, usuario.Apellidos, usuario.Telefono,
		usuario.Direccion, usuario.Rol, usuario.Activo, usuario.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// UpdateTwoFactor guarda el secreto TOTP y su estado de habilitación.
func (r *UsuarioRepo) UpdateTwoFactor(id, secret string, enabled bool) error {
	query := `
		UPDATE usuarios
		SET two_factor_secret  = $2,
		    two_factor_enabled = $3,
		    updated_at         = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, nullIfEmpty(secret), enabled)
	if err != nil {
		return fmt.Errorf("update two factor: %w", err)
	}
	return nil
}

// IncrementarReservas suma 1 al contador y refresca es_frecuente en una sola sentencia.
func (r *UsuarioRepo) IncrementarReservas(id string) error {
	query := `
		UPDATE usuarios
		SET reservas_realizadas = reservas_realizadas + 1,
		    es_frecuente        = reservas_realizadas + 1 >= $2,
		    updated_at          = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.ReservasFrecuente)
	if err != nil {
		return fmt.Errorf("incrementar reservas de usuario: %w", err)
	}
	return nil
}

// Delete elimina el usuario.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	u, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UsuarioRepo) scan(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.NombreUsuario, &u.Email, &u.PasswordHash,
		&u.Nombres, &u.Apellidos, &u.Cedula,
		&u.FechaNacimiento, &u.Telefono, &u.Direccion,
		&u.Rol, &u.Activo,
		&u.TwoFactorSecret, &u.TwoFactorEnabled,
		&u.ReservasRealizadas, &u.EsFrecuente,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	return &u, nil
}
