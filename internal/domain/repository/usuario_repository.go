package repository

import "github.com/paraisoverde/hotel-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	// FindByEmail devuelve el usuario con su PasswordHash y TwoFactorSecret (para login).
	FindByEmail(email string) (*entity.Usuario, error)
	// ExisteCredencial indica si ya hay un usuario con ese email, nombre de usuario o cédula.
	ExisteCredencial(email, nombreUsuario, cedula string) (bool, error)
	List(limit, offset int) ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	UpdateTwoFactor(id, secret string, enabled bool) error
	// IncrementarReservas suma 1 al contador y refresca es_frecuente en una sola sentencia.
	IncrementarReservas(id string) error
	Delete(id string) error
}
