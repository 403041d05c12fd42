package repository

import "github.com/paraisoverde/hotel-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCedula(cedula string) (*entity.Cliente, error)
	// GetByUsuario devuelve el cliente vinculado a esa cuenta, o nil si no existe.
	GetByUsuario(usuarioID string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	// IncrementarReservas suma 1 al contador y refresca es_frecuente en una sola sentencia.
	IncrementarReservas(id string) error
	Delete(id string) error
}
