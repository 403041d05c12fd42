package repository

import (
	"time"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// FiltroReservas criterios opcionales de listado; campos cero ignoran el filtro.
type FiltroReservas struct {
	UsuarioID      string
	DepartamentoID string
	Estado         string
	Desde          time.Time
	Hasta          time.Time
	Limit          int
	Offset         int
}

// ReservaRepository define el puerto de persistencia para Reserva.
type ReservaRepository interface {
	Create(reserva *entity.Reserva) error
	GetByID(id string) (*entity.Reserva, error)
	List(filtro FiltroReservas) ([]*entity.Reserva, error)
	// ListActivasPorDepartamento devuelve las reservas confirmadas o en curso
	// del departamento, para el chequeo de solapamiento.
	ListActivasPorDepartamento(departamentoID string) ([]*entity.Reserva, error)
	Update(reserva *entity.Reserva) error
	Delete(id string) error
}
