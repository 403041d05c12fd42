package repository

import "github.com/paraisoverde/hotel-api/internal/domain/entity"

// FiltroFacturas criterios opcionales de listado.
type FiltroFacturas struct {
	ClienteID  string
	EstadoPago string
	Limit      int
	Offset     int
}

// FacturaRepository define el puerto de persistencia para Factura.
type FacturaRepository interface {
	// Create persiste la factura. Retorna domain.ErrDuplicate si ya existe
	// una factura para la misma reserva (constraint único sobre reserva_id).
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	GetByReserva(reservaID string) (*entity.Factura, error)
	List(filtro FiltroFacturas) ([]*entity.Factura, error)
	// Update persiste daños, pagos, totales y estado de pago en una sola sentencia.
	Update(factura *entity.Factura) error
}
