package booking

import (
	"context"

	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

// ReservaTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La verificación de disponibilidad y el INSERT
// de la reserva ocurren en la misma transacción, con la fila del departamento
// bloqueada vía GetByIDForUpdate, de modo que dos peticiones concurrentes por
// las mismas fechas nunca se confirmen ambas.
type ReservaTxRunner interface {
	RunReserva(ctx context.Context, fn func(
		depRepo repository.DepartamentoRepository,
		reservaRepo repository.ReservaRepository,
		clienteRepo repository.ClienteRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

// Facturador genera la factura de una reserva (implementado por billing).
// Devuelve domain.ErrFacturaExiste si la reserva ya tiene factura.
type Facturador interface {
	CrearDesdeReserva(reservaID string) (*dto.FacturaResponse, error)
}
