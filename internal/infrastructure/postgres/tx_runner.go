package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paraisoverde/hotel-api/internal/application/booking"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

var _ booking.ReservaTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReserva inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El bloqueo de fila de GetByIDForUpdate vive dentro de esta
// transacción, así dos reservas concurrentes sobre el mismo departamento se
// serializan.
func (r *TxRunner) RunReserva(ctx context.Context, fn func(
	depRepo repository.DepartamentoRepository,
	reservaRepo repository.ReservaRepository,
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	depRepo := NewDepartamentoRepository(tx)
	reservaRepo := NewReservaRepository(tx)
	clienteRepo := NewClienteRepository(tx)
	usuarioRepo := NewUsuarioRepository(tx)

	if err := fn(depRepo, reservaRepo, clienteRepo, usuarioRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
