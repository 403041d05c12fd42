package repository

import (
	"time"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// FiltroLogs criterios opcionales para consultar la auditoría.
type FiltroLogs struct {
	UsuarioID string
	Accion    string
	Entidad   string
	Desde     time.Time
	Hasta     time.Time
	Limit     int
	Offset    int
}

// LogRepository puerto de persistencia para la auditoría.
// Solo inserción y lectura: los registros nunca se actualizan ni se borran.
type LogRepository interface {
	Create(log *entity.LogAuditoria) error
	List(filtro FiltroLogs) ([]*entity.LogAuditoria, error)
}
