package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva. Las reservas nacen confirmadas: el valor
// "pendiente" del sistema anterior era inalcanzable y se eliminó del catálogo.
const (
	ReservaConfirmada = "confirmada"
	ReservaEnCurso    = "en-curso"
	ReservaCompletada = "completada"
	ReservaCancelada  = "cancelada"
)

// RegistroCheck sub-registro de check-in o check-out.
type RegistroCheck struct {
	Realizado    bool      `json:"realizado"`
	Fecha        time.Time `json:"fecha,omitempty"`
	RealizadoPor string    `json:"realizadoPor,omitempty"` // ID del Usuario que lo efectuó
}

// Reserva es el intervalo reservado de un departamento por un cliente,
// con su desglose de precios calculado al crearla.
// Invariante: dos reservas en estado confirmada/en-curso sobre el mismo
// departamento nunca tienen intervalos [FechaInicio, FechaFin) solapados.
type Reserva struct {
	ID                    string
	CodigoReserva         string
	UsuarioID             string
	ClienteID             string
	DepartamentoID        string
	FechaInicio           time.Time
	FechaFin              time.Time
	NumeroNoches          int
	NumeroHuespedes       int
	PrecioNoche           decimal.Decimal
	Subtotal              decimal.Decimal // tras descuento de cliente frecuente
	Descuento             decimal.Decimal
	EsFeriado             bool
	IVA                   decimal.Decimal
	RecargoFeriado        decimal.Decimal
	Total                 decimal.Decimal
	Estado                string
	CheckIn               RegistroCheck
	CheckOut              RegistroCheck
	Observaciones         string
	SolicitudesEspeciales string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Noches calcula el número de noches como techo de la diferencia en días.
func Noches(inicio, fin time.Time) int {
	horas := fin.Sub(inicio).Hours()
	noches := int(horas / 24)
	if horas > float64(noches)*24 {
		noches++
	}
	return noches
}

// Activa indica si la reserva ocupa el departamento (bloquea otras reservas).
func (r *Reserva) Activa() bool {
	return r.Estado == ReservaConfirmada || r.Estado == ReservaEnCurso
}
