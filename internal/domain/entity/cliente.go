package entity

import "time"

// Cliente representa un huésped facturable del hotel.
// Puede existir sin cuenta de Usuario (reservas hechas en recepción)
// o estar vinculado a una vía UsuarioAsociado.
type Cliente struct {
	ID                 string
	Nombres            string
	Apellidos          string
	Cedula             string
	FechaNacimiento    time.Time
	Email              string
	Telefono           string
	Direccion          string
	Nacionalidad       string
	ReservasRealizadas int
	EsFrecuente        bool
	UsuarioAsociado    string // ID de Usuario; vacío si no tiene cuenta
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Edad devuelve la edad actual del cliente.
func (c *Cliente) Edad() int {
	return Edad(c.FechaNacimiento, time.Now())
}

// EsTerceraEdad indica si el cliente tiene 65 años o más.
func (c *Cliente) EsTerceraEdad() bool {
	return c.Edad() >= EdadTerceraEdad
}

// EsMenorDeEdad indica si el cliente tiene menos de 18 años.
func (c *Cliente) EsMenorDeEdad() bool {
	return c.Edad() < EdadMinimaReserva
}

// ActualizarFrecuente recalcula la marca de cliente frecuente (5+ reservas).
func (c *Cliente) ActualizarFrecuente() {
	c.EsFrecuente = c.ReservasRealizadas >= ReservasFrecuente
}
