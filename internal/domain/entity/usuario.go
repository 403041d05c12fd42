package entity

import "time"

// Roles válidos para Usuario.
const (
	RolCliente = "cliente"
	RolAdmin   = "admin"
)

// Umbrales de negocio sobre la edad y la frecuencia del huésped.
const (
	EdadMinimaReserva = 18
	EdadTerceraEdad   = 65
	ReservasFrecuente = 5
)

// Usuario representa una cuenta del sistema (personal del hotel o huésped con acceso web).
type Usuario struct {
	ID                 string
	NombreUsuario      string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Nombres            string
	Apellidos          string
	Cedula             string
	FechaNacimiento    time.Time
	Telefono           string
	Direccion          string
	Rol                string // cliente, admin
	Activo             bool
	TwoFactorSecret    string // secreto TOTP base32; vacío = sin 2FA configurado
	TwoFactorEnabled   bool
	ReservasRealizadas int
	EsFrecuente        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Edad calcula la edad en años cumplidos a la fecha dada.
func Edad(fechaNacimiento, hoy time.Time) int {
	edad := hoy.Year() - fechaNacimiento.Year()
	if hoy.Month() < fechaNacimiento.Month() ||
		(hoy.Month() == fechaNacimiento.Month() && hoy.Day() < fechaNacimiento.Day()) {
		edad--
	}
	return edad
}

// Edad devuelve la edad actual del usuario.
func (u *Usuario) Edad() int {
	return Edad(u.FechaNacimiento, time.Now())
}

// EsTerceraEdad indica si el usuario tiene 65 años o más (exento de IVA y recargo feriado).
func (u *Usuario) EsTerceraEdad() bool {
	return u.Edad() >= EdadTerceraEdad
}

// EsMenorDeEdad indica si el usuario tiene menos de 18 años.
func (u *Usuario) EsMenorDeEdad() bool {
	return u.Edad() < EdadMinimaReserva
}

// ActualizarFrecuente recalcula la marca de cliente frecuente (5+ reservas).
func (u *Usuario) ActualizarFrecuente() {
	u.EsFrecuente = u.ReservasRealizadas >= ReservasFrecuente
}
