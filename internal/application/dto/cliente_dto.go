package dto

import "time"

// CrearClienteRequest body para POST /api/clientes (y clienteNuevo al reservar).
type CrearClienteRequest struct {
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Cedula          string `json:"cedula"`
	FechaNacimiento string `json:"fechaNacimiento"` // formato 2006-01-02
	Email           string `json:"email"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion,omitempty"`
	Nacionalidad    string `json:"nacionalidad,omitempty"`
}

// ActualizarClienteRequest body para PUT /api/clientes/:id; campos vacíos no se tocan.
type ActualizarClienteRequest struct {
	Nombres      string `json:"nombres,omitempty"`
	Apellidos    string `json:"apellidos,omitempty"`
	Email        string `json:"email,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
	Nacionalidad string `json:"nacionalidad,omitempty"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID                 string    `json:"id"`
	Nombres            string    `json:"nombres"`
	Apellidos          string    `json:"apellidos"`
	Cedula             string    `json:"cedula"`
	FechaNacimiento    time.Time `json:"fechaNacimiento"`
	Email              string    `json:"email"`
	Telefono           string    `json:"telefono"`
	Direccion          string    `json:"direccion,omitempty"`
	Nacionalidad       string    `json:"nacionalidad,omitempty"`
	ReservasRealizadas int       `json:"reservasRealizadas"`
	EsFrecuente        bool      `json:"esFrecuente"`
	Edad               int       `json:"edad"`
}
