package dto

import (
	"github.com/shopspring/decimal"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// CrearDepartamentoRequest body para POST /api/departamentos.
type CrearDepartamentoRequest struct {
	Numero            string          `json:"numero"`
	Tipo              string          `json:"tipo"`
	Descripcion       string          `json:"descripcion,omitempty"`
	Piso              int             `json:"piso"`
	PrecioNoche       decimal.Decimal `json:"precioNoche"`
	CapacidadPersonas int             `json:"capacidadPersonas"`
	NumeroCamas       int             `json:"numeroCamas"`
	Observaciones     string          `json:"observaciones,omitempty"`
}

// ActualizarDepartamentoRequest body para PUT /api/departamentos/:id.
// Punteros distinguen "no enviado" de "valor cero".
type ActualizarDepartamentoRequest struct {
	Tipo              *string          `json:"tipo,omitempty"`
	Descripcion       *string          `json:"descripcion,omitempty"`
	PrecioNoche       *decimal.Decimal `json:"precioNoche,omitempty"`
	CapacidadPersonas *int             `json:"capacidadPersonas,omitempty"`
	NumeroCamas       *int             `json:"numeroCamas,omitempty"`
	Estado            *string          `json:"estado,omitempty"`
	Observaciones     *string          `json:"observaciones,omitempty"`
}

// DepartamentoResponse departamento en respuestas.
type DepartamentoResponse struct {
	ID                string                      `json:"id"`
	Numero            string                      `json:"numero"`
	Tipo              string                      `json:"tipo"`
	Descripcion       string                      `json:"descripcion,omitempty"`
	Piso              int                         `json:"piso"`
	PrecioNoche       decimal.Decimal             `json:"precioNoche"`
	CapacidadPersonas int                         `json:"capacidadPersonas"`
	NumeroCamas       int                         `json:"numeroCamas"`
	Imagenes          []entity.ImagenDepartamento `json:"imagenes,omitempty"`
	Estado            string                      `json:"estado"`
	Observaciones     string                      `json:"observaciones,omitempty"`
}
