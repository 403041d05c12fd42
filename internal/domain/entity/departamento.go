package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de departamento.
const (
	TipoIndividual   = "individual"
	TipoDoble        = "doble"
	TipoMatrimonial  = "matrimonial"
	TipoSuite        = "suite"
	TipoPresidencial = "presidencial"
)

// Estados de un departamento.
const (
	EstadoDisponible    = "disponible"
	EstadoOcupado       = "ocupado"
	EstadoMantenimiento = "mantenimiento"
	EstadoReservado     = "reservado"
)

// ImagenDepartamento referencia a una imagen subida al bucket.
// Clave es el identificador opaco en el almacén; se necesita para borrar.
type ImagenDepartamento struct {
	URL         string `json:"url"`
	Clave       string `json:"clave"`
	Descripcion string `json:"descripcion,omitempty"`
}

// Departamento es la unidad reservable del hotel.
type Departamento struct {
	ID                string
	Numero            string
	Tipo              string
	Descripcion       string
	Piso              int
	PrecioNoche       decimal.Decimal
	CapacidadPersonas int
	NumeroCamas       int
	Imagenes          []ImagenDepartamento
	Estado            string // disponible, ocupado, mantenimiento, reservado
	Observaciones     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TipoValido verifica que el tipo esté dentro del catálogo.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoIndividual, TipoDoble, TipoMatrimonial, TipoSuite, TipoPresidencial:
		return true
	}
	return false
}

// EstadoDepartamentoValido verifica que el estado esté dentro del catálogo.
func EstadoDepartamentoValido(estado string) bool {
	switch estado {
	case EstadoDisponible, EstadoOcupado, EstadoMantenimiento, EstadoReservado:
		return true
	}
	return false
}
