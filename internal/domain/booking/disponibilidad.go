// Package booking contiene el predicado de disponibilidad de departamentos.
//
// Los intervalos de reserva son semiabiertos [inicio, fin): dos reservas que
// se tocan en el borde (una termina el día que la otra empieza) NO chocan,
// lo que permite reservas espalda con espalda.
package booking

import (
	"time"

	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// Solapan indica si los intervalos semiabiertos [aInicio, aFin) y
// [bInicio, bFin) se intersectan.
func Solapan(aInicio, aFin, bInicio, bFin time.Time) bool {
	return aInicio.Before(bFin) && aFin.After(bInicio)
}

// Disponible evalúa si un departamento puede reservarse en [inicio, fin):
// el departamento no está en mantenimiento y ninguna reserva activa
// (confirmada o en curso) sobre él se solapa con el intervalo candidato.
// El caller pasa las reservas existentes del departamento; las completadas
// y canceladas se ignoran aunque vengan en la lista.
func Disponible(dep *entity.Departamento, existentes []*entity.Reserva, inicio, fin time.Time) bool {
	if dep.Estado == entity.EstadoMantenimiento {
		return false
	}
	for _, r := range existentes {
		if !r.Activa() {
			continue
		}
		if Solapan(r.FechaInicio, r.FechaFin, inicio, fin) {
			return false
		}
	}
	return true
}
