package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paraisoverde/hotel-api/internal/domain/booking"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// dia construye una fecha determinista para los tests: día N de enero 2026.
func dia(n int) time.Time {
	return time.Date(2026, time.January, n, 0, 0, 0, 0, time.UTC)
}

func reservaActiva(inicio, fin int) *entity.Reserva {
	return &entity.Reserva{
		FechaInicio: dia(inicio),
		FechaFin:    dia(fin),
		Estado:      entity.ReservaConfirmada,
	}
}

// [10,12) y [12,15) se tocan en el borde: no hay conflicto (semiabierto).
func TestSolapan_EspaldaConEspaldaNoChocan(t *testing.T) {
	assert.False(t, booking.Solapan(dia(10), dia(12), dia(12), dia(15)),
		"una reserva que termina el día 12 no choca con otra que empieza el 12")
	assert.False(t, booking.Solapan(dia(12), dia(15), dia(10), dia(12)))
}

// [10,12) y [11,13) comparten la noche del 11: conflicto.
func TestSolapan_IntervalosSolapados(t *testing.T) {
	assert.True(t, booking.Solapan(dia(10), dia(12), dia(11), dia(13)))
	assert.True(t, booking.Solapan(dia(11), dia(13), dia(10), dia(12)))
}

// Un intervalo contenido dentro de otro choca en ambas direcciones.
func TestSolapan_Contenido(t *testing.T) {
	assert.True(t, booking.Solapan(dia(1), dia(30), dia(10), dia(12)))
	assert.True(t, booking.Solapan(dia(10), dia(12), dia(1), dia(30)))
}

func TestDisponible_SinReservas(t *testing.T) {
	dep := &entity.Departamento{Estado: entity.EstadoDisponible}
	assert.True(t, booking.Disponible(dep, nil, dia(10), dia(12)))
}

func TestDisponible_ConflictoConReservaActiva(t *testing.T) {
	dep := &entity.Departamento{Estado: entity.EstadoDisponible}
	existentes := []*entity.Reserva{reservaActiva(11, 13)}

	assert.False(t, booking.Disponible(dep, existentes, dia(10), dia(12)))
}

func TestDisponible_ReservaEspaldaConEspalda(t *testing.T) {
	dep := &entity.Departamento{Estado: entity.EstadoReservado}
	existentes := []*entity.Reserva{reservaActiva(10, 12)}

	assert.True(t, booking.Disponible(dep, existentes, dia(12), dia(15)),
		"reservas espalda con espalda deben ser compatibles")
}

// Las reservas canceladas y completadas no bloquean el intervalo.
func TestDisponible_IgnoraReservasInactivas(t *testing.T) {
	dep := &entity.Departamento{Estado: entity.EstadoDisponible}
	cancelada := reservaActiva(10, 12)
	cancelada.Estado = entity.ReservaCancelada
	completada := reservaActiva(11, 14)
	completada.Estado = entity.ReservaCompletada

	assert.True(t, booking.Disponible(dep, []*entity.Reserva{cancelada, completada}, dia(10), dia(12)))
}

// Un departamento en mantenimiento nunca está disponible, aun sin reservas.
func TestDisponible_Mantenimiento(t *testing.T) {
	dep := &entity.Departamento{Estado: entity.EstadoMantenimiento}
	assert.False(t, booking.Disponible(dep, nil, dia(10), dia(12)))
}

// Una reserva en curso bloquea igual que una confirmada.
func TestDisponible_EnCursoBloquea(t *testing.T) {
	dep := &entity.Departamento{Estado: entity.EstadoOcupado}
	enCurso := reservaActiva(9, 11)
	enCurso.Estado = entity.ReservaEnCurso

	assert.False(t, booking.Disponible(dep, []*entity.Reserva{enCurso}, dia(10), dia(12)))
}
