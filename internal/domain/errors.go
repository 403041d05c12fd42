package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	ErrNoDisponible       = errors.New("departamento no disponible para esas fechas")
	ErrCapacidadExcedida  = errors.New("número de huéspedes excede la capacidad del departamento")
	ErrMenorDeEdad        = errors.New("no se pueden realizar reservas para menores de edad")
	ErrFechasInvalidas    = errors.New("rango de fechas inválido")
	ErrCheckInPendiente   = errors.New("debe realizar check-in primero")
	ErrCheckInRealizado   = errors.New("check-in ya realizado")
	ErrCheckOutRealizado  = errors.New("check-out ya realizado")
	ErrFacturaExiste      = errors.New("ya existe una factura para esta reserva")
	ErrFacturaAnulada     = errors.New("la factura está anulada")
	ErrFacturaPagada      = errors.New("la factura ya está pagada")
	ErrSinSaldoPendiente  = errors.New("la factura no tiene saldo pendiente")
)
