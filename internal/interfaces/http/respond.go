package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
)

// responderError traduce un error de dominio al status HTTP y la envolvente
// {success: false, message}. Los errores no mapeados salen como 500.
func responderError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrFechasInvalidas):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrNoDisponible),
		errors.Is(err, domain.ErrFacturaExiste),
		errors.Is(err, domain.ErrCheckInRealizado),
		errors.Is(err, domain.ErrCheckOutRealizado),
		errors.Is(err, domain.ErrFacturaAnulada),
		errors.Is(err, domain.ErrFacturaPagada):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrCapacidadExcedida),
		errors.Is(err, domain.ErrMenorDeEdad),
		errors.Is(err, domain.ErrCheckInPendiente),
		errors.Is(err, domain.ErrSinSaldoPendiente):
		status = fiber.StatusUnprocessableEntity
	}
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(dto.FalloDetalle("error interno", err.Error()))
	}
	return c.Status(status).JSON(dto.Fallo(err.Error()))
}

// cuerpoInvalido respuesta estándar para un body que no parsea.
func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo de la petición inválido"))
}
