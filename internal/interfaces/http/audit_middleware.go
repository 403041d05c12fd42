package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/audit"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// AuditMiddleware registra en la auditoría toda petición que muta estado
// (POST, PUT, PATCH, DELETE). Corre después del handler para conocer el
// resultado; la escritura es best effort dentro del caso de uso.
func AuditMiddleware(logUC *audit.LogUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		default:
			return err
		}

		status := c.Response().StatusCode()
		entrada := audit.Entrada{
			UsuarioID: GetUserID(c),
			Accion:    accionPorMetodo(c.Method()),
			Entidad:   entidadDeRuta(c),
			EntidadID: c.Params("id"),
			IP:        c.IP(),
			UserAgent: c.Get("User-Agent"),
			Metodo:    c.Method(),
			Ruta:      c.Path(),
			Exitoso:   status < 400,
		}
		if !entrada.Exitoso && err != nil {
			entrada.ErrorMensaje = err.Error()
		}
		logUC.Registrar(entrada)
		return err
	}
}

func accionPorMetodo(metodo string) string {
	switch metodo {
	case fiber.MethodPost:
		return entity.AccionCreate
	case fiber.MethodPut, fiber.MethodPatch:
		return entity.AccionUpdate
	case fiber.MethodDelete:
		return entity.AccionDelete
	}
	return entity.AccionRead
}

// entidadDeRuta deduce la entidad del primer segmento después de /api.
func entidadDeRuta(c *fiber.Ctx) string {
	path := c.Path()
	const prefix = "/api/"
	if len(path) <= len(prefix) {
		return ""
	}
	rest := path[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' {
			return rest[:i]
		}
	}
	return rest
}
