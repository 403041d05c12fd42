package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/analytics"
	"github.com/paraisoverde/hotel-api/internal/application/audit"
	"github.com/paraisoverde/hotel-api/internal/application/auth"
	"github.com/paraisoverde/hotel-api/internal/application/billing"
	"github.com/paraisoverde/hotel-api/internal/application/booking"
	"github.com/paraisoverde/hotel-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	ClienteUC      *usecase.ClienteUseCase
	DepartamentoUC *usecase.DepartamentoUseCase
	ReservaUC      *booking.ReservaUseCase
	FacturaUC      *billing.FacturaUseCase
	PagoUC         *billing.PagoUseCase
	PDFUC          *billing.PDFUseCase
	DashboardUC    *analytics.DashboardUseCase
	ReporteUC      *analytics.ReporteUseCase
	LogUC          *audit.LogUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuditMiddleware(deps.LogUC))

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.LogUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verify-2fa", authHandler.Verify2FA)

	// Webhook de la pasarela (público, autentica por firma)
	pagoHandler := NewPagoHandler(deps.PagoUC)
	api.Post("/pagos/webhook", pagoHandler.Webhook)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil y 2FA del usuario autenticado
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/enable-2fa", authHandler.Enable2FA)
	protected.Post("/auth/confirm-2fa", authHandler.Confirm2FA)
	protected.Post("/auth/disable-2fa", authHandler.Disable2FA)

	admin := protected.Group("/", RequireAdmin())

	// Usuarios (solo admin)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios := admin.Group("/usuarios")
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Clientes (solo admin)
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes := admin.Group("/clientes")
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Departamentos (lectura autenticada, escritura solo admin)
	departamentoHandler := NewDepartamentoHandler(deps.DepartamentoUC)
	reservaHandler := NewReservaHandler(deps.ReservaUC)
	departamentos := protected.Group("/departamentos")
	departamentos.Get("/", departamentoHandler.List)
	// "disponibles" se registra antes que ":id" para que no lo capture el parámetro
	departamentos.Get("/disponibles", reservaHandler.Disponibles)
	departamentos.Get("/:id", departamentoHandler.GetByID)
	depAdmin := admin.Group("/departamentos")
	depAdmin.Post("/", departamentoHandler.Create)
	depAdmin.Put("/:id", departamentoHandler.Update)
	depAdmin.Delete("/:id", departamentoHandler.Delete)
	depAdmin.Post("/:id/imagenes", departamentoHandler.SubirImagen)
	depAdmin.Delete("/:id/imagenes", departamentoHandler.EliminarImagen)

	// Reservas
	reservas := protected.Group("/reservas")
	reservas.Post("/", reservaHandler.Create)
	reservas.Get("/", reservaHandler.List)
	reservas.Get("/:id", reservaHandler.GetByID)
	// Actualizar y cancelar quedan abiertos a clientes; el caso de uso
	// restringe a las reservas propias.
	reservas.Put("/:id", reservaHandler.Update)
	reservas.Put("/:id/cancelar", reservaHandler.Cancelar)
	resAdmin := admin.Group("/reservas")
	resAdmin.Put("/:id/checkin", reservaHandler.CheckIn)
	resAdmin.Put("/:id/checkout", reservaHandler.CheckOut)
	resAdmin.Delete("/:id", reservaHandler.Delete)

	// Facturas
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.PDFUC)
	facturas := protected.Group("/facturas")
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Get("/:id/pdf", facturaHandler.DescargarPDF)
	facAdmin := admin.Group("/facturas")
	facAdmin.Post("/", facturaHandler.Create)
	facAdmin.Put("/:id/danos", facturaHandler.AgregarDanos)
	facAdmin.Put("/:id/pago", facturaHandler.RegistrarPago)
	facAdmin.Put("/:id/anular", facturaHandler.Anular)

	// Pagos con tarjeta (autenticado)
	pagos := protected.Group("/pagos")
	pagos.Post("/crear-intencion", pagoHandler.CrearIntencion)
	pagos.Post("/confirmar", pagoHandler.Confirmar)

	// Dashboard, reportes y auditoría (solo admin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard/estadisticas", dashboardHandler.Estadisticas)

	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes := admin.Group("/reportes")
	reportes.Get("/reservas", reporteHandler.Reservas)
	reportes.Get("/financiero", reporteHandler.Financiero)
	reportes.Get("/ocupacion", reporteHandler.Ocupacion)

	logHandler := NewLogHandler(deps.LogUC)
	admin.Get("/logs", logHandler.List)
}
