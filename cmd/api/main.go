package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/paraisoverde/hotel-api/internal/application/analytics"
	"github.com/paraisoverde/hotel-api/internal/application/audit"
	"github.com/paraisoverde/hotel-api/internal/application/auth"
	"github.com/paraisoverde/hotel-api/internal/application/billing"
	"github.com/paraisoverde/hotel-api/internal/application/booking"
	"github.com/paraisoverde/hotel-api/internal/application/usecase"
	"github.com/paraisoverde/hotel-api/internal/domain/pricing"
	infrapdf "github.com/paraisoverde/hotel-api/internal/infrastructure/pdf"
	"github.com/paraisoverde/hotel-api/internal/infrastructure/payments"
	"github.com/paraisoverde/hotel-api/internal/infrastructure/postgres"
	"github.com/paraisoverde/hotel-api/internal/infrastructure/storage"
	httpRouter "github.com/paraisoverde/hotel-api/internal/interfaces/http"
	"github.com/paraisoverde/hotel-api/pkg/config"
	"github.com/paraisoverde/hotel-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	departamentoRepo := postgres.NewDepartamentoRepository(pool)
	reservaRepo := postgres.NewReservaRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	almacen, err := storage.NewS3Bucket(ctx, cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar bucket S3")
	}
	pasarela := payments.NewStripeClient(cfg.Stripe)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	tarifas := pricing.Tarifas{
		DescuentoFrecuente: cfg.Tarifas.DescuentoFrecuente,
		IVA:                cfg.Tarifas.IVA,
		RecargoFeriado:     cfg.Tarifas.RecargoFeriado,
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	departamentoUC := usecase.NewDepartamentoUseCase(departamentoRepo, almacen)
	facturaUC := billing.NewFacturaUseCase(facturaRepo, reservaRepo, clienteRepo)
	reservaUC := booking.NewReservaUseCase(
		txRunner, reservaRepo, departamentoRepo, clienteRepo,
		facturaUC, tarifas, log,
	)
	pagoUC := billing.NewPagoUseCase(facturaRepo, facturaUC, pasarela, "", log)
	pdfUC := billing.NewPDFUseCase(
		facturaRepo, reservaRepo, clienteRepo, departamentoRepo, pdfGenerator,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	reporteUC := appanalytics.NewReporteUseCase(analyticsRepo, reservaRepo)
	logUC := audit.NewLogUseCase(logRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UsuarioUC:      usuarioUC,
		ClienteUC:      clienteUC,
		DepartamentoUC: departamentoUC,
		ReservaUC:      reservaUC,
		FacturaUC:      facturaUC,
		PagoUC:         pagoUC,
		PDFUC:          pdfUC,
		DashboardUC:    dashboardUC,
		ReporteUC:      reporteUC,
		LogUC:          logUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
