package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/ganaderia-aureo/pupilaje-api/docs"
	appanalytics "github.com/ganaderia-aureo/pupilaje-api/internal/application/analytics"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/usecase"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/infrastructure/export"
	infrapdf "github.com/ganaderia-aureo/pupilaje-api/internal/infrastructure/pdf"
	"github.com/ganaderia-aureo/pupilaje-api/internal/infrastructure/postgres"
	httpRouter "github.com/ganaderia-aureo/pupilaje-api/internal/interfaces/http"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/config"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/logger"
)

// @title                       Pupilaje API
// @version                     1.0
// @description                 Gestión de clientes, animales en pupilaje y facturación mensual.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	clientRepo := postgres.NewClientRepository(pool)
	animalRepo := postgres.NewAnimalRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Documentos: factura A4 y listado de animales (PDF/XLSX)
	invoicePDF := infrapdf.NewInvoiceGenerator(time.Now)
	rosterPDF := infrapdf.NewRosterGenerator(time.Now)
	rosterXLSX := export.NewXLSXRoster()

	settingsUC := usecase.NewSettingsUseCase(settingsRepo, entity.IssuerSettings{
		FiscalName: cfg.Issuer.FiscalName,
		NIF:        cfg.Issuer.NIF,
		Address:    cfg.Issuer.Address,
		Phone:      cfg.Issuer.Phone,
		Email:      cfg.Issuer.Email,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	animalUC := usecase.NewAnimalUseCase(animalRepo, clientRepo, rosterXLSX, rosterPDF)

	billingLog := log.Component("billing")
	draftUC := billing.NewDraftUseCase(clientRepo, animalRepo, invoiceRepo, billingLog)
	discountUC := billing.NewDiscountUseCase(invoiceRepo)
	issueUC := billing.NewIssueUseCase(txRunner, clientRepo, invoicePDF, settingsUC, cfg.Billing.IssueMaxAttempts, billingLog)
	queryUC := billing.NewQueryUseCase(invoiceRepo, invoicePDF, settingsUC)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, cfg.Billing.ProjectionRate)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutS) * time.Second,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pupilaje API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:     clientUC,
		AnimalUC:     animalUC,
		SettingsUC:   settingsUC,
		DraftUC:      draftUC,
		DiscountUC:   discountUC,
		IssueUC:      issueUC,
		InvoiceQuery: queryUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
		AllowedRoles: cfg.JWT.AllowedRoles,
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
