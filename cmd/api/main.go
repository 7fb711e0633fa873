package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/portal-isp-api/internal/application/auth"
	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/memory"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/portal-isp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/seed"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/portal-isp-api/internal/interfaces/http"
	"github.com/jhoicas/portal-isp-api/internal/jobs"
	"github.com/jhoicas/portal-isp-api/pkg/config"
	"github.com/jhoicas/portal-isp-api/pkg/logger"
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

	// Dataset inicial: todo el estado del portal vive en memoria.
	dataset, err := seed.Generate(seed.Config{
		RandomSeed: cfg.Seed.RandomSeed,
		Clients:    cfg.Seed.Clients,
		Sales:      cfg.Seed.Sales,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("generar dataset de demostración")
	}
	log.Info().
		Int("clients", len(dataset.Clients)).
		Int("sales", len(dataset.Sales)).
		Int("catalog", len(dataset.Catalog)).
		Msg("dataset sembrado")

	clientRepo := memory.NewClientRepository(dataset.Clients)
	salesRepo := memory.NewSalesRepository(dataset.Sales)
	catalog := memory.NewCatalog(dataset.Catalog)

	notifier := notify.New(log, notify.DefaultCapacity)
	sessionStore := session.NewFileStore(cfg.Session.Path)

	authUC := auth.NewUseCase(dataset.DemoAccounts, sessionStore, notifier, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.Demo.LoginDelayMS)*time.Millisecond)
	authUC.RestoreSession()

	clientUC := usecase.NewClientUseCase(clientRepo, salesRepo, catalog, notifier)
	salesUC := usecase.NewSalesUseCase(salesRepo, notifier)
	catalogUC := usecase.NewCatalogUseCase(catalog)
	dashboardUC := usecase.NewDashboardUseCase(clientRepo, salesRepo)
	statementUC := usecase.NewStatementUseCase(clientRepo, infrapdf.NewMarotoStatementGenerator())

	scheduler, err := jobs.NewScheduler(clientRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar tareas programadas")
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal ISP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		SalesUC:     salesUC,
		CatalogUC:   catalogUC,
		DashboardUC: dashboardUC,
		StatementUC: statementUC,
		Notifier:    notifier,
		JWTSecret:   cfg.JWT.Secret,
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
