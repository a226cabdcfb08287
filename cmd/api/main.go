package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/reports"
	infrapdf "github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/pdf"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/postgres"
	infraxlsx "github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/xlsx"
	httpRouter "github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/interfaces/http"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/pkg/config"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Report.Timezone).
		Msg("iniciando aplicación")

	engine, err := reports.EngineConfig(cfg.Report)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de reportes")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sources := postgres.NewReportSources(pool)
	reportUC := reports.NewUseCase(sources.Sources(), engine, log,
		reports.WithFetchLimit(cfg.Report.FetchLimit),
		reports.WithExporter(reports.FormatPDF, infrapdf.NewReportGenerator(cfg.App.Name)),
		reports.WithExporter(reports.FormatXLSX, infraxlsx.NewWorkbookExporter()),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reports:     reportUC,
		DB:          sources,
		ServiceName: cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		Logger:      log,
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
