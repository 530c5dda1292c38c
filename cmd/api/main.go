package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Analitica-retail/internal/application/analytics"
	"github.com/jhoicas/Analitica-retail/internal/infrastructure/csvstore"
	httpRouter "github.com/jhoicas/Analitica-retail/internal/interfaces/http"
	"github.com/jhoicas/Analitica-retail/pkg/config"
	"github.com/jhoicas/Analitica-retail/pkg/logger"
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

	// Ingesta: los tres CSV se cargan y validan una sola vez; después el
	// dataset es inmutable y los reportes solo lo leen.
	loader := csvstore.NewLoader(cfg.Data.ItemsPath, cfg.Data.OutletsPath, cfg.Data.SalesPath)
	ds, err := loader.LoadDataset()
	if err != nil {
		log.Fatal().Err(err).Msg("carga del dataset")
	}
	log.Info().
		Int("items", len(ds.Items())).
		Int("outlets", ds.OutletCount()).
		Int("sales", len(ds.Rows())).
		Msg("dataset cargado y validado")

	reportSvc, err := analytics.NewService(ds, cfg.Report.TopItemsLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("construcción del servicio de reportes")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reports:   httpRouter.NewReportHandler(reportSvc, log),
		JWTSecret: cfg.JWT.Secret,
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
}
