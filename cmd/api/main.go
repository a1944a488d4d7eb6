package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/abelfynine/inventario-api/internal/application/auth"
	"github.com/abelfynine/inventario-api/internal/application/inventario"
	"github.com/abelfynine/inventario-api/internal/application/movimientos"
	appreporte "github.com/abelfynine/inventario-api/internal/application/reporte"
	"github.com/abelfynine/inventario-api/internal/domain/repository"
	"github.com/abelfynine/inventario-api/internal/infrastructure/gsheets"
	"github.com/abelfynine/inventario-api/internal/infrastructure/memoria"
	infrapdf "github.com/abelfynine/inventario-api/internal/infrastructure/pdf"
	"github.com/abelfynine/inventario-api/internal/infrastructure/xlsx"
	httpRouter "github.com/abelfynine/inventario-api/internal/interfaces/http"
	"github.com/abelfynine/inventario-api/pkg/config"
	"github.com/abelfynine/inventario-api/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store repository.HojaStore
	switch cfg.Store.Driver {
	case config.DriverGSheets:
		store, err = gsheets.NewStore(ctx, cfg.Store.SpreadsheetID, cfg.Store.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Google Sheets")
		}
	case config.DriverXLSX:
		xs, err := xlsx.NewStore(cfg.Store.XLSXPath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir libro xlsx")
		}
		defer xs.Close()
		store = xs
	case config.DriverMemoria:
		store = memoria.NewStore()
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("driver de almacén desconocido")
	}

	inventarioUC := inventario.NewUseCase(store, log)
	movimientoUC := movimientos.NewUseCase(store, log)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reporteUC := appreporte.NewUseCase(store, pdfGenerator, log)
	authUC := auth.NewUseCase(
		auth.Credenciales{
			Usuario:      cfg.Admin.Usuario,
			PasswordHash: cfg.Admin.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	// Asegura que el libro tenga las hojas con sus encabezados.
	if err := inventarioUC.InicializarHojas(ctx); err != nil {
		log.Fatal().Err(err).Msg("inicializar hojas del libro")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InventarioUC: inventarioUC,
		MovimientoUC: movimientoUC,
		ReporteUC:    reporteUC,
		JWTSecret:    cfg.JWT.Secret,
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
