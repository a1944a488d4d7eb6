package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abelfynine/inventario-api/internal/application/auth"
	"github.com/abelfynine/inventario-api/internal/application/inventario"
	"github.com/abelfynine/inventario-api/internal/application/movimientos"
	"github.com/abelfynine/inventario-api/internal/application/reporte"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	InventarioUC *inventario.UseCase
	MovimientoUC *movimientos.UseCase
	ReporteUC    *reporte.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario (protegido)
	inv := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inv.Get("/", inventarioHandler.Listar)
	inv.Post("/", inventarioHandler.Agregar)
	inv.Put("/:codigo", inventarioHandler.Modificar)
	inv.Delete("/:codigo", inventarioHandler.Eliminar)

	// Movimientos: entradas y salidas (protegido)
	movs := protected.Group("/movimientos/:tipo")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movs.Get("/", movimientoHandler.Listar)
	movs.Post("/", movimientoHandler.Registrar)
	movs.Put("/:factura", movimientoHandler.Modificar)
	movs.Delete("/:factura", movimientoHandler.Eliminar)

	// Reportes PDF (protegido)
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Post("/:tipo/pdf", reporteHandler.GenerarPDF)
}
