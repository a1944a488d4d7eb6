package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abelfynine/inventario-api/internal/application/dto"
	appreporte "github.com/abelfynine/inventario-api/internal/application/reporte"
	domreporte "github.com/abelfynine/inventario-api/internal/domain/reporte"
)

// ReporteHandler maneja la exportación de reportes PDF (protegido).
type ReporteHandler struct {
	uc *appreporte.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *appreporte.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// GenerarPDF filtra el tipo pedido y devuelve el PDF como descarga.
func (h *ReporteHandler) GenerarPDF(c *fiber.Ctx) error {
	var tipo domreporte.Tipo
	switch c.Params("tipo") {
	case "inventario":
		tipo = domreporte.TipoInventario
	case "entradas":
		tipo = domreporte.TipoEntradas
	case "salidas":
		tipo = domreporte.TipoSalidas
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser inventario, entradas o salidas"})
	}

	var in dto.GenerarReporteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	generado, err := h.uc.Generar(c.Context(), tipo, in.ToFilterSpec())
	if err != nil {
		return responderError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+generado.NombreArchivo+`"`)
	return c.Send(generado.Contenido)
}
