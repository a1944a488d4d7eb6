package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abelfynine/inventario-api/internal/application/dto"
	"github.com/abelfynine/inventario-api/internal/application/movimientos"
	"github.com/abelfynine/inventario-api/internal/domain/entity"
)

// MovimientoHandler maneja las peticiones HTTP de los libros de movimientos
// (protegido). El tipo viene en la ruta: /api/movimientos/:tipo.
type MovimientoHandler struct {
	uc *movimientos.UseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *movimientos.UseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// tipoDeRuta traduce el segmento de ruta al tipo de movimiento.
func tipoDeRuta(c *fiber.Ctx) (string, bool) {
	switch c.Params("tipo") {
	case "entradas":
		return entity.TipoEntrada, true
	case "salidas":
		return entity.TipoSalida, true
	default:
		return "", false
	}
}

// Listar devuelve los movimientos del libro.
func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	tipo, ok := tipoDeRuta(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser entradas o salidas"})
	}
	movs, err := h.uc.Listar(c.Context(), tipo)
	if err != nil {
		return responderError(c, err)
	}
	resp := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		resp = append(resp, dto.ToMovimientoResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(resp), "movimientos": resp})
}

// Registrar asienta un movimiento nuevo y concilia el acumulado del artículo.
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	tipo, ok := tipoDeRuta(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser entradas o salidas"})
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Registrar(c.Context(), tipo, in); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// Modificar cambia fecha y cantidad de un movimiento existente.
func (h *MovimientoHandler) Modificar(c *fiber.Ctx) error {
	tipo, ok := tipoDeRuta(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser entradas o salidas"})
	}
	var in dto.ModificarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Modificar(c.Context(), tipo, c.Params("factura"), in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento modificado"})
}

// Eliminar revierte y borra un movimiento.
func (h *MovimientoHandler) Eliminar(c *fiber.Ctx) error {
	tipo, ok := tipoDeRuta(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser entradas o salidas"})
	}
	if err := h.uc.Eliminar(c.Context(), tipo, c.Params("factura")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}
