package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abelfynine/inventario-api/internal/application/dto"
	"github.com/abelfynine/inventario-api/internal/application/inventario"
)

// InventarioHandler maneja las peticiones HTTP del inventario (protegido).
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Listar devuelve el inventario completo ya normalizado.
func (h *InventarioHandler) Listar(c *fiber.Ctx) error {
	articulos, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	resp := make([]dto.ArticuloResponse, 0, len(articulos))
	for _, a := range articulos {
		resp = append(resp, dto.ToArticuloResponse(a))
	}
	return c.JSON(fiber.Map{"total": len(resp), "articulos": resp})
}

// Agregar da de alta un artículo nuevo.
func (h *InventarioHandler) Agregar(c *fiber.Ctx) error {
	var in dto.AgregarArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Agregar(c.Context(), in); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "artículo agregado"})
}

// Modificar actualiza descripción y existencias de un artículo.
func (h *InventarioHandler) Modificar(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	var in dto.ModificarArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Modificar(c.Context(), codigo, in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "artículo modificado"})
}

// Eliminar borra el artículo y, en cascada, sus movimientos.
func (h *InventarioHandler) Eliminar(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if err := h.uc.Eliminar(c.Context(), codigo); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "artículo eliminado"})
}
