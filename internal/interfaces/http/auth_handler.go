package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abelfynine/inventario-api/internal/application/auth"
	"github.com/abelfynine/inventario-api/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login valida credenciales y emite el token de sesión.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// Session informa si el token presentado sigue vigente. Lee el header
// directamente: un token inválido no es un error, es una sesión inactiva.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := ""
	if parts := strings.SplitN(c.Get("Authorization"), " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		token = strings.TrimSpace(parts[1])
	}
	return c.JSON(h.uc.Session(token))
}
