package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rasan-admin-api/internal/application/auth"
	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
)

// AuthHandler login, logout y datos del administrador.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	onLogout func(sessionID string)
}

// NewAuthHandler construye el handler. onLogout (opcional) libera el estado por sesión.
func NewAuthHandler(uc *auth.AuthUseCase, onLogout func(sessionID string)) *AuthHandler {
	return &AuthHandler{uc: uc, onLogout: onLogout}
}

// Login godoc
// @Summary      Iniciar sesión en la consola
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales Appwrite"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	if err := h.uc.Logout(c.UserContext(), sid); err != nil {
		return writeError(c, err)
	}
	if h.onLogout != nil {
		h.onLogout(sid)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Administrador autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	s := GetSession(c)
	if s == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	return c.JSON(auth.ToAdminResponse(s))
}
