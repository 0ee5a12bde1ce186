package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// LocalSession clave de c.Locals con la *entity.AdminSession del administrador.
const LocalSession = "admin_session"

// sessionValidator es el contrato mínimo del guardián de sesiones (*auth.SessionGuard).
type sessionValidator interface {
	Validate(ctx context.Context, token string) (*entity.AdminSession, error)
}

// AuthMiddleware valida el Bearer Token contra el guardián y deja la sesión en c.Locals.
func AuthMiddleware(guard sessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		session, err := guard.Validate(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o sesión cerrada"})
		}
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

// GetSession devuelve la sesión del administrador (después del middleware de auth).
func GetSession(c *fiber.Ctx) *entity.AdminSession {
	s, _ := c.Locals(LocalSession).(*entity.AdminSession)
	return s
}

// GetSessionID devuelve el id de la sesión o vacío.
func GetSessionID(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.ID
	}
	return ""
}
