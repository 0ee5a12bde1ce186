package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	apphttp "github.com/jhoicas/rasan-admin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const validToken = "token-valido"

// staticGuard acepta solo validToken.
type staticGuard struct{}

func (staticGuard) Validate(_ context.Context, token string) (*entity.AdminSession, error) {
	if token != validToken {
		return nil, domain.ErrUnauthorized
	}
	return &entity.AdminSession{ID: "sid-1", UserID: "u1", Email: "ana@rasan.in"}, nil
}

// buildGuardedApp construye una aplicación Fiber mínima con AuthMiddleware y
// un handler dummy que devuelve el id de sesión si pasa el middleware.
func buildGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(staticGuard{}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"sid": apphttp.GetSessionID(c)})
	})
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), "cuerpo: %s", body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → pasa y la sesión queda en locals.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	resp := doProtected(t, buildGuardedApp(), "Bearer "+validToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "sid-1", body["sid"])
}

// Caso 2: sin header → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doProtected(t, buildGuardedApp(), "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

// Caso 3: formato distinto de "Bearer <token>" → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	resp := doProtected(t, buildGuardedApp(), "Token "+validToken)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

// Caso 4: el guardián rechaza el token (firma mala o sesión cerrada) → 401.
func TestAuthMiddleware_SesionRechazada(t *testing.T) {
	resp := doProtected(t, buildGuardedApp(), "Bearer otro")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: el esquema no distingue mayúsculas.
func TestAuthMiddleware_BearerMinusculas(t *testing.T) {
	resp := doProtected(t, buildGuardedApp(), "bearer "+validToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
