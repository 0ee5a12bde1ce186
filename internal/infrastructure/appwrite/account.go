package appwrite

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// Session sesión de Appwrite. Secret solo viene informado cuando se crea con API key (SSR).
type Session struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Secret string `json:"secret"`
	Expire string `json:"expire"`
}

type accountResponse struct {
	ID     string   `json:"$id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Labels []string `json:"labels"`
}

// Accounts operaciones de la API Account usadas por el login de la consola.
type Accounts struct {
	client *Client
}

// NewAccounts construye el adaptador.
func NewAccounts(client *Client) *Accounts {
	return &Accounts{client: client}
}

// CreateEmailPasswordSession crea una sesión y devuelve su secreto.
func (a *Accounts) CreateEmailPasswordSession(ctx context.Context, email, password string) (string, error) {
	var out Session
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/account/sessions/email",
		body:   map[string]string{"email": email, "password": password},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("crear sesión: %w", err)
	}
	if out.Secret == "" {
		return "", fmt.Errorf("crear sesión: Appwrite no devolvió el secreto (¿falta APPWRITE_API_KEY?)")
	}
	return out.Secret, nil
}

// Get devuelve la cuenta dueña de la sesión.
func (a *Accounts) Get(ctx context.Context, sessionSecret string) (*entity.AdminUser, error) {
	var out accountResponse
	if err := a.client.do(ctx, request{method: http.MethodGet, path: "/account", session: sessionSecret}, &out); err != nil {
		return nil, fmt.Errorf("obtener cuenta: %w", err)
	}
	return &entity.AdminUser{ID: out.ID, Name: out.Name, Email: out.Email, Labels: out.Labels}, nil
}

// DeleteSessions cierra todas las sesiones de la cuenta.
func (a *Accounts) DeleteSessions(ctx context.Context, sessionSecret string) error {
	if err := a.client.do(ctx, request{method: http.MethodDelete, path: "/account/sessions", session: sessionSecret}, nil); err != nil {
		return fmt.Errorf("eliminar sesiones: %w", err)
	}
	return nil
}
