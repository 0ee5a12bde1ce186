package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
	"github.com/jhoicas/rasan-admin-api/pkg/jwt"
)

// SessionGuard decide si un token da acceso a las rutas protegidas.
// Un token es válido solo si la firma es correcta y su sesión sigue en el almacén.
type SessionGuard struct {
	secret   string
	sessions repository.SessionStore
}

// NewSessionGuard construye el guardián.
func NewSessionGuard(secret string, sessions repository.SessionStore) *SessionGuard {
	return &SessionGuard{secret: secret, sessions: sessions}
}

// Validate devuelve la sesión asociada al token o domain.ErrUnauthorized.
func (g *SessionGuard) Validate(ctx context.Context, token string) (*entity.AdminSession, error) {
	claims, err := jwt.Parse(g.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	session, err := g.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: sesión expirada o cerrada", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, fmt.Errorf("%w: el token no corresponde a la sesión", domain.ErrUnauthorized)
	}
	return session, nil
}
