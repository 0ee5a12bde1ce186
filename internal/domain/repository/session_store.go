package repository

import (
	"context"
	"time"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// SessionStore puerto de las sesiones de la consola. Get devuelve domain.ErrNotFound si la sesión expiró o no existe.
type SessionStore interface {
	Save(ctx context.Context, session *entity.AdminSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*entity.AdminSession, error)
	Delete(ctx context.Context, id string) error
}
