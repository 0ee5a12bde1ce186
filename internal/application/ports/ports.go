package ports

import (
	"context"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// AccountService puerto de la API de cuentas del backend de identidad.
// Los métodos que reciben sessionSecret actúan en nombre de esa sesión.
type AccountService interface {
	CreateEmailPasswordSession(ctx context.Context, email, password string) (sessionSecret string, err error)
	Get(ctx context.Context, sessionSecret string) (*entity.AdminUser, error)
	DeleteSessions(ctx context.Context, sessionSecret string) error
}

// NotificationSender puerto de envío de notificaciones push. Devuelve el id de la ejecución remota.
type NotificationSender interface {
	Send(ctx context.Context, n entity.Notification) (string, error)
}

// MetricsRecorder contadores de la capa de aplicación. Las implementaciones deben ser seguras para uso concurrente.
type MetricsRecorder interface {
	// RecordFetch cuenta una carga remota de component con resultado "ok" o "error".
	RecordFetch(component, result string)
	// RecordSuperseded cuenta un resultado descartado porque llegó una petición más reciente.
	RecordSuperseded(component string)
}

// NopMetrics implementación vacía para tests y arranques sin métricas.
type NopMetrics struct{}

func (NopMetrics) RecordFetch(string, string) {}
func (NopMetrics) RecordSuperseded(string)    {}
