package appwrite

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/pkg/jsontext"
)

// Execution resultado de ejecutar una función.
type Execution struct {
	ID                 string `json:"$id"`
	Status             string `json:"status"` // waiting, processing, completed, failed
	ResponseStatusCode int    `json:"responseStatusCode"`
	ResponseBody       string `json:"responseBody"`
	Errors             string `json:"errors"`
}

// PushNotifier envía notificaciones push ejecutando la función configurada.
type PushNotifier struct {
	client     *Client
	functionID string
}

// NewPushNotifier construye el notificador.
func NewPushNotifier(client *Client, functionID string) *PushNotifier {
	return &PushNotifier{client: client, functionID: functionID}
}

// Send ejecuta la función de forma síncrona con {title, body} y devuelve el id de la ejecución.
func (n *PushNotifier) Send(ctx context.Context, notification entity.Notification) (string, error) {
	if n.functionID == "" {
		return "", fmt.Errorf("appwrite: APPWRITE_NOTIFICATION_FUNCTION_ID no configurado")
	}
	body, err := jsontext.Encode(notification)
	if err != nil {
		return "", fmt.Errorf("appwrite: serializar notificación: %w", err)
	}
	var out Execution
	err = n.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/functions/" + url.PathEscape(n.functionID) + "/executions",
		body:   map[string]any{"body": body, "async": false},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("ejecutar función de notificación: %w", err)
	}
	if out.Status == "failed" {
		return out.ID, fmt.Errorf("función de notificación falló (HTTP %d): %s", out.ResponseStatusCode, out.Errors)
	}
	return out.ID, nil
}
