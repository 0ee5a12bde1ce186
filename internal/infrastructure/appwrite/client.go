// Package appwrite adapta la API REST de Appwrite (TablesDB, Storage, Functions, Account)
// a los puertos del dominio. Usa net/http; no requiere el SDK oficial.
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/pkg/config"
)

const maxResponseBytes = 32 << 20 // listados de pedidos sin límite pueden ser grandes

// Error respuesta de error de Appwrite ({"message","code","type"}).
type Error struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("appwrite %d (%s): %s", e.Code, e.Type, e.Message)
}

// Unwrap traduce el código HTTP a un error de dominio para usar errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest:
		return domain.ErrInvalidInput
	default:
		return domain.ErrUpstream
	}
}

// CallObserver recibe la duración y el resultado de cada llamada (métricas).
type CallObserver interface {
	ObserveUpstream(service, method string, d time.Duration, err error)
}

// Client cliente HTTP mínimo para un proyecto Appwrite.
type Client struct {
	endpoint   string
	projectID  string
	apiKey     string
	httpClient *http.Client
	observer   CallObserver
}

// NewClient construye el cliente con la configuración del proyecto.
func NewClient(cfg config.AppwriteConfig) *Client {
	return &Client{
		endpoint:  cfg.Endpoint,
		projectID: cfg.ProjectID,
		apiKey:    cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// WithObserver registra un observador de llamadas y devuelve el mismo cliente.
func (c *Client) WithObserver(o CallObserver) *Client {
	c.observer = o
	return c
}

// Endpoint URL base (incluye /v1).
func (c *Client) Endpoint() string { return c.endpoint }

// ProjectID id del proyecto.
func (c *Client) ProjectID() string { return c.projectID }

// request parámetros de una llamada. session vacío = credenciales de servidor (API key).
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     io.Reader
	contentType string
	session     string
}

// do ejecuta la llamada y decodifica la respuesta JSON en out (si out no es nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	u := c.endpoint + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	contentType := r.contentType
	switch {
	case r.rawBody != nil:
		body = r.rawBody
	case r.body != nil:
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("appwrite: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("appwrite: crear HTTP request: %w", err)
	}
	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Response-Format", "1.7.0")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.session != "" {
		req.Header.Set("X-Appwrite-Session", r.session)
	} else if c.apiKey != "" {
		req.Header.Set("X-Appwrite-Key", c.apiKey)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.observer != nil {
		c.observer.ObserveUpstream(service(r.path), r.method, time.Since(started), err)
	}
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("appwrite: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("appwrite: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("appwrite: leer respuesta: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Code: resp.StatusCode}
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = string(raw)
		}
		apiErr.Code = resp.StatusCode
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("appwrite: deserializar respuesta: %w", err)
	}
	return nil
}

// service primer segmento de la ruta (tablesdb, storage, functions, account).
func service(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
