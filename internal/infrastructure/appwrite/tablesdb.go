package appwrite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// RowList respuesta de listRows. Rows queda crudo para que cada repositorio lo decodifique.
type RowList struct {
	Total int               `json:"total"`
	Rows  []json.RawMessage `json:"rows"`
}

// Tables acceso a las tablas de una base de datos (API TablesDB).
type Tables struct {
	client     *Client
	databaseID string
}

// NewTables construye el acceso a la base de datos indicada.
func NewTables(client *Client, databaseID string) *Tables {
	return &Tables{client: client, databaseID: databaseID}
}

func (t *Tables) rowsPath(tableID string) string {
	return "/tablesdb/" + url.PathEscape(t.databaseID) + "/tables/" + url.PathEscape(tableID) + "/rows"
}

// ListRows lista filas aplicando las queries.
func (t *Tables) ListRows(ctx context.Context, tableID string, queries ...Query) (*RowList, error) {
	q := url.Values{}
	for _, query := range queries {
		q.Add("queries[]", query.String())
	}
	var out RowList
	if err := t.client.do(ctx, request{method: http.MethodGet, path: t.rowsPath(tableID), query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRow obtiene una fila por id.
func (t *Tables) GetRow(ctx context.Context, tableID, rowID string, queries ...Query) (json.RawMessage, error) {
	q := url.Values{}
	for _, query := range queries {
		q.Add("queries[]", query.String())
	}
	var out json.RawMessage
	err := t.client.do(ctx, request{
		method: http.MethodGet,
		path:   t.rowsPath(tableID) + "/" + url.PathEscape(rowID),
		query:  q,
	}, &out)
	return out, err
}

// CreateRow crea una fila con el id indicado.
func (t *Tables) CreateRow(ctx context.Context, tableID, rowID string, data map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	err := t.client.do(ctx, request{
		method: http.MethodPost,
		path:   t.rowsPath(tableID),
		body:   map[string]any{"rowId": rowID, "data": data},
	}, &out)
	return out, err
}

// UpdateRow aplica un patch parcial sobre la fila y devuelve la fila resultante.
func (t *Tables) UpdateRow(ctx context.Context, tableID, rowID string, data map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	err := t.client.do(ctx, request{
		method: http.MethodPatch,
		path:   t.rowsPath(tableID) + "/" + url.PathEscape(rowID),
		body:   map[string]any{"data": data},
	}, &out)
	return out, err
}

// DeleteRow elimina una fila.
func (t *Tables) DeleteRow(ctx context.Context, tableID, rowID string) error {
	return t.client.do(ctx, request{
		method: http.MethodDelete,
		path:   t.rowsPath(tableID) + "/" + url.PathEscape(rowID),
	}, nil)
}
