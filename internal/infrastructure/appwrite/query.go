package appwrite

import (
	"encoding/json"
	"time"
)

// Query consulta serializada en el formato JSON que acepta Appwrite en queries[].
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// String devuelve la query serializada.
func (q Query) String() string {
	b, _ := json.Marshal(q)
	return string(b)
}

// Timestamp formatea t como lo hace Date.toISOString (UTC, milisegundos).
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func Equal(attr string, values ...any) Query {
	return Query{Method: "equal", Attribute: attr, Values: values}
}

func GreaterThanEqual(attr string, value any) Query {
	return Query{Method: "greaterThanEqual", Attribute: attr, Values: []any{value}}
}

func LessThanEqual(attr string, value any) Query {
	return Query{Method: "lessThanEqual", Attribute: attr, Values: []any{value}}
}

func Contains(attr string, value any) Query {
	return Query{Method: "contains", Attribute: attr, Values: []any{value}}
}

func OrderAsc(attr string) Query { return Query{Method: "orderAsc", Attribute: attr} }

func OrderDesc(attr string) Query { return Query{Method: "orderDesc", Attribute: attr} }

func Limit(n int) Query { return Query{Method: "limit", Values: []any{n}} }

func Offset(n int) Query { return Query{Method: "offset", Values: []any{n}} }

func Select(attrs ...string) Query {
	values := make([]any, len(attrs))
	for i, a := range attrs {
		values[i] = a
	}
	return Query{Method: "select", Values: values}
}
