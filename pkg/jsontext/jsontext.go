// Package jsontext maneja atributos que Appwrite guarda como texto JSON
// (items, shippingAddress, quantityOptions, image...).
package jsontext

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Decode decodifica raw en out. Acepta el valor como JSON directo o como string que contiene JSON.
// null, ausente o string vacío dejan out sin tocar y no son error.
func Decode(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), out)
	}
	return json.Unmarshal(trimmed, out)
}

// Encode serializa v como texto JSON para guardarlo en un atributo string.
func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
