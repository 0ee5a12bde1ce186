package jsontext

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Number decimal tolerante para atributos numéricos escritos por otros sistemas.
// Acepta números y strings numéricos; null, "" o cualquier otro valor queda en cero.
// Nunca devuelve error, así un campo ilegible no invalida el objeto que lo contiene.
type Number struct {
	decimal.Decimal
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	n.Decimal = decimal.Zero
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}
	if d, err := decimal.NewFromString(text); err == nil {
		n.Decimal = d
	}
	return nil
}
