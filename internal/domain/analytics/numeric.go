package analytics

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric es un valor numérico tal como lo entrega el almacén: número, cadena
// numérica o null. La conversión a decimal es total: lo que no se pueda leer vale 0.
type Numeric struct {
	Raw   string
	Valid bool // false = null / ausente
}

// Num construye un Numeric a partir de su representación textual.
func Num(raw string) Numeric {
	return Numeric{Raw: raw, Valid: true}
}

// NumInt construye un Numeric entero.
func NumInt(v int64) Numeric {
	return Numeric{Raw: decimal.NewFromInt(v).String(), Valid: true}
}

// NumDecimal construye un Numeric desde un decimal.
func NumDecimal(d decimal.Decimal) Numeric {
	return Numeric{Raw: d.String(), Valid: true}
}

// NullNumeric es el valor ausente.
var NullNumeric = Numeric{}

// NumFromPtr adapta una columna nullable escaneada como *string.
func NumFromPtr(s *string) Numeric {
	if s == nil {
		return NullNumeric
	}
	return Num(*s)
}

// Blank indica si el valor es null o una cadena vacía/solo espacios.
func (n Numeric) Blank() bool {
	return !n.Valid || strings.TrimSpace(n.Raw) == ""
}

// Decimal convierte a decimal; null, vacío o ilegible → 0.
func (n Numeric) Decimal() decimal.Decimal {
	return ToNumber(n)
}

// ToNumber es la coerción total usada por todo el motor.
func ToNumber(n Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	clean := strings.TrimSpace(n.Raw)
	if clean == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// UnmarshalJSON acepta número, cadena o null.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = NullNumeric
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Num(s)
		return nil
	}
	*n = Num(string(b))
	return nil
}

// MarshalJSON devuelve null o el valor como número cuando es legible.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.Blank() {
		return []byte("null"), nil
	}
	return []byte(ToNumber(n).String()), nil
}
