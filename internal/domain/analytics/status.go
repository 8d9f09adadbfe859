package analytics

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeOrderStatus limpia el estado crudo de un pedido.
// Vacío o solo espacios → ("", false). El alias histórico "faield" se lee como "failed".
// Cualquier otro valor se devuelve tal cual, aunque no sea canónico.
func NormalizeOrderStatus(raw string) (string, bool) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	if clean == "" {
		return "", false
	}
	if clean == FailedLegacyAlias {
		return StatusFailed, true
	}
	return clean, true
}

// IsDisplayStatus indica si el estado (ya normalizado) es uno de los seis canónicos.
func IsDisplayStatus(status string) bool {
	return slices.Contains(DisplayStatuses(), status)
}

// IsProfitStatus indica si el estado (ya normalizado) cuenta para rentabilidad.
func IsProfitStatus(status string) bool {
	return slices.Contains(ProfitStatuses(), status)
}

// StatusLabel etiqueta legible: "paid" → "Paid". Los estados no canónicos se devuelven sin cambios.
func StatusLabel(status string) string {
	if !IsDisplayStatus(status) {
		return status
	}
	// Un Caser guarda estado; se crea uno por llamada.
	return cases.Title(language.English).String(status)
}

// allowedStatus aplica el filtro de estado común a todas las pasadas.
func allowedStatus(raw string, allowed []string) (string, bool) {
	status, ok := NormalizeOrderStatus(raw)
	if !ok || !slices.Contains(allowed, status) {
		return "", false
	}
	return status, true
}
