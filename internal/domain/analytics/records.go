package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRow es el pedido tal como lo consume el motor (sin prefiltrar).
type OrderRow struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	TotalAmount    Numeric `json:"total_amount"`
	DiscountAmount Numeric `json:"discount_amount"`
	CreatedAt      string  `json:"created_at"`

	// Datos del cliente, usados solo por el ranking de clientes.
	UserID     string `json:"user_id,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	SecondName string `json:"second_name,omitempty"`
	Email      string `json:"email,omitempty"`
}

// OrderItemRow es una línea de pedido.
type OrderItemRow struct {
	OrderID   string  `json:"order_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Price     Numeric `json:"price"`
	Quantity  Numeric `json:"quantity"`
}

// ItemTotals acumula un valor por order_id (subtotal o cantidad).
type ItemTotals map[string]decimal.Decimal

// Lookup devuelve el acumulado del pedido o un NullDecimal inválido si no hay líneas.
func (m ItemTotals) Lookup(orderID string) decimal.NullDecimal {
	v, ok := m[orderID]
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: v, Valid: true}
}

// DateRange es un rango inclusivo [From, To] con resolución de milisegundos.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ProfitMetrics totales de rentabilidad de un conjunto de pedidos.
type ProfitMetrics struct {
	GrossProfit   decimal.Decimal
	NetProfit     decimal.Decimal
	DiscountTotal decimal.Decimal
	OrderCount    int
}

// MonthlyEntry acumulado de un mes calendario.
type MonthlyEntry struct {
	MonthKey string // YYYY-MM
	Label    string
	Gross    decimal.Decimal
	Net      decimal.Decimal
	Orders   int
}
