package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order pedido de la tienda tal como lo lista el back-office.
// Los importes son opcionales: los pedidos antiguos pueden no tener total ni descuento.
type Order struct {
	ID             string
	UserID         string
	Status         string // valor crudo de la tabla (puede ser el alias "faield")
	TotalAmount    decimal.NullDecimal
	DiscountAmount decimal.NullDecimal
	PromoCodeID    string
	FirstName      string
	SecondName     string
	CompanyName    string
	Email          string
	TransactionID  string
	PaymobOrderID  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Items          []*OrderItem
}

// CustomerName nombre completo del comprador, vacío si no se registró.
func (o *Order) CustomerName() string {
	switch {
	case o.FirstName == "":
		return o.SecondName
	case o.SecondName == "":
		return o.FirstName
	default:
		return o.FirstName + " " + o.SecondName
	}
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ID        string
	OrderID   string
	VariantID string
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	CreatedAt time.Time
}

// OrderFilter criterios para listar pedidos.
type OrderFilter struct {
	// Statuses valores crudos aceptados; vacío = todos.
	Statuses []string
}
