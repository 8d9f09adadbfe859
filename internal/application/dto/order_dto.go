package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListOrdersRequest parámetros para GET /api/orders.
type ListOrdersRequest struct {
	Status string `query:"status"` // unpaid|paid|failed|preparing|done|cancelled; vacío = todos
	Q      string `query:"q"`      // búsqueda libre sobre id, usuario, nombre, email, transacción y estado
}

// OrderItemDTO línea de un pedido.
type OrderItemDTO struct {
	ID        string          `json:"id"`
	VariantID string          `json:"variant_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderDTO pedido con sus líneas y los campos derivados del listado.
type OrderDTO struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	Status         string              `json:"status"`     // valor crudo
	StatusKey      string              `json:"status_key"` // estado normalizado, vacío si es desconocido
	StatusLabel    string              `json:"status_label"`
	TotalAmount    decimal.NullDecimal `json:"total_amount"`
	DiscountAmount decimal.NullDecimal `json:"discount_amount"`
	PromoCodeID    string              `json:"promo_code_id,omitempty"`
	CustomerName   string              `json:"customer_name"`
	CompanyName    string              `json:"company_name,omitempty"`
	Email          string              `json:"email"`
	TransactionID  string              `json:"transaction_id,omitempty"`
	PaymobOrderID  string              `json:"paymob_order_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Items          []OrderItemDTO      `json:"items"`
	ItemLines      int                 `json:"item_lines"`
	TotalQuantity  decimal.Decimal     `json:"total_quantity"`
}

// OrderListDTO respuesta de GET /api/orders.
type OrderListDTO struct {
	Orders []OrderDTO `json:"orders"`
	Total  int        `json:"total"`
}

// UpdateOrderStatusRequest cuerpo de PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatusResponse resultado del cambio de estado.
type UpdateOrderStatusResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`        // estado normalizado
	StoredStatus string `json:"stored_status"` // valor escrito en la base ("faield" si hizo falta el alias)
	Changed      bool   `json:"changed"`
}
