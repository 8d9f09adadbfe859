package repository

import (
	"context"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos (DIP).
type OrderRepository interface {
	// List devuelve los pedidos que cumplen el filtro, más recientes primero, sin líneas.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	// ListItems devuelve las líneas de los pedidos indicados, en orden de creación.
	ListItems(ctx context.Context, orderIDs []string) ([]*entity.OrderItem, error)

	// GetByID devuelve (nil, nil) si el pedido no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus escribe el valor crudo de estado. Devuelve domain.ErrStatusRejected
	// cuando la base rechaza el valor y domain.ErrNotFound si el pedido no existe.
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
}

// OrderTxRunner ejecuta fn dentro de una transacción con un OrderRepository atado a ella.
type OrderTxRunner interface {
	RunOrders(ctx context.Context, fn func(orders OrderRepository) error) error
}
