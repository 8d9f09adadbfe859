package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `
	id::text,
	COALESCE(user_id::text, ''),
	COALESCE(status, ''),
	total_amount,
	discount_amount,
	COALESCE(promo_code_id::text, ''),
	COALESCE(first_name, ''),
	COALESCE(second_name, ''),
	COALESCE(comany_name, ''),
	COALESCE(email, ''),
	COALESCE(transaction_id::text, ''),
	COALESCE(paymob_order_id::text, ''),
	created_at,
	COALESCE(updated_at, created_at)`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// List devuelve los pedidos del filtro, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any
	if len(filter.Statuses) > 0 {
		query += ` WHERE status = ANY($1)`
		args = append(args, filter.Statuses)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("orders.List: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("orders.List scan: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// ListItems devuelve las líneas de los pedidos indicados, en orden de creación.
func (r *OrderRepo) ListItems(ctx context.Context, orderIDs []string) ([]*entity.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []*entity.OrderItem{}, nil
	}
	const query = `
	SELECT
	    id::text,
	    order_id::text,
	    COALESCE(variant_id::text, ''),
	    COALESCE(price, 0)::numeric,
	    COALESCE(quantity, 0)::numeric,
	    created_at
	FROM order_items
	WHERE order_id::text = ANY($1)
	ORDER BY created_at ASC`

	rows, err := r.q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("orders.ListItems: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var (
			it        entity.OrderItem
			createdAt *time.Time
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.VariantID, &it.Price, &it.Quantity, &createdAt); err != nil {
			return nil, fmt.Errorf("orders.ListItems scan: %w", err)
		}
		if createdAt != nil {
			it.CreatedAt = *createdAt
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// GetByID obtiene un pedido y bloquea la fila si corre dentro de una transacción.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id::text = $1 FOR UPDATE`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("orders.GetByID: %w", err)
	}
	return o, nil
}

// UpdateStatus escribe el estado crudo y la fecha de actualización.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	const query = `UPDATE orders SET status = $2, updated_at = $3 WHERE id::text = $1`
	tag, err := r.q.Exec(ctx, query, id, status, at)
	if err != nil {
		return wrapStatusError("orders.UpdateStatus", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o                  entity.Order
		total, discount    decimal.NullDecimal
		createdAt, updated *time.Time
	)
	if err := row.Scan(
		&o.ID, &o.UserID, &o.Status,
		&total, &discount,
		&o.PromoCodeID, &o.FirstName, &o.SecondName, &o.CompanyName, &o.Email,
		&o.TransactionID, &o.PaymobOrderID,
		&createdAt, &updated,
	); err != nil {
		return nil, err
	}
	o.TotalAmount = total
	o.DiscountAmount = discount
	if createdAt != nil {
		o.CreatedAt = *createdAt
	}
	if updated != nil {
		o.UpdatedAt = *updated
	}
	return &o, nil
}
