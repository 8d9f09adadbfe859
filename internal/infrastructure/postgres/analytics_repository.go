package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var (
	_ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)
	_ repository.CatalogRepository   = (*AnalyticsRepo)(nil)
)

// AnalyticsRepo lecturas de solo lectura que alimentan el motor de rentabilidad.
// Los importes se leen como texto para que el motor decida cómo coercionarlos.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// ListOrderRows devuelve todos los pedidos con los datos del comprador, más recientes primero.
func (r *AnalyticsRepo) ListOrderRows(ctx context.Context) ([]analytics.OrderRow, error) {
	const query = `
	SELECT
	    id::text,
	    COALESCE(user_id::text, ''),
	    COALESCE(first_name, ''),
	    COALESCE(second_name, ''),
	    COALESCE(email, ''),
	    COALESCE(status, ''),
	    total_amount::text,
	    discount_amount::text,
	    created_at
	FROM orders
	ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListOrderRows: %w", err)
	}
	defer rows.Close()

	var out []analytics.OrderRow
	for rows.Next() {
		var (
			row             analytics.OrderRow
			total, discount *string
			createdAt       *time.Time
		)
		if err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.FirstName,
			&row.SecondName,
			&row.Email,
			&row.Status,
			&total,
			&discount,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListOrderRows scan: %w", err)
		}
		row.TotalAmount = analytics.NumFromPtr(total)
		row.DiscountAmount = analytics.NumFromPtr(discount)
		row.CreatedAt = formatTimestamp(createdAt)
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListOrderItemRows devuelve todas las líneas de pedido.
func (r *AnalyticsRepo) ListOrderItemRows(ctx context.Context) ([]analytics.OrderItemRow, error) {
	const query = `
	SELECT
	    order_id::text,
	    COALESCE(variant_id::text, ''),
	    price::text,
	    quantity::text
	FROM order_items`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListOrderItemRows: %w", err)
	}
	defer rows.Close()

	var out []analytics.OrderItemRow
	for rows.Next() {
		var (
			item            analytics.OrderItemRow
			price, quantity *string
		)
		if err := rows.Scan(&item.OrderID, &item.VariantID, &price, &quantity); err != nil {
			return nil, fmt.Errorf("analytics.ListOrderItemRows scan: %w", err)
		}
		item.Price = analytics.NumFromPtr(price)
		item.Quantity = analytics.NumFromPtr(quantity)
		out = append(out, item)
	}
	return out, rows.Err()
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// ListVariants devuelve las variantes con sus claves a producto, talla y color.
func (r *AnalyticsRepo) ListVariants(ctx context.Context) ([]analytics.VariantMeta, error) {
	const query = `
	SELECT
	    id::text,
	    COALESCE(sku, ''),
	    COALESCE(product_id::text, ''),
	    COALESCE(size_id::text, ''),
	    COALESCE(color_id::text, '')
	FROM product_variants`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListVariants: %w", err)
	}
	defer rows.Close()

	var out []analytics.VariantMeta
	for rows.Next() {
		var v analytics.VariantMeta
		if err := rows.Scan(&v.ID, &v.SKU, &v.ProductID, &v.SizeID, &v.ColorID); err != nil {
			return nil, fmt.Errorf("analytics.ListVariants scan: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ProductNames id → nombre de producto.
func (r *AnalyticsRepo) ProductNames(ctx context.Context) (map[string]string, error) {
	return r.names(ctx, "analytics.ProductNames", `SELECT id::text, COALESCE(name, '') FROM products`)
}

// SizeNames id → nombre de talla.
func (r *AnalyticsRepo) SizeNames(ctx context.Context) (map[string]string, error) {
	return r.names(ctx, "analytics.SizeNames", `SELECT id::text, COALESCE(name, '') FROM sizes`)
}

// ColorNames id → nombre de color.
func (r *AnalyticsRepo) ColorNames(ctx context.Context) (map[string]string, error) {
	return r.names(ctx, "analytics.ColorNames", `SELECT id::text, COALESCE(name, '') FROM colors`)
}

func (r *AnalyticsRepo) names(ctx context.Context, op, query string) (map[string]string, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out[id] = name
	}
	return out, rows.Err()
}
