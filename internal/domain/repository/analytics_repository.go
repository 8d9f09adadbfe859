package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/analytics"
)

// AnalyticsRepository define las lecturas que alimentan el motor de rentabilidad.
// Devuelve los registros sin filtrar: el motor aplica estado y rango de fechas.
type AnalyticsRepository interface {
	// ListOrderRows devuelve todos los pedidos, más recientes primero.
	ListOrderRows(ctx context.Context) ([]analytics.OrderRow, error)

	// ListOrderItemRows devuelve todas las líneas de pedido.
	ListOrderItemRows(ctx context.Context) ([]analytics.OrderItemRow, error)
}

// CatalogRepository lecturas del catálogo usadas para rotular variantes.
type CatalogRepository interface {
	ListVariants(ctx context.Context) ([]analytics.VariantMeta, error)
	ProductNames(ctx context.Context) (map[string]string, error)
	SizeNames(ctx context.Context) (map[string]string, error)
	ColorNames(ctx context.Context) (map[string]string, error)
}
