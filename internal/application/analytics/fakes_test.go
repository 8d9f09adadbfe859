package analytics_test

import (
	"context"
	"errors"
	"time"

	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	orders   []engine.OrderRow
	items    []engine.OrderItemRow
	itemsErr error
}

func (f *fakeAnalyticsRepo) ListOrderRows(context.Context) ([]engine.OrderRow, error) {
	return f.orders, nil
}

func (f *fakeAnalyticsRepo) ListOrderItemRows(context.Context) ([]engine.OrderItemRow, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items, nil
}

type fakeCatalogRepo struct {
	variants []engine.VariantMeta
	products map[string]string
	sizes    map[string]string
	colors   map[string]string
	err      error
}

func (f *fakeCatalogRepo) ListVariants(context.Context) ([]engine.VariantMeta, error) {
	return f.variants, f.err
}

func (f *fakeCatalogRepo) ProductNames(context.Context) (map[string]string, error) {
	return f.products, nil
}

func (f *fakeCatalogRepo) SizeNames(context.Context) (map[string]string, error) {
	return f.sizes, nil
}

func (f *fakeCatalogRepo) ColorNames(context.Context) (map[string]string, error) {
	return f.colors, nil
}

var errDB = errors.New("conexión perdida")

// fixedClock 2026-03-15 12:00 UTC.
func fixedClock() time.Time {
	return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func sampleAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		orders: []engine.OrderRow{
			{ID: "o1", UserID: "u1", FirstName: "Ana", Status: "paid", TotalAmount: engine.NumInt(2000), DiscountAmount: engine.NumInt(100), CreatedAt: "2026-03-10T10:00:00Z"},
			{ID: "o2", UserID: "u2", Email: "beto@x.co", Status: "done", TotalAmount: engine.NumInt(1500), CreatedAt: "2026-02-20T10:00:00Z"},
			{ID: "o3", UserID: "u1", FirstName: "Ana", Status: "faield", TotalAmount: engine.NumInt(900), CreatedAt: "2026-03-11T10:00:00Z"},
			{ID: "o4", UserID: "u3", Status: "unpaid", TotalAmount: engine.NumInt(700), CreatedAt: "2026-03-12T10:00:00Z"},
			{ID: "o5", UserID: "u2", Status: "paid", TotalAmount: engine.NumInt(5000), CreatedAt: "2025-06-01T10:00:00Z"},
		},
		items: []engine.OrderItemRow{
			{OrderID: "o1", VariantID: "v1", Price: engine.NumInt(300), Quantity: engine.NumInt(2)},
			{OrderID: "o2", VariantID: "v2", Price: engine.NumInt(500), Quantity: engine.NumInt(1)},
			{OrderID: "o3", VariantID: "v1", Price: engine.NumInt(300), Quantity: engine.NumInt(3)},
		},
	}
}

func sampleCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		variants: []engine.VariantMeta{
			{ID: "v1", SKU: "TS-01", ProductID: "p1", SizeID: "s1"},
			{ID: "v2", ProductID: "p2"},
		},
		products: map[string]string{"p1": "Camiseta", "p2": "Gorra"},
		sizes:    map[string]string{"s1": "M"},
		colors:   map[string]string{},
	}
}
