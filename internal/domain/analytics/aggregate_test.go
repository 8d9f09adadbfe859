package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain/analytics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Datos de ejemplo
// ──────────────────────────────────────────────────────────────────────────────

func januaryFebruary(t *testing.T) analytics.DateRange {
	t.Helper()
	r, err := analytics.GetCustomRange("2026-01-01", "2026-02-28", time.UTC)
	require.NoError(t, err)
	return r
}

func sampleOrders() []analytics.OrderRow {
	return []analytics.OrderRow{
		// pagado en enero, con total
		{ID: "o1", Status: "paid", TotalAmount: analytics.NumInt(1500), DiscountAmount: analytics.NumInt(50), CreatedAt: "2026-01-10T12:00:00Z"},
		// en preparación en febrero, legado sin total
		{ID: "o2", Status: " Preparing ", TotalAmount: analytics.NullNumeric, CreatedAt: "2026-02-03T09:00:00Z"},
		// no pagado: fuera de rentabilidad
		{ID: "o3", Status: "unpaid", TotalAmount: analytics.NumInt(800), CreatedAt: "2026-01-20T12:00:00Z"},
		// alias histórico
		{ID: "o4", Status: "FAIELD", TotalAmount: analytics.NumInt(300), CreatedAt: "2026-01-21T12:00:00Z"},
		// terminado pero fuera de rango
		{ID: "o5", Status: "done", TotalAmount: analytics.NumInt(5000), CreatedAt: "2026-03-01T00:00:00Z"},
		// sin estado
		{ID: "o6", Status: "", TotalAmount: analytics.NumInt(100), CreatedAt: "2026-01-05T00:00:00Z"},
		// fecha ilegible
		{ID: "o7", Status: "paid", TotalAmount: analytics.NumInt(100), CreatedAt: "ayer"},
	}
}

func sampleItems() []analytics.OrderItemRow {
	return []analytics.OrderItemRow{
		{OrderID: "o1", VariantID: "v1", Price: analytics.NumInt(100), Quantity: analytics.NumInt(2)},
		{OrderID: "o1", VariantID: "v2", Price: analytics.Num("50.5"), Quantity: analytics.NumInt(2)},
		{OrderID: "o2", VariantID: "v1", Price: analytics.NumInt(100), Quantity: analytics.NumInt(1)},
		{OrderID: "o3", VariantID: "v3", Price: analytics.NumInt(400), Quantity: analytics.Num("x")},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapas de líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildItemMaps(t *testing.T) {
	items := sampleItems()
	subtotals := analytics.BuildOrderItemGrossMap(items)
	quantities := analytics.BuildOrderItemQuantityMap(items)

	assertDec(t, "301", subtotals["o1"], "2*100 + 2*50.5")
	assertDec(t, "4", quantities["o1"])
	assertDec(t, "100", subtotals["o2"])
	assertDec(t, "0", subtotals["o3"], "cantidad ilegible vale 0")
	assertDec(t, "0", quantities["o3"])

	assert.False(t, subtotals.Lookup("o9").Valid, "pedido sin líneas queda desconocido")
	assert.True(t, quantities.Lookup("o3").Valid, "una línea con cantidad 0 sigue siendo dato conocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// SummarizeProfit
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarizeProfit_SoloEstadosPermitidos(t *testing.T) {
	r := januaryFebruary(t)
	orders := []analytics.OrderRow{
		{ID: "a", Status: "paid", TotalAmount: analytics.NumInt(100), CreatedAt: "2026-01-15T10:00:00Z"},
		{ID: "b", Status: "unpaid", TotalAmount: analytics.NumInt(50), CreatedAt: "2026-01-15T10:00:00Z"},
	}
	empty := analytics.ItemTotals{}

	m := analytics.SummarizeProfit(orders, empty, empty, analytics.ProfitStatuses(), r)

	assert.Equal(t, 1, m.OrderCount)
	assertDec(t, "100", m.GrossProfit)
	assertDec(t, "100", m.NetProfit, "sin líneas el neto es el total")
	assertDec(t, "0", m.DiscountTotal)
}

func TestSummarizeProfit_MezclaDeDatos(t *testing.T) {
	r := januaryFebruary(t)
	items := sampleItems()
	subtotals := analytics.BuildOrderItemGrossMap(items)
	quantities := analytics.BuildOrderItemQuantityMap(items)

	m := analytics.SummarizeProfit(sampleOrders(), subtotals, quantities, analytics.ProfitStatuses(), r)

	// o1: bruto 1500, neto 1500 - (1000+4*130)=-20, descuento min(50, 301)=50
	// o2: bruto 100 + 1130 = 1230, neto 0 - 1130 = -1130 (total nulo), descuento 0
	assert.Equal(t, 2, m.OrderCount)
	assertDec(t, "2730", m.GrossProfit)
	assertDec(t, "-1150", m.NetProfit)
	assertDec(t, "50", m.DiscountTotal)
}

func TestSummarizeProfit_DescuentoSinLineasNoSeAcota(t *testing.T) {
	r := januaryFebruary(t)
	orders := []analytics.OrderRow{
		{ID: "a", Status: "done", TotalAmount: analytics.NumInt(900), DiscountAmount: analytics.NumInt(120), CreatedAt: "2026-02-01T00:00:00Z"},
	}
	empty := analytics.ItemTotals{}

	m := analytics.SummarizeProfit(orders, empty, empty, analytics.ProfitStatuses(), r)
	assertDec(t, "120", m.DiscountTotal)
}

func TestSummarizeProfit_Idempotente(t *testing.T) {
	r := januaryFebruary(t)
	items := sampleItems()
	subtotals := analytics.BuildOrderItemGrossMap(items)
	quantities := analytics.BuildOrderItemQuantityMap(items)
	orders := sampleOrders()

	first := analytics.SummarizeProfit(orders, subtotals, quantities, analytics.ProfitStatuses(), r)
	second := analytics.SummarizeProfit(orders, subtotals, quantities, analytics.ProfitStatuses(), r)
	assert.Equal(t, first, second)

	s1 := analytics.BuildMonthlyProfitSeries(orders, subtotals, quantities, r, analytics.ProfitStatuses())
	s2 := analytics.BuildMonthlyProfitSeries(orders, subtotals, quantities, r, analytics.ProfitStatuses())
	assert.Equal(t, s1, s2)

	c1 := analytics.BuildStatusCount(orders, analytics.DisplayStatuses(), &r)
	c2 := analytics.BuildStatusCount(orders, analytics.DisplayStatuses(), &r)
	assert.Equal(t, c1, c2)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildStatusCount
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildStatusCount_ConRango(t *testing.T) {
	r := januaryFebruary(t)
	counts := analytics.BuildStatusCount(sampleOrders(), analytics.DisplayStatuses(), &r)

	assert.Equal(t, map[string]int{
		"unpaid":    1,
		"paid":      1, // o7 tiene fecha ilegible
		"failed":    1, // alias faield
		"preparing": 1,
		"done":      0, // o5 fuera de rango
		"cancelled": 0,
	}, counts)
}

func TestBuildStatusCount_SinRangoCuentaTodo(t *testing.T) {
	counts := analytics.BuildStatusCount(sampleOrders(), analytics.DisplayStatuses(), nil)

	assert.Equal(t, 2, counts["paid"], "sin rango la fecha ilegible no excluye")
	assert.Equal(t, 1, counts["done"])
	assert.Len(t, counts, 6)
}

func TestBuildStatusCount_EstadosNoPermitidosSeIgnoran(t *testing.T) {
	orders := []analytics.OrderRow{{ID: "a", Status: "weird"}, {ID: "b", Status: "paid"}}
	counts := analytics.BuildStatusCount(orders, []string{"paid"}, nil)
	assert.Equal(t, map[string]int{"paid": 1}, counts)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildMonthlyProfitSeries
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildMonthlyProfitSeries_SinPedidosRellenaCeros(t *testing.T) {
	r := januaryFebruary(t)
	empty := analytics.ItemTotals{}

	series := analytics.BuildMonthlyProfitSeries(nil, empty, empty, r, analytics.ProfitStatuses())

	require.Len(t, series, 2)
	assert.Equal(t, "2026-01", series[0].MonthKey)
	assert.Equal(t, "Jan 2026", series[0].Label)
	assert.Equal(t, "2026-02", series[1].MonthKey)
	for _, e := range series {
		assertDec(t, "0", e.Gross)
		assertDec(t, "0", e.Net)
		assert.Equal(t, 0, e.Orders)
	}
}

func TestBuildMonthlyProfitSeries_AcumulaPorMes(t *testing.T) {
	r := januaryFebruary(t)
	items := sampleItems()
	subtotals := analytics.BuildOrderItemGrossMap(items)
	quantities := analytics.BuildOrderItemQuantityMap(items)

	series := analytics.BuildMonthlyProfitSeries(sampleOrders(), subtotals, quantities, r, analytics.ProfitStatuses())

	require.Len(t, series, 2)
	assert.Equal(t, 1, series[0].Orders)
	assertDec(t, "1500", series[0].Gross)
	assertDec(t, "-20", series[0].Net)
	assert.Equal(t, 1, series[1].Orders)
	assertDec(t, "1230", series[1].Gross)
}

func TestBuildMonthlyProfitSeries_CruzaAnio(t *testing.T) {
	r, err := analytics.GetCustomRange("2025-11-20", "2026-02-03", time.UTC)
	require.NoError(t, err)
	empty := analytics.ItemTotals{}

	series := analytics.BuildMonthlyProfitSeries(nil, empty, empty, r, analytics.ProfitStatuses())

	keys := make([]string, 0, len(series))
	for _, e := range series {
		keys = append(keys, e.MonthKey)
	}
	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01", "2026-02"}, keys)
}

// El mes del pedido se calcula en la zona del rango: 1-feb 02:00 UTC es 31-ene en Bogotá.
func TestBuildMonthlyProfitSeries_MesEnZonaDelRango(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	r, err := analytics.GetCustomRange("2026-01-01", "2026-02-28", bogota)
	require.NoError(t, err)
	orders := []analytics.OrderRow{
		{ID: "a", Status: "paid", TotalAmount: analytics.NumInt(10), CreatedAt: "2026-02-01T02:00:00Z"},
	}
	empty := analytics.ItemTotals{}

	series := analytics.BuildMonthlyProfitSeries(orders, empty, empty, r, analytics.ProfitStatuses())

	require.Len(t, series, 2)
	assert.Equal(t, 1, series[0].Orders)
	assert.Equal(t, 0, series[1].Orders)
}
