package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuildOrderItemGrossMap suma price × quantity por pedido en una sola pasada.
func BuildOrderItemGrossMap(items []OrderItemRow) ItemTotals {
	m := make(ItemTotals)
	for _, item := range items {
		line := ToNumber(item.Price).Mul(ToNumber(item.Quantity))
		m[item.OrderID] = m[item.OrderID].Add(line)
	}
	return m
}

// BuildOrderItemQuantityMap suma quantity por pedido en una sola pasada.
func BuildOrderItemQuantityMap(items []OrderItemRow) ItemTotals {
	m := make(ItemTotals)
	for _, item := range items {
		m[item.OrderID] = m[item.OrderID].Add(ToNumber(item.Quantity))
	}
	return m
}

// inScope es el filtro común: estado permitido y luego fecha dentro del rango.
func inScope(order OrderRow, allowed []string, r DateRange) (string, bool) {
	status, ok := allowedStatus(order.Status, allowed)
	if !ok {
		return "", false
	}
	if !InDateRange(order.CreatedAt, r) {
		return "", false
	}
	return status, true
}

// SummarizeProfit acumula bruto, neto, descuento y cantidad de pedidos en alcance.
// Es el cálculo de referencia: cualquier desglose debe aplicar el mismo filtro.
func SummarizeProfit(
	orders []OrderRow,
	itemSubtotals, itemQuantities ItemTotals,
	allowed []string,
	r DateRange,
) ProfitMetrics {
	m := ProfitMetrics{
		GrossProfit:   decimal.Zero,
		NetProfit:     decimal.Zero,
		DiscountTotal: decimal.Zero,
	}
	for _, order := range orders {
		if _, ok := inScope(order, allowed, r); !ok {
			continue
		}
		m.GrossProfit = m.GrossProfit.Add(GrossForOrder(order, itemSubtotals, itemQuantities))
		m.NetProfit = m.NetProfit.Add(NetForOrder(order, itemSubtotals, itemQuantities))
		m.DiscountTotal = m.DiscountTotal.Add(DiscountForOrder(order, itemSubtotals.Lookup(order.ID)))
		m.OrderCount++
	}
	return m
}

// BuildStatusCount cuenta pedidos por estado permitido. Todos los estados permitidos
// aparecen, aunque sea en 0. Con r == nil cuenta sobre todo el historial.
func BuildStatusCount(orders []OrderRow, allowed []string, r *DateRange) map[string]int {
	counts := make(map[string]int, len(allowed))
	for _, status := range allowed {
		counts[status] = 0
	}
	for _, order := range orders {
		status, ok := allowedStatus(order.Status, allowed)
		if !ok {
			continue
		}
		if r != nil && !InDateRange(order.CreatedAt, *r) {
			continue
		}
		counts[status]++
	}
	return counts
}

// BuildMonthlyProfitSeries devuelve un acumulado por mes calendario entre el mes de
// r.From y el de r.To, ambos inclusive y en orden cronológico. Los meses sin pedidos
// aparecen en cero.
func BuildMonthlyProfitSeries(
	orders []OrderRow,
	itemSubtotals, itemQuantities ItemTotals,
	r DateRange,
	allowed []string,
) []MonthlyEntry {
	loc := r.From.Location()
	series := make([]MonthlyEntry, 0, 12)
	index := make(map[string]int)

	cursor := time.Date(r.From.Year(), r.From.Month(), 1, 0, 0, 0, 0, loc)
	end := time.Date(r.To.Year(), r.To.Month(), 1, 0, 0, 0, 0, loc)
	for !cursor.After(end) {
		key := MonthKey(cursor)
		index[key] = len(series)
		series = append(series, MonthlyEntry{
			MonthKey: key,
			Label:    MonthLabel(key),
			Gross:    decimal.Zero,
			Net:      decimal.Zero,
		})
		cursor = cursor.AddDate(0, 1, 0)
	}

	for _, order := range orders {
		if _, ok := allowedStatus(order.Status, allowed); !ok {
			continue
		}
		createdAt, ok := ParseTimestamp(order.CreatedAt, loc)
		if !ok || !inRange(createdAt, r) {
			continue
		}
		i, ok := index[MonthKey(createdAt.In(loc))]
		if !ok {
			continue
		}
		series[i].Gross = series[i].Gross.Add(GrossForOrder(order, itemSubtotals, itemQuantities))
		series[i].Net = series[i].Net.Add(NetForOrder(order, itemSubtotals, itemQuantities))
		series[i].Orders++
	}
	return series
}
