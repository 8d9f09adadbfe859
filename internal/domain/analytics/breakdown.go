package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Límite por defecto de los rankings del panel.
const DefaultRankingLimit = 10

const unknownProduct = "Unknown Product"

// StatusMetrics desglose de rentabilidad de un estado.
type StatusMetrics struct {
	Status   string
	Orders   int
	Gross    decimal.Decimal
	Discount decimal.Decimal
	Net      decimal.Decimal
}

// BuildStatusMetrics desglosa por estado rentable (paid, done, preparing, en ese orden)
// con el mismo filtro que SummarizeProfit.
func BuildStatusMetrics(
	orders []OrderRow,
	itemSubtotals, itemQuantities ItemTotals,
	r DateRange,
) []StatusMetrics {
	statuses := ProfitStatuses()
	rows := make([]StatusMetrics, len(statuses))
	index := make(map[string]int, len(statuses))
	for i, s := range statuses {
		rows[i] = StatusMetrics{Status: s, Gross: decimal.Zero, Discount: decimal.Zero, Net: decimal.Zero}
		index[s] = i
	}

	for _, order := range orders {
		status, ok := inScope(order, statuses, r)
		if !ok {
			continue
		}
		row := &rows[index[status]]
		row.Orders++
		row.Gross = row.Gross.Add(GrossForOrder(order, itemSubtotals, itemQuantities))
		row.Discount = row.Discount.Add(DiscountForOrder(order, itemSubtotals.Lookup(order.ID)))
		row.Net = row.Net.Add(NetForOrder(order, itemSubtotals, itemQuantities))
	}
	return rows
}

// ScopeOrders devuelve, en el orden de entrada, los pedidos que pasan el filtro de estado y fecha.
func ScopeOrders(orders []OrderRow, allowed []string, r DateRange) []OrderRow {
	scoped := make([]OrderRow, 0, len(orders))
	for _, order := range orders {
		if _, ok := inScope(order, allowed, r); ok {
			scoped = append(scoped, order)
		}
	}
	return scoped
}

// ── Etiquetas de variantes ────────────────────────────────────────────────────

// VariantMeta metadatos mínimos de una variante de producto.
type VariantMeta struct {
	ID        string
	SKU       string
	ProductID string
	SizeID    string
	ColorID   string
}

// BuildVariantLabels arma "SKU - Producto / Talla / Color" para cada variante.
// Las partes ausentes se omiten; un producto desconocido se rotula "Unknown Product".
func BuildVariantLabels(variants []VariantMeta, products, sizes, colors map[string]string) map[string]string {
	labels := make(map[string]string, len(variants))
	for _, v := range variants {
		productName, ok := products[v.ProductID]
		if !ok {
			productName = unknownProduct
		}
		parts := []string{productName}
		if name := lookupName(sizes, v.SizeID); name != "" {
			parts = append(parts, name)
		}
		if name := lookupName(colors, v.ColorID); name != "" {
			parts = append(parts, name)
		}
		label := strings.Join(parts, " / ")
		if v.SKU != "" {
			label = v.SKU + " - " + label
		}
		labels[v.ID] = label
	}
	return labels
}

func lookupName(names map[string]string, id string) string {
	if id == "" {
		return ""
	}
	return names[id]
}

// ── Rankings ──────────────────────────────────────────────────────────────────

// VariantRank fila del ranking de variantes más vendidas.
type VariantRank struct {
	VariantID string
	Label     string
	Quantity  decimal.Decimal
	Orders    int
	Revenue   decimal.Decimal
}

// TopSoldVariants agrega las líneas de los pedidos en alcance por variante y ordena por
// cantidad, luego pedidos distintos, luego ingreso (todo descendente).
func TopSoldVariants(items []OrderItemRow, scoped []OrderRow, labels map[string]string, limit int) []VariantRank {
	inScopeIDs := make(map[string]struct{}, len(scoped))
	for _, o := range scoped {
		inScopeIDs[o.ID] = struct{}{}
	}

	type acc struct {
		rank     VariantRank
		orderIDs map[string]struct{}
	}
	var order []string
	byVariant := make(map[string]*acc)

	for _, item := range items {
		if item.VariantID == "" {
			continue
		}
		if _, ok := inScopeIDs[item.OrderID]; !ok {
			continue
		}
		qty := ToNumber(item.Quantity)
		revenue := ToNumber(item.Price).Mul(qty)

		a, ok := byVariant[item.VariantID]
		if !ok {
			a = &acc{
				rank:     VariantRank{VariantID: item.VariantID, Quantity: decimal.Zero, Revenue: decimal.Zero},
				orderIDs: make(map[string]struct{}),
			}
			byVariant[item.VariantID] = a
			order = append(order, item.VariantID)
		}
		a.rank.Quantity = a.rank.Quantity.Add(qty)
		a.rank.Revenue = a.rank.Revenue.Add(revenue)
		a.orderIDs[item.OrderID] = struct{}{}
	}

	ranks := make([]VariantRank, 0, len(order))
	for _, id := range order {
		a := byVariant[id]
		a.rank.Orders = len(a.orderIDs)
		a.rank.Label = id
		if label, ok := labels[id]; ok {
			a.rank.Label = label
		}
		ranks = append(ranks, a.rank)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if !a.Quantity.Equal(b.Quantity) {
			return a.Quantity.GreaterThan(b.Quantity)
		}
		if a.Orders != b.Orders {
			return a.Orders > b.Orders
		}
		return a.Revenue.GreaterThan(b.Revenue)
	})
	return truncate(ranks, limit)
}

// ClientRank fila del ranking de clientes más activos.
type ClientRank struct {
	UserID  string
	Name    string
	Email   string
	Orders  int
	ItemQty decimal.Decimal
	Gross   decimal.Decimal
	Net     decimal.Decimal
}

// MostActiveClients agrega los pedidos en alcance por user_id y ordena por pedidos,
// luego unidades, luego neto (todo descendente). Los pedidos sin usuario se ignoran.
func MostActiveClients(scoped []OrderRow, itemSubtotals, itemQuantities ItemTotals, limit int) []ClientRank {
	var ranks []ClientRank
	index := make(map[string]int)

	for _, o := range scoped {
		if o.UserID == "" {
			continue
		}
		i, ok := index[o.UserID]
		if !ok {
			i = len(ranks)
			index[o.UserID] = i
			ranks = append(ranks, ClientRank{
				UserID:  o.UserID,
				Name:    clientName(o),
				Email:   o.Email,
				ItemQty: decimal.Zero,
				Gross:   decimal.Zero,
				Net:     decimal.Zero,
			})
		}
		c := &ranks[i]
		c.Orders++
		if qty := itemQuantities.Lookup(o.ID); qty.Valid {
			c.ItemQty = c.ItemQty.Add(qty.Decimal)
		}
		c.Gross = c.Gross.Add(GrossForOrder(o, itemSubtotals, itemQuantities))
		c.Net = c.Net.Add(NetForOrder(o, itemSubtotals, itemQuantities))
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if a.Orders != b.Orders {
			return a.Orders > b.Orders
		}
		if !a.ItemQty.Equal(b.ItemQty) {
			return a.ItemQty.GreaterThan(b.ItemQty)
		}
		return a.Net.GreaterThan(b.Net)
	})
	return truncate(ranks, limit)
}

func clientName(o OrderRow) string {
	if full := strings.TrimSpace(o.FirstName + " " + o.SecondName); full != "" {
		return full
	}
	if o.Email != "" {
		return o.Email
	}
	return o.UserID
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	if rows == nil {
		return []T{}
	}
	return rows
}
