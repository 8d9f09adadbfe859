package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// ProfitReportRequest parámetros para GET /api/analytics/profit.
type ProfitReportRequest struct {
	Period string `query:"period"` // 1m|3m|6m|12m|custom; por defecto ANALYTICS_DEFAULT_PERIOD
	From   string `query:"from"`   // YYYY-MM-DD, solo con period=custom
	To     string `query:"to"`     // YYYY-MM-DD, solo con period=custom
}

// ── Resumen ───────────────────────────────────────────────────────────────────

// ProfitSummaryDTO totales del período sobre los estados rentables.
type ProfitSummaryDTO struct {
	OrderCount    int             `json:"order_count"`
	GrossProfit   decimal.Decimal `json:"gross_profit"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// MonthlyProfitDTO un mes calendario de la serie.
type MonthlyProfitDTO struct {
	MonthKey string          `json:"month_key"` // YYYY-MM
	Label    string          `json:"label"`     // ej. "Jan 2026"
	Gross    decimal.Decimal `json:"gross"`
	Net      decimal.Decimal `json:"net"`
	Orders   int             `json:"orders"`
}

// StatusProfitDTO desglose de un estado rentable.
type StatusProfitDTO struct {
	Status   string          `json:"status"`
	Label    string          `json:"label"`
	Orders   int             `json:"orders"`
	Gross    decimal.Decimal `json:"gross"`
	Discount decimal.Decimal `json:"discount"`
	Net      decimal.Decimal `json:"net"`
}

// ── Rankings ──────────────────────────────────────────────────────────────────

// TopVariantDTO variante en el ranking de más vendidas.
type TopVariantDTO struct {
	Rank      int             `json:"rank"`
	VariantID string          `json:"variant_id"`
	Label     string          `json:"label"` // "SKU - Producto / Talla / Color"
	Quantity  decimal.Decimal `json:"quantity"`
	Orders    int             `json:"orders"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopClientDTO cliente en el ranking de más activos.
type TopClientDTO struct {
	Rank    int             `json:"rank"`
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Orders  int             `json:"orders"`
	ItemQty decimal.Decimal `json:"item_qty"`
	Gross   decimal.Decimal `json:"gross"`
	Net     decimal.Decimal `json:"net"`
}

// ── Reporte combinado ─────────────────────────────────────────────────────────

// ProfitReportDTO respuesta de GET /api/analytics/profit.
type ProfitReportDTO struct {
	Period      PeriodDTO          `json:"period"`
	Summary     ProfitSummaryDTO   `json:"summary"`
	Monthly     []MonthlyProfitDTO `json:"monthly"`
	ByStatus    []StatusProfitDTO  `json:"by_status"`
	TopVariants []TopVariantDTO    `json:"top_variants"`
	TopClients  []TopClientDTO     `json:"top_clients"`
	GeneratedAt time.Time          `json:"generated_at"`
}
