// Package analytics contiene los casos de uso del reporte de rentabilidad y del
// resumen del dashboard. Cargan los registros crudos y delegan todo el cálculo
// en el motor puro de internal/domain/analytics.
package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// Options parámetros compartidos por los casos de uso de analítica.
type Options struct {
	Location      *time.Location   // zona de días y meses; nil = UTC
	TopN          int              // tamaño de los rankings; <= 0 usa engine.DefaultRankingLimit
	DefaultPeriod engine.Period    // período cuando la petición no trae uno
	Clock         func() time.Time // nil = time.Now
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.TopN <= 0 {
		o.TopN = engine.DefaultRankingLimit
	}
	if o.DefaultPeriod == "" {
		o.DefaultPeriod = engine.Period3M
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

func (o Options) now() time.Time {
	return o.Clock().In(o.Location)
}

// ── Carga de datos ────────────────────────────────────────────────────────────

// orderDataset pedidos y líneas crudos más los mapas derivados de las líneas.
type orderDataset struct {
	orders     []engine.OrderRow
	items      []engine.OrderItemRow
	subtotals  engine.ItemTotals
	quantities engine.ItemTotals
}

// loadOrderDataset lee pedidos y líneas en paralelo; el primer error cancela el resto.
func loadOrderDataset(ctx context.Context, repo repository.AnalyticsRepository) (*orderDataset, error) {
	ds := &orderDataset{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds.orders, err = repo.ListOrderRows(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.items, err = repo.ListOrderItemRows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	ds.subtotals = engine.BuildOrderItemGrossMap(ds.items)
	ds.quantities = engine.BuildOrderItemQuantityMap(ds.items)
	return ds, nil
}

// ── Conversión a DTO ──────────────────────────────────────────────────────────

func periodDTO(key engine.Period, r engine.DateRange) dto.PeriodDTO {
	return dto.PeriodDTO{
		Key:      string(key),
		From:     engine.DateInputString(r.From),
		To:       engine.DateInputString(r.To),
		Timezone: r.From.Location().String(),
	}
}

func summaryDTO(m engine.ProfitMetrics) dto.ProfitSummaryDTO {
	return dto.ProfitSummaryDTO{
		OrderCount:    m.OrderCount,
		GrossProfit:   m.GrossProfit.Round(2),
		DiscountTotal: m.DiscountTotal.Round(2),
		NetProfit:     m.NetProfit.Round(2),
	}
}

func monthlyDTO(series []engine.MonthlyEntry) []dto.MonthlyProfitDTO {
	out := make([]dto.MonthlyProfitDTO, 0, len(series))
	for _, e := range series {
		out = append(out, dto.MonthlyProfitDTO{
			MonthKey: e.MonthKey,
			Label:    e.Label,
			Gross:    e.Gross.Round(2),
			Net:      e.Net.Round(2),
			Orders:   e.Orders,
		})
	}
	return out
}
