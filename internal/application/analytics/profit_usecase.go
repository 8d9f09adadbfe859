package analytics

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ProfitUseCase genera el reporte de rentabilidad de un período: resumen, serie
// mensual, desglose por estado y rankings de variantes y clientes.
type ProfitUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	catalogRepo   repository.CatalogRepository
	opts          Options
}

// NewProfitUseCase construye el caso de uso.
func NewProfitUseCase(
	analyticsRepo repository.AnalyticsRepository,
	catalogRepo repository.CatalogRepository,
	opts Options,
) *ProfitUseCase {
	return &ProfitUseCase{
		analyticsRepo: analyticsRepo,
		catalogRepo:   catalogRepo,
		opts:          opts.withDefaults(),
	}
}

// ResolveRange traduce los parámetros de la petición a un rango.
// Sin period se usa el configurado; con from/to y sin period se asume custom.
// Devuelve engine.ErrUnknownPeriod o engine.ErrInvalidRange para entradas inválidas.
func (uc *ProfitUseCase) ResolveRange(req dto.ProfitReportRequest) (engine.Period, engine.DateRange, error) {
	period := engine.Period(strings.ToLower(strings.TrimSpace(req.Period)))
	if period == "" {
		period = uc.opts.DefaultPeriod
		if req.From != "" || req.To != "" {
			period = engine.PeriodCustom
		}
	}
	if period == engine.PeriodCustom {
		r, err := engine.GetCustomRange(req.From, req.To, uc.opts.Location)
		return period, r, err
	}
	r, err := engine.GetPresetRange(period, uc.opts.now())
	return period, r, err
}

// Report construye el reporte. Los seis conjuntos de datos se leen en paralelo.
func (uc *ProfitUseCase) Report(ctx context.Context, req dto.ProfitReportRequest) (*dto.ProfitReportDTO, error) {
	period, r, err := uc.ResolveRange(req)
	if err != nil {
		return nil, err
	}

	var (
		ds                    orderDataset
		variants              []engine.VariantMeta
		products, sizes, cols map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { ds.orders, err = uc.analyticsRepo.ListOrderRows(gctx); return })
	g.Go(func() (err error) { ds.items, err = uc.analyticsRepo.ListOrderItemRows(gctx); return })
	g.Go(func() (err error) { variants, err = uc.catalogRepo.ListVariants(gctx); return })
	g.Go(func() (err error) { products, err = uc.catalogRepo.ProductNames(gctx); return })
	g.Go(func() (err error) { sizes, err = uc.catalogRepo.SizeNames(gctx); return })
	g.Go(func() (err error) { cols, err = uc.catalogRepo.ColorNames(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.Report: cargar datos: %w", err)
	}
	ds.subtotals = engine.BuildOrderItemGrossMap(ds.items)
	ds.quantities = engine.BuildOrderItemQuantityMap(ds.items)

	allowed := engine.ProfitStatuses()
	summary := engine.SummarizeProfit(ds.orders, ds.subtotals, ds.quantities, allowed, r)
	series := engine.BuildMonthlyProfitSeries(ds.orders, ds.subtotals, ds.quantities, r, allowed)
	byStatus := engine.BuildStatusMetrics(ds.orders, ds.subtotals, ds.quantities, r)

	scoped := engine.ScopeOrders(ds.orders, allowed, r)
	labels := engine.BuildVariantLabels(variants, products, sizes, cols)
	topVariants := engine.TopSoldVariants(ds.items, scoped, labels, uc.opts.TopN)
	topClients := engine.MostActiveClients(scoped, ds.subtotals, ds.quantities, uc.opts.TopN)

	return &dto.ProfitReportDTO{
		Period:      periodDTO(period, r),
		Summary:     summaryDTO(summary),
		Monthly:     monthlyDTO(series),
		ByStatus:    statusDTO(byStatus),
		TopVariants: variantsDTO(topVariants),
		TopClients:  clientsDTO(topClients),
		GeneratedAt: uc.opts.now(),
	}, nil
}

func statusDTO(rows []engine.StatusMetrics) []dto.StatusProfitDTO {
	out := make([]dto.StatusProfitDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.StatusProfitDTO{
			Status:   s.Status,
			Label:    engine.StatusLabel(s.Status),
			Orders:   s.Orders,
			Gross:    s.Gross.Round(2),
			Discount: s.Discount.Round(2),
			Net:      s.Net.Round(2),
		})
	}
	return out
}

func variantsDTO(rows []engine.VariantRank) []dto.TopVariantDTO {
	out := make([]dto.TopVariantDTO, 0, len(rows))
	for i, v := range rows {
		out = append(out, dto.TopVariantDTO{
			Rank:      i + 1,
			VariantID: v.VariantID,
			Label:     v.Label,
			Quantity:  v.Quantity,
			Orders:    v.Orders,
			Revenue:   v.Revenue.Round(2),
		})
	}
	return out
}

func clientsDTO(rows []engine.ClientRank) []dto.TopClientDTO {
	out := make([]dto.TopClientDTO, 0, len(rows))
	for i, c := range rows {
		out = append(out, dto.TopClientDTO{
			Rank:    i + 1,
			UserID:  c.UserID,
			Name:    c.Name,
			Email:   c.Email,
			Orders:  c.Orders,
			ItemQty: c.ItemQty,
			Gross:   c.Gross.Round(2),
			Net:     c.Net.Round(2),
		})
	}
	return out
}
