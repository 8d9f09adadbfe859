package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de la portada del back-office:
//   - rentabilidad de los últimos 30 días (preset 1m),
//   - pedidos por estado visible en ese mismo rango,
//   - neto mensual de los últimos 6 meses.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	opts          Options
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, opts Options) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, opts: opts.withDefaults()}
}

// Overview construye el DashboardOverviewDTO.
func (uc *DashboardUseCase) Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	now := uc.opts.now()
	last30, err := engine.GetPresetRange(engine.Period1M, now)
	if err != nil {
		return nil, err
	}
	last6m, err := engine.GetPresetRange(engine.Period6M, now)
	if err != nil {
		return nil, err
	}

	ds, err := loadOrderDataset(ctx, uc.analyticsRepo)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar pedidos: %w", err)
	}

	profitStatuses := engine.ProfitStatuses()
	displayStatuses := engine.DisplayStatuses()

	summary := engine.SummarizeProfit(ds.orders, ds.subtotals, ds.quantities, profitStatuses, last30)
	counts := engine.BuildStatusCount(ds.orders, displayStatuses, &last30)
	series := engine.BuildMonthlyProfitSeries(ds.orders, ds.subtotals, ds.quantities, last6m, profitStatuses)

	statusRows := make([]dto.StatusCountDTO, 0, len(displayStatuses))
	for _, s := range displayStatuses {
		statusRows = append(statusRows, dto.StatusCountDTO{
			Status: s,
			Label:  engine.StatusLabel(s),
			Count:  counts[s],
		})
	}

	return &dto.DashboardOverviewDTO{
		Last30Days:       summaryDTO(summary),
		Last30DaysPeriod: periodDTO(engine.Period1M, last30),
		StatusCounts:     statusRows,
		MonthlyNet:       monthlyDTO(series),
		MonthlyPeriod:    periodDTO(engine.Period6M, last6m),
		GeneratedAt:      now,
	}, nil
}
