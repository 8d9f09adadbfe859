package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
)

func newProfitUC(a *fakeAnalyticsRepo, c *fakeCatalogRepo) *appanalytics.ProfitUseCase {
	return appanalytics.NewProfitUseCase(a, c, appanalytics.Options{
		TopN:          10,
		DefaultPeriod: engine.Period3M,
		Clock:         fixedClock,
	})
}

func TestResolveRange_PeriodoPorDefecto(t *testing.T) {
	uc := newProfitUC(sampleAnalyticsRepo(), sampleCatalogRepo())

	period, r, err := uc.ResolveRange(dto.ProfitReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, engine.Period3M, period)
	assert.Equal(t, "2025-12-15", engine.DateInputString(r.From))
	assert.Equal(t, "2026-03-15", engine.DateInputString(r.To))
}

func TestResolveRange_FechasSinPeriodoSonCustom(t *testing.T) {
	uc := newProfitUC(sampleAnalyticsRepo(), sampleCatalogRepo())

	period, r, err := uc.ResolveRange(dto.ProfitReportRequest{From: "2026-01-01", To: "2026-01-31"})
	require.NoError(t, err)
	assert.Equal(t, engine.PeriodCustom, period)
	assert.Equal(t, "2026-01-01", engine.DateInputString(r.From))
}

func TestResolveRange_Errores(t *testing.T) {
	uc := newProfitUC(sampleAnalyticsRepo(), sampleCatalogRepo())

	_, _, err := uc.ResolveRange(dto.ProfitReportRequest{Period: "custom", From: "2026-02-01", To: "2026-01-01"})
	assert.ErrorIs(t, err, engine.ErrInvalidRange)

	_, _, err = uc.ResolveRange(dto.ProfitReportRequest{Period: "2w"})
	assert.ErrorIs(t, err, engine.ErrUnknownPeriod)
}

func TestReport_UnMes(t *testing.T) {
	uc := newProfitUC(sampleAnalyticsRepo(), sampleCatalogRepo())

	report, err := uc.Report(context.Background(), dto.ProfitReportRequest{Period: "1m"})
	require.NoError(t, err)

	assert.Equal(t, "1m", report.Period.Key)
	assert.Equal(t, "2026-02-15", report.Period.From)
	assert.Equal(t, "UTC", report.Period.Timezone)

	// o1 (paid) y o2 (done) en rango; o3 es failed, o4 unpaid, o5 fuera de rango.
	assert.Equal(t, 2, report.Summary.OrderCount)
	assert.Equal(t, "3500", report.Summary.GrossProfit.String())
	// o1: 2000 - (1000 + 2*130) = 740; o2: 1500 - 1130 = 370
	assert.Equal(t, "1110", report.Summary.NetProfit.String())
	assert.Equal(t, "100", report.Summary.DiscountTotal.String())

	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "2026-02", report.Monthly[0].MonthKey)
	assert.Equal(t, "Mar 2026", report.Monthly[1].Label)

	require.Len(t, report.ByStatus, 3)
	assert.Equal(t, "Paid", report.ByStatus[0].Label)
	assert.Equal(t, 1, report.ByStatus[1].Orders)

	require.Len(t, report.TopVariants, 2)
	assert.Equal(t, 1, report.TopVariants[0].Rank)
	assert.Equal(t, "TS-01 - Camiseta / M", report.TopVariants[0].Label)
	assert.Equal(t, "2", report.TopVariants[0].Quantity.String(), "o3 está fuera del alcance")
	assert.Equal(t, "Gorra", report.TopVariants[1].Label)

	require.Len(t, report.TopClients, 2)
	assert.Equal(t, "u1", report.TopClients[0].UserID, "empate en pedidos, gana por unidades")
	assert.Equal(t, "Ana", report.TopClients[0].Name)
	assert.Equal(t, "beto@x.co", report.TopClients[1].Name)
	assert.Equal(t, fixedClock(), report.GeneratedAt)
}

func TestReport_ErrorDeCargaSePropaga(t *testing.T) {
	repo := sampleAnalyticsRepo()
	repo.itemsErr = errDB
	uc := newProfitUC(repo, sampleCatalogRepo())

	_, err := uc.Report(context.Background(), dto.ProfitReportRequest{})
	assert.ErrorIs(t, err, errDB)

	catalog := sampleCatalogRepo()
	catalog.err = errDB
	uc = newProfitUC(sampleAnalyticsRepo(), catalog)
	_, err = uc.Report(context.Background(), dto.ProfitReportRequest{})
	assert.ErrorIs(t, err, errDB)
}

func TestReport_RangoInvalidoNoConsultaDatos(t *testing.T) {
	repo := sampleAnalyticsRepo()
	repo.itemsErr = errDB
	uc := newProfitUC(repo, sampleCatalogRepo())

	_, err := uc.Report(context.Background(), dto.ProfitReportRequest{Period: "custom", From: "x", To: "y"})
	assert.ErrorIs(t, err, engine.ErrInvalidRange)
	assert.NotErrorIs(t, err, errDB)
}

func TestReport_SinPedidos(t *testing.T) {
	uc := newProfitUC(&fakeAnalyticsRepo{}, &fakeCatalogRepo{})

	report, err := uc.Report(context.Background(), dto.ProfitReportRequest{Period: "6m"})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Summary.OrderCount)
	assert.Len(t, report.Monthly, 7, "sep 2025 a mar 2026")
	assert.NotNil(t, report.TopVariants)
	assert.Empty(t, report.TopVariants)
	assert.Empty(t, report.TopClients)
}
