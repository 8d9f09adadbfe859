package main

import (
	"context"
	"fmt"

	appanalytics "github.com/jhoicas/backoffice-api/internal/application/analytics"
	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
	infrapdf "github.com/jhoicas/backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// app casos de uso que necesita la CLI, más el cierre del pool.
type app struct {
	profit *appanalytics.ProfitUseCase
	pdf    *appanalytics.PDFUseCase
	close  func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	// Los logs van a stderr para no mezclarse con el reporte.
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: stderr})

	loc, err := cfg.Analytics.Location()
	if err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}

	repo := postgres.NewAnalyticsRepository(pool)
	profit := appanalytics.NewProfitUseCase(repo, repo, appanalytics.Options{
		Location:      loc,
		TopN:          cfg.Analytics.TopN,
		DefaultPeriod: engine.Period(cfg.Analytics.DefaultPeriod),
	})
	return &app{
		profit: profit,
		pdf:    appanalytics.NewPDFUseCase(profit, infrapdf.NewMarotoPDFGenerator(cfg.App.Name)),
		close:  pool.Close,
	}, nil
}
