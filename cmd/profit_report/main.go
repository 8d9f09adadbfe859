// profit_report imprime el reporte de rentabilidad o lo exporta a PDF sin pasar por la API.
//
// Uso:
//
//	profit_report summary --period 6m
//	profit_report summary --from 2026-01-01 --to 2026-03-31 --json
//	profit_report pdf --period 12m --out rentabilidad.pdf
//
// Lee la misma configuración que la API (.env, config.env y variables de entorno).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

var (
	rootCmd = &cobra.Command{
		Use:           "profit_report",
		Short:         "Reporte de rentabilidad del back-office",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	req dto.ProfitReportRequest
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&req.Period, "period", "p", "", "1m, 3m, 6m, 12m o custom (default: ANALYTICS_DEFAULT_PERIOD)")
	rootCmd.PersistentFlags().StringVar(&req.From, "from", "", "inicio YYYY-MM-DD (implica custom)")
	rootCmd.PersistentFlags().StringVar(&req.To, "to", "", "fin YYYY-MM-DD (implica custom)")

	rootCmd.AddCommand(newSummaryCmd(), newPDFCmd())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("profit_report")
		stop()
		os.Exit(1)
	}
}
