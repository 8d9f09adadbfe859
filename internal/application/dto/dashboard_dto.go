package dto

import "time"

// StatusCountDTO pedidos de un estado en el período.
type StatusCountDTO struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// DashboardOverviewDTO respuesta de GET /api/dashboard/overview.
// Resumen y distribución por estado de los últimos 30 días (preset 1m) y serie de 6 meses.
type DashboardOverviewDTO struct {
	Last30Days       ProfitSummaryDTO   `json:"last_30_days"`
	Last30DaysPeriod PeriodDTO          `json:"last_30_days_period"`
	StatusCounts     []StatusCountDTO   `json:"status_counts"`
	MonthlyNet       []MonthlyProfitDTO `json:"monthly_net"`
	MonthlyPeriod    PeriodDTO          `json:"monthly_period"`
	GeneratedAt      time.Time          `json:"generated_at"`
}
