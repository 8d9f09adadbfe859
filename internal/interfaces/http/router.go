package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/orders"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProfitUC    *appanalytics.ProfitUseCase
	ProfitPDF   *appanalytics.PDFUseCase
	DashboardUC *appanalytics.DashboardUseCase
	OrdersUC    *orders.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas: Bearer Token + rol admin
	admin := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	admin.Get("/auth/me", authHandler.Me)

	// Analítica de rentabilidad
	analyticsHandler := NewAnalyticsHandler(deps.ProfitUC, deps.ProfitPDF)
	admin.Get("/analytics/profit", analyticsHandler.GetProfit)
	admin.Get("/analytics/profit/pdf", analyticsHandler.DownloadProfitPDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard/overview", dashboardHandler.GetOverview)

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrdersUC)
	admin.Get("/orders", orderHandler.List)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)
}
