package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

// AnalyticsHandler maneja los endpoints del reporte de rentabilidad.
type AnalyticsHandler struct {
	profitUC *appanalytics.ProfitUseCase
	pdfUC    *appanalytics.PDFUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(profitUC *appanalytics.ProfitUseCase, pdfUC *appanalytics.PDFUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{profitUC: profitUC, pdfUC: pdfUC}
}

// GetProfit godoc
// @Summary      Reporte de rentabilidad
// @Description  Ganancia bruta y neta, descuentos, serie mensual, desglose por estado y rankings. Solo cuentan pedidos paid, preparing y done.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "1m, 3m, 6m, 12m o custom (default 3m)"
// @Param        from    query  string  false  "Inicio YYYY-MM-DD (period=custom)"
// @Param        to      query  string  false  "Fin YYYY-MM-DD (period=custom)"
// @Success      200  {object}  dto.ProfitReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/profit [get]
func (h *AnalyticsHandler) GetProfit(c *fiber.Ctx) error {
	var req dto.ProfitReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.profitUC.Report(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// DownloadProfitPDF godoc
// @Summary      Reporte de rentabilidad en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "1m, 3m, 6m, 12m o custom (default 3m)"
// @Param        from    query  string  false  "Inicio YYYY-MM-DD (period=custom)"
// @Param        to      query  string  false  "Fin YYYY-MM-DD (period=custom)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/profit/pdf [get]
func (h *AnalyticsHandler) DownloadProfitPDF(c *fiber.Ctx) error {
	var req dto.ProfitReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	pdfBytes, filename, err := h.pdfUC.Download(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
