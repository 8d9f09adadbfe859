package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

// ReportPDFGenerator renderiza un reporte de rentabilidad como PDF.
type ReportPDFGenerator interface {
	GenerateProfitReportPDF(ctx context.Context, report *dto.ProfitReportDTO) ([]byte, error)
}

// PDFUseCase genera la versión descargable del reporte de rentabilidad.
type PDFUseCase struct {
	profit    *ProfitUseCase
	generator ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(profit *ProfitUseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{profit: profit, generator: generator}
}

// Download arma el reporte del período pedido y lo renderiza.
// Devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *PDFUseCase) Download(ctx context.Context, req dto.ProfitReportRequest) (pdfBytes []byte, filename string, err error) {
	report, err := uc.profit.Report(ctx, req)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateProfitReportPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("rentabilidad_%s_%s.pdf", report.Period.From, report.Period.To)
	return pdfBytes, filename, nil
}
