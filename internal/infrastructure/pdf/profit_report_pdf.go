// Package pdf genera la versión imprimible del reporte de rentabilidad.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + tienda     │  Período + zona + generado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Pedidos | Bruto | Descuentos | Neto                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Pedidos | Bruto | Neto                         │
//	│  TABLA: Estado | Pedidos | Bruto | Descuento | Neto          │
//	│  TABLA: # | Variante | Unidades | Pedidos | Ingreso          │
//	│  TABLA: # | Cliente | Pedidos | Unidades | Bruto | Neto      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorStripe   = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

// NewMarotoPDFGenerator construye el generador. storeName aparece en el encabezado.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{storeName: storeName}
}

// GenerateProfitReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProfitReportPDF(_ context.Context, report *dto.ProfitReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de rentabilidad", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, g.storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Serie mensual"))
	m.AddRows(monthlyRows(report.Monthly)...)

	m.AddRows(sectionTitle("Desglose por estado"))
	m.AddRows(statusRows(report.ByStatus)...)

	m.AddRows(sectionTitle("Variantes más vendidas"))
	m.AddRows(variantRows(report.TopVariants)...)

	m.AddRows(sectionTitle("Clientes más activos"))
	m.AddRows(clientRows(report.TopClients)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + tienda (izq) y período + fecha de generación (der).
func headerRow(report *dto.ProfitReportDTO, storeName string) core.Row {
	period := fmt.Sprintf("%s a %s", report.Period.From, report.Period.To)
	generated := report.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE RENTABILIDAD", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(storeName, "Back-office"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO "+strings.ToUpper(report.Period.Key), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Zona: "+report.Period.Timezone+"   |   Generado: "+generated, props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cuatro tarjetas con los totales del período.
func summaryRow(s dto.ProfitSummaryDTO) core.Row {
	card := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorGray, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: valueColor, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		card("PEDIDOS", strconv.Itoa(s.OrderCount), colorPrimary),
		card("GANANCIA BRUTA", "$"+formatMoney(s.GrossProfit), colorPrimary),
		card("DESCUENTOS", "$"+formatMoney(s.DiscountTotal), colorPrimary),
		card("GANANCIA NETA", "$"+formatMoney(s.NetProfit), amountColor(s.NetProfit)),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(strings.ToUpper(title), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 4,
		}),
	))
}

// column describe una columna de tabla: ancho en la grilla de 12 y alineación.
type column struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera con fondo azul.
func tableHeaderRow(cols []column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRow: una fila de datos; las filas pares llevan fondo alterno.
func tableRow(cols []column, values []string, i int, colors ...*props.Color) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for j, c := range cols {
		p := props.Text{Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1}
		if j < len(colors) && colors[j] != nil {
			p.Color = colors[j]
		}
		cells = append(cells, col.New(c.size).Add(text.New(values[j], p)))
	}
	r := row.New(6).Add(cells...)
	if i%2 == 1 {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 8, Align: align.Center, Color: colorGray, Top: 1,
	})))
}

func monthlyRows(series []dto.MonthlyProfitDTO) []core.Row {
	cols := []column{
		{"Mes", 4, align.Left},
		{"Pedidos", 2, align.Center},
		{"Bruto", 3, align.Right},
		{"Neto", 3, align.Right},
	}
	rows := []core.Row{tableHeaderRow(cols)}
	for i, e := range series {
		rows = append(rows, tableRow(cols, []string{
			e.Label,
			strconv.Itoa(e.Orders),
			"$" + formatMoney(e.Gross),
			"$" + formatMoney(e.Net),
		}, i, nil, nil, nil, amountColor(e.Net)))
	}
	if len(series) == 0 {
		rows = append(rows, emptyRow("Sin meses en el período"))
	}
	return rows
}

func statusRows(byStatus []dto.StatusProfitDTO) []core.Row {
	cols := []column{
		{"Estado", 3, align.Left},
		{"Pedidos", 1, align.Center},
		{"Bruto", 3, align.Right},
		{"Descuento", 2, align.Right},
		{"Neto", 3, align.Right},
	}
	rows := []core.Row{tableHeaderRow(cols)}
	for i, s := range byStatus {
		rows = append(rows, tableRow(cols, []string{
			s.Label,
			strconv.Itoa(s.Orders),
			"$" + formatMoney(s.Gross),
			"$" + formatMoney(s.Discount),
			"$" + formatMoney(s.Net),
		}, i, nil, nil, nil, nil, amountColor(s.Net)))
	}
	return rows
}

func variantRows(variants []dto.TopVariantDTO) []core.Row {
	cols := []column{
		{"#", 1, align.Center},
		{"Variante", 5, align.Left},
		{"Unidades", 2, align.Center},
		{"Pedidos", 1, align.Center},
		{"Ingreso", 3, align.Right},
	}
	rows := []core.Row{tableHeaderRow(cols)}
	for i, v := range variants {
		rows = append(rows, tableRow(cols, []string{
			strconv.Itoa(v.Rank),
			truncateText(v.Label, 48),
			v.Quantity.String(),
			strconv.Itoa(v.Orders),
			"$" + formatMoney(v.Revenue),
		}, i))
	}
	if len(variants) == 0 {
		rows = append(rows, emptyRow("Sin ventas en el período"))
	}
	return rows
}

func clientRows(clients []dto.TopClientDTO) []core.Row {
	cols := []column{
		{"#", 1, align.Center},
		{"Cliente", 4, align.Left},
		{"Pedidos", 1, align.Center},
		{"Unidades", 2, align.Center},
		{"Neto", 4, align.Right},
	}
	rows := []core.Row{tableHeaderRow(cols)}
	for i, c := range clients {
		rows = append(rows, tableRow(cols, []string{
			strconv.Itoa(c.Rank),
			truncateText(c.Name, 40),
			strconv.Itoa(c.Orders),
			c.ItemQty.String(),
			"$" + formatMoney(c.Net),
		}, i, nil, nil, nil, nil, amountColor(c.Net)))
	}
	if len(clients) == 0 {
		rows = append(rows, emptyRow("Sin clientes en el período"))
	}
	return rows
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Neto = total cobrado menos envío estimado (1.000 + 130 por unidad). "+
				"Solo cuentan pedidos paid, preparing y done.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func amountColor(v decimal.Decimal) *props.Color {
	if v.IsNegative() {
		return colorNegative
	}
	return nil
}

// formatMoney redondea a 2 decimales con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", -1150.5 → "-1.150,50"
func formatMoney(v decimal.Decimal) string {
	s := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un string de dígitos.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// truncateText corta s a limit runas, con "…" al final si se cortó.
func truncateText(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
