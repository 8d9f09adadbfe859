package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

var stderr io.Writer = os.Stderr

func newSummaryCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Imprime el reporte de rentabilidad del período",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			report, err := a.profit.Report(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON (mismo cuerpo que GET /api/analytics/profit)")
	return cmd
}

// printReport escribe el reporte como tablas de texto alineadas.
func printReport(out io.Writer, r *dto.ProfitReportDTO) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Período\t%s\t%s a %s (%s)\t\n", r.Period.Key, r.Period.From, r.Period.To, r.Period.Timezone)
	fmt.Fprintf(w, "Pedidos\t%d\t\n", r.Summary.OrderCount)
	fmt.Fprintf(w, "Ganancia bruta\t%s\t\n", r.Summary.GrossProfit.StringFixed(2))
	fmt.Fprintf(w, "Descuentos\t%s\t\n", r.Summary.DiscountTotal.StringFixed(2))
	fmt.Fprintf(w, "Ganancia neta\t%s\t\n", r.Summary.NetProfit.StringFixed(2))

	fmt.Fprintln(w, "\t\t")
	fmt.Fprintln(w, "Mes\tPedidos\tBruto\tNeto\t")
	for _, m := range r.Monthly {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t\n", m.Label, m.Orders, m.Gross.StringFixed(2), m.Net.StringFixed(2))
	}

	fmt.Fprintln(w, "\t\t")
	fmt.Fprintln(w, "Estado\tPedidos\tBruto\tDescuento\tNeto\t")
	for _, s := range r.ByStatus {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t\n", s.Label, s.Orders, s.Gross.StringFixed(2), s.Discount.StringFixed(2), s.Net.StringFixed(2))
	}

	fmt.Fprintln(w, "\t\t")
	fmt.Fprintln(w, "#\tVariante\tUnidades\tPedidos\tIngreso\t")
	for _, v := range r.TopVariants {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t\n", v.Rank, v.Label, v.Quantity.String(), v.Orders, v.Revenue.StringFixed(2))
	}

	fmt.Fprintln(w, "\t\t")
	fmt.Fprintln(w, "#\tCliente\tPedidos\tUnidades\tNeto\t")
	for _, c := range r.TopClients {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t\n", c.Rank, c.Name, c.Orders, c.ItemQty.String(), c.Net.StringFixed(2))
	}
	return w.Flush()
}
