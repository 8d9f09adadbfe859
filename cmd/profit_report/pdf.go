package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newPDFCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Exporta el reporte de rentabilidad a PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			pdfBytes, filename, err := a.pdf.Download(cmd.Context(), req)
			if err != nil {
				return err
			}
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			log.Info().Str("file", out).Int("bytes", len(pdfBytes)).Msg("reporte exportado")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida (default rentabilidad_<from>_<to>.pdf)")
	return cmd
}
