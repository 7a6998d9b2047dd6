package main

import (
	"fmt"
	"io"
	"os"

	"github.com/solex2006/astra-social-tutor/services"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		kind string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded turns, solutions or grades as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := wireRecords()
			if err != nil {
				return err
			}
			defer records.Close()

			export := services.NewExportService(records)

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			switch kind {
			case "turns":
				return export.ExportTurnsCSV(w)
			case "solutions":
				return export.ExportSolutionsCSV(w)
			case "grades":
				return export.ExportGradesCSV(w)
			default:
				return fmt.Errorf("unknown export kind: %q", kind)
			}
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "turns", `What to export: "turns", "solutions" or "grades"`)
	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")

	return cmd
}
