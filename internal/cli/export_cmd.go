package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	filters := &filterFlags{}
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export appointments as CSV",
		Long: "Export appointments as CSV, using the exact column layout of the " +
			"backing file. Filter flags restrict the export to the matching subset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filters.toFilter()
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := app.Appointments.Export(context.Background(), w, filter); err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(os.Stderr, "Exported to %s\n", out)
			}
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")

	return cmd
}
