package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okarpenko/pitstop/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser booking form and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(app.Appointments, app.Config)
			fmt.Printf("Serving booking form and API on %s (Ctrl+C to stop)\n", addr)
			return srv.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.Addr, "Listen address")

	return cmd
}
