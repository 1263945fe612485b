package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okarpenko/pitstop/internal/cli/formatter"
	"github.com/okarpenko/pitstop/internal/service"
)

func newListCmd(app *App) *cobra.Command {
	filters := &filterFlags{}
	var page, pageSize int
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filters.toFilter()
			if err != nil {
				return err
			}

			q := service.ListQuery{Filter: filter, Page: page, PageSize: pageSize}
			if all {
				q.PageSize = 0
			}
			res, err := app.Appointments.List(context.Background(), q)
			if err != nil {
				return err
			}

			if res.Total == 0 {
				fmt.Println("No appointments found.")
				return nil
			}

			fmt.Print(formatter.RenderTable(
				formatter.AppointmentHeaders,
				formatter.AppointmentRows(res.Appointments),
			))
			if !all {
				fmt.Println(formatter.PageFooter(res.Page, res.PageSize, res.Total))
			}
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", app.Config.PageSize, "Appointments per page")
	cmd.Flags().BoolVar(&all, "all", false, "Show every match, ignoring pagination")

	return cmd
}
