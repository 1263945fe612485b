package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okarpenko/pitstop/internal/cli/formatter"
)

func newRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete an appointment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveAppointmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Appointments.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("pass --yes to delete without confirmation")
				}
				confirmed := false
				prompt := fmt.Sprintf("Delete appointment %s?", formatter.DescribeAppointment(a))
				if err := confirmForm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := app.Appointments.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleRed.Render("Deleted:"),
				formatter.DescribeAppointment(a))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
