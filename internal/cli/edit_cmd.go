package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/okarpenko/pitstop/internal/cli/formatter"
)

func newEditCmd(app *App) *cobra.Command {
	fields := &appointmentFields{}
	var buffer int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing appointment",
		Long: "Edit an appointment by ID or unambiguous ID prefix. Flags override " +
			"single fields; with no field flags on an interactive terminal, opens " +
			"the form pre-filled with the current values.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveAppointmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			current, err := app.Appointments.GetByID(ctx, id)
			if err != nil {
				return err
			}

			merged := fieldsFromAppointment(current)
			overrides := map[string]*string{
				"name":    &merged.name,
				"contact": &merged.contact,
				"date":    &merged.date,
				"time":    &merged.time,
				"type":    &merged.issueType,
				"notes":   &merged.notes,
			}
			anyFlag := false
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if dst, ok := overrides[f.Name]; ok {
					*dst = f.Value.String()
					anyFlag = true
				}
			})

			if !anyFlag {
				if !app.interactive() {
					return fmt.Errorf("no field flags given and no terminal for the edit form")
				}
				if err := appointmentForm(merged).Run(); err != nil {
					return err
				}
			}

			a, err := merged.toAppointment(id)
			if err != nil {
				return err
			}
			if err := app.Appointments.Update(ctx, a, buffer); err != nil {
				return err
			}

			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Updated:"),
				formatter.DescribeAppointment(a))
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.name, "name", "", "Customer name")
	cmd.Flags().StringVar(&fields.contact, "contact", "", "Contact (phone or email)")
	cmd.Flags().StringVar(&fields.date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&fields.time, "time", "", "Time (HH:MM, 24-hour)")
	cmd.Flags().StringVar(&fields.issueType, "type", "", "Issue type")
	cmd.Flags().StringVar(&fields.notes, "notes", "", "Additional notes")
	cmd.Flags().IntVar(&buffer, "buffer", app.Config.BufferMinutes,
		"Buffer minutes around existing appointments (0 = exact-time collisions only)")

	return cmd
}
