package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okarpenko/pitstop/internal/cli/formatter"
	"github.com/okarpenko/pitstop/internal/domain"
)

func newBookCmd(app *App) *cobra.Command {
	fields := &appointmentFields{}
	var buffer int

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a new appointment",
		Long: "Book a new appointment. With no flags on an interactive terminal, " +
			"opens the booking form; otherwise all fields except --type and --notes are required.",
		RunE: func(cmd *cobra.Command, args []string) error {
			useForm := app.interactive() &&
				!cmd.Flags().Changed("name") && !cmd.Flags().Changed("contact") &&
				!cmd.Flags().Changed("date") && !cmd.Flags().Changed("time")

			if useForm {
				if err := appointmentForm(fields).Run(); err != nil {
					return err
				}
			} else {
				for _, f := range []struct{ name, value string }{
					{"name", fields.name}, {"contact", fields.contact},
					{"date", fields.date}, {"time", fields.time},
				} {
					if f.value == "" {
						return fmt.Errorf("--%s is required (or run without flags on a terminal)", f.name)
					}
				}
			}

			a, err := fields.toAppointment("")
			if err != nil {
				return err
			}
			if err := app.Appointments.Create(context.Background(), a, buffer); err != nil {
				return err
			}

			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Booked:"),
				formatter.DescribeAppointment(a))
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.name, "name", "", "Customer name")
	cmd.Flags().StringVar(&fields.contact, "contact", "", "Contact (phone or email)")
	cmd.Flags().StringVar(&fields.date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&fields.time, "time", "", "Time (HH:MM, 24-hour)")
	cmd.Flags().StringVar(&fields.issueType, "type", domain.DefaultIssueTypes[0], "Issue type")
	cmd.Flags().StringVar(&fields.notes, "notes", "", "Additional notes")
	cmd.Flags().IntVar(&buffer, "buffer", app.Config.BufferMinutes,
		"Buffer minutes around existing appointments (0 = exact-time collisions only)")

	return cmd
}
