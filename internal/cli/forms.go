package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/okarpenko/pitstop/internal/cli/formatter"
	"github.com/okarpenko/pitstop/internal/domain"
)

// pitstopHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func pitstopHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// appointmentFields holds the raw form/flag values of one appointment before
// conversion to the domain type.
type appointmentFields struct {
	name      string
	contact   string
	date      string
	time      string
	issueType string
	notes     string
}

func fieldsFromAppointment(a *domain.Appointment) *appointmentFields {
	return &appointmentFields{
		name:      a.Name,
		contact:   a.Contact,
		date:      a.Date.Format(domain.DateLayout),
		time:      a.Start.String(),
		issueType: a.IssueType,
		notes:     a.Notes,
	}
}

// toAppointment converts raw field values into a domain appointment.
// Field-level rules beyond parsing are the service's job.
func (f *appointmentFields) toAppointment(id string) (*domain.Appointment, error) {
	date, err := domain.ParseDate(f.date)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseTimeOfDay(f.time)
	if err != nil {
		return nil, err
	}
	return &domain.Appointment{
		ID:        id,
		Name:      strings.TrimSpace(f.name),
		Contact:   strings.TrimSpace(f.contact),
		Date:      date,
		Start:     start,
		IssueType: f.issueType,
		Notes:     strings.TrimSpace(f.notes),
	}, nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDate(s string) error {
	_, err := domain.ParseDate(s)
	return err
}

func validateTime(s string) error {
	_, err := domain.ParseTimeOfDay(s)
	return err
}

// appointmentForm builds the interactive booking/editing form over the given
// field values.
func appointmentForm(f *appointmentFields) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.DefaultIssueTypes))
	for _, t := range domain.DefaultIssueTypes {
		options = append(options, huh.NewOption(t, t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Customer Name").
				Placeholder("Olena Kovalenko").
				Value(&f.name).
				Validate(validateRequired("customer name")),
			huh.NewInput().
				Title("Contact (phone or email)").
				Placeholder("+380 50 111 22 33").
				Value(&f.contact).
				Validate(validateRequired("contact")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder("2025-07-01").
				Value(&f.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Time (HH:MM)").
				Placeholder("10:30").
				Value(&f.time).
				Validate(validateTime),
			huh.NewSelect[string]().
				Title("Issue Type").
				Options(options...).
				Value(&f.issueType),
			huh.NewText().
				Title("Additional Notes (optional)").
				Value(&f.notes),
		),
	).WithTheme(pitstopHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no confirmation prompt.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(result),
		),
	).WithTheme(pitstopHuhTheme()).WithShowHelp(false)
}
