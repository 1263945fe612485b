package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarpenko/pitstop/internal/cli/formatter"
	"github.com/okarpenko/pitstop/internal/domain"
	"github.com/okarpenko/pitstop/internal/schedule"
	"github.com/okarpenko/pitstop/internal/service"
)

// apptsLoadedMsg signals that the appointment set has been (re)loaded.
type apptsLoadedMsg struct {
	appts []*domain.Appointment
	err   error
}

// browseModel is the interactive paged appointment list with live search.
type browseModel struct {
	app *App

	appts    []*domain.Appointment // full sorted set
	filtered []*domain.Appointment // after search

	pager     paginator.Model
	search    textinput.Model
	searching bool

	loading  bool
	quitting bool
	err      error
}

func newBrowseModel(app *App) browseModel {
	perPage := app.Config.PageSize
	if perPage <= 0 {
		perPage = 5
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = perPage
	pager.ActiveDot = formatter.StyleHeader.Render("•")
	pager.InactiveDot = formatter.StyleDim.Render("•")

	search := textinput.New()
	search.Prompt = formatter.StyleHeader.Render("/ ")
	search.Placeholder = "name, contact or notes"

	return browseModel{
		app:     app,
		pager:   pager,
		search:  search,
		loading: true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.load()
}

func (m browseModel) load() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		res, err := app.Appointments.List(context.Background(), service.ListQuery{})
		if err != nil {
			return apptsLoadedMsg{err: err}
		}
		return apptsLoadedMsg{appts: res.Appointments}
	}
}

// applySearch recomputes the filtered set and resets the pager.
func (m *browseModel) applySearch() {
	m.filtered = schedule.Filter{Query: m.search.Value()}.Apply(m.appts)
	m.pager.Page = 0
	m.pager.TotalPages = 1
	if len(m.filtered) > 0 {
		m.pager.SetTotalPages(len(m.filtered))
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case apptsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.appts = msg.appts
		m.applySearch()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter", "esc":
				m.searching = false
				m.search.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.applySearch()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "r":
			m.loading = true
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Appointments"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(formatter.StyleDim.Render("Loading…"))
		b.WriteString("\n")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(formatter.StyleDim.Render("No appointments found."))
		b.WriteString("\n")
	} else {
		start, end := m.pager.GetSliceBounds(len(m.filtered))
		b.WriteString(formatter.RenderTable(
			formatter.AppointmentHeaders,
			formatter.AppointmentRows(m.filtered[start:end]),
		))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n",
			m.pager.View(),
			formatter.StyleDim.Render(fmt.Sprintf("total: %d", len(m.filtered)))))
	}

	b.WriteString("\n")
	b.WriteString(formatter.StyleDim.Render("←/→ page · / search · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}
