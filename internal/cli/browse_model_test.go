package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadedBrowseModel runs Init and feeds the resulting message back into
// Update, the way the Bubbletea runtime would.
func loadedBrowseModel(t *testing.T, app *App) browseModel {
	t.Helper()
	m := newBrowseModel(app)
	msg := m.Init()()
	loaded, ok := msg.(apptsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	next, _ := m.Update(loaded)
	return next.(browseModel)
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		panic("unknown key: " + s)
	}
}

func TestBrowseModel_ShowsAppointments(t *testing.T) {
	app := testApp(t)
	seedAppointment(t, app, "Olena", futureDate(t, 2), "09:00")
	seedAppointment(t, app, "Marko", futureDate(t, 3), "11:00")

	m := loadedBrowseModel(t, app)
	view := m.View()
	assert.Contains(t, view, "Olena")
	assert.Contains(t, view, "Marko")
	assert.Contains(t, view, "total: 2")
}

func TestBrowseModel_EmptyState(t *testing.T) {
	app := testApp(t)
	m := loadedBrowseModel(t, app)
	assert.Contains(t, m.View(), "No appointments found.")
}

func TestBrowseModel_SearchFilters(t *testing.T) {
	app := testApp(t)
	seedAppointment(t, app, "Olena", futureDate(t, 2), "09:00")
	seedAppointment(t, app, "Marko", futureDate(t, 3), "11:00")

	m := loadedBrowseModel(t, app)

	next, _ := m.Update(keyMsg("/"))
	m = next.(browseModel)
	require.True(t, m.searching)

	for _, r := range "marko" {
		next, _ = m.Update(keyMsg(string(r)))
		m = next.(browseModel)
	}

	view := m.View()
	assert.Contains(t, view, "Marko")
	assert.NotContains(t, view, "Olena")
	assert.Contains(t, view, "total: 1")

	// enter leaves search mode but keeps the filter applied
	next, _ = m.Update(keyMsg("enter"))
	m = next.(browseModel)
	assert.False(t, m.searching)
	assert.Contains(t, m.View(), "Marko")
}

func TestBrowseModel_Pagination(t *testing.T) {
	app := testApp(t)
	app.Config.PageSize = 2
	seedAppointment(t, app, "Olena", futureDate(t, 2), "09:00")
	seedAppointment(t, app, "Marko", futureDate(t, 2), "11:00")
	seedAppointment(t, app, "Iryna", futureDate(t, 3), "10:00")

	m := loadedBrowseModel(t, app)
	require.Equal(t, 2, m.pager.TotalPages)

	first := m.View()
	assert.Contains(t, first, "Olena")
	assert.NotContains(t, first, "Iryna")

	next, _ := m.Update(keyMsg("right"))
	m = next.(browseModel)
	second := m.View()
	assert.Contains(t, second, "Iryna")
	assert.NotContains(t, second, "Olena")
}

func TestBrowseModel_QuitKeys(t *testing.T) {
	app := testApp(t)
	m := loadedBrowseModel(t, app)

	next, cmd := m.Update(keyMsg("q"))
	m = next.(browseModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}
