package formatter

import (
	"fmt"
	"strings"

	"github.com/okarpenko/pitstop/internal/domain"
)

// ShortID trims a uuid to its first segment for display. Commands accept
// the prefix back, so the short form stays actionable.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// Truncate shortens s to max runes, appending an ellipsis when it cuts.
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// AppointmentHeaders is the column set used by list output.
var AppointmentHeaders = []string{"ID", "DATE", "TIME", "NAME", "CONTACT", "TYPE", "NOTES"}

// AppointmentRows renders appointments into table rows matching
// AppointmentHeaders.
func AppointmentRows(appts []*domain.Appointment) [][]string {
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, []string{
			StyleDim.Render(ShortID(a.ID)),
			a.Date.Format(domain.DateLayout),
			a.Start.String(),
			StyleBold.Render(a.Name),
			a.Contact,
			StyleBlue.Render(a.IssueType),
			StyleDim.Render(Truncate(a.Notes, 32)),
		})
	}
	return rows
}

// DescribeAppointment renders the one-line human description used in
// confirmations and conflict reports: "2024-06-01 10:00 — Olena (1a2b3c4d)".
func DescribeAppointment(a *domain.Appointment) string {
	return fmt.Sprintf("%s %s — %s (%s)",
		a.Date.Format(domain.DateLayout), a.Start, a.Name, ShortID(a.ID))
}

// PageFooter renders the "Page x / y — total: n" line under list output.
func PageFooter(page, pageSize, total int) string {
	pages := 1
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
		if pages < 1 {
			pages = 1
		}
	}
	return StyleDim.Render(fmt.Sprintf("Page %d / %d — total: %d", page, pages, total))
}
