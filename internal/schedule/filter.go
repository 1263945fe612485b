package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/okarpenko/pitstop/internal/domain"
)

// Filter selects a subset of appointments. Zero-valued criteria are ignored;
// set criteria must all hold (logical AND).
type Filter struct {
	// From and To bound the calendar date, inclusive on both ends.
	From *time.Time
	To   *time.Time

	// IssueTypes matches any of the given types exactly.
	IssueTypes []string

	// Query is a case-insensitive substring match over name, contact and notes.
	Query string
}

// Apply returns the appointments satisfying every set criterion, preserving
// input order.
func (f Filter) Apply(appts []*domain.Appointment) []*domain.Appointment {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	var out []*domain.Appointment
	for _, a := range appts {
		if f.From != nil && a.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && a.Date.After(*f.To) {
			continue
		}
		if len(f.IssueTypes) > 0 && !matchesIssueType(a.IssueType, f.IssueTypes) {
			continue
		}
		if q != "" {
			hay := strings.ToLower(a.Name + " " + a.Contact + " " + a.Notes)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func matchesIssueType(issueType string, wanted []string) bool {
	for _, w := range wanted {
		if issueType == w {
			return true
		}
	}
	return false
}

// SortByDateTime orders appointments by date, then start time, then ID.
// The ID tiebreak keeps the ordering deterministic for identical slots.
func SortByDateTime(appts []*domain.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if !appts[i].Date.Equal(appts[j].Date) {
			return appts[i].Date.Before(appts[j].Date)
		}
		if appts[i].Start != appts[j].Start {
			return appts[i].Start < appts[j].Start
		}
		return appts[i].ID < appts[j].ID
	})
}

// Paginate returns the 1-based page of the given size, the total count and
// the effective page number after clamping. An out-of-range page clamps to
// the last page that still has content; an empty input yields an empty first
// page. pageSize must be positive and falls back to the whole set when it
// is not.
func Paginate(appts []*domain.Appointment, page, pageSize int) ([]*domain.Appointment, int, int) {
	total := len(appts)
	if pageSize <= 0 {
		return appts, total, 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		return nil, 0, 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return appts[start:end], total, page
}
