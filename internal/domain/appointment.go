package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used in storage and on the wire.
const DateLayout = "2006-01-02"

// DefaultIssueTypes is the canonical set of service categories offered in
// booking forms. Free-text issue types are accepted as well; this list is
// only the suggestion set.
var DefaultIssueTypes = []string{
	"Regular Maintenance",
	"Engine Problem",
	"Electrical / Battery",
	"Brakes / Suspension",
	"Tires / Wheels",
	"Other",
}

// TimeOfDay is a clock time with minute resolution, counted as minutes
// since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// MinutesApart returns the absolute distance to another clock time in minutes.
func (t TimeOfDay) MinutesApart(other TimeOfDay) int {
	d := int(t) - int(other)
	if d < 0 {
		d = -d
	}
	return d
}

// Appointment is one booked service visit. Date holds the calendar date at
// midnight UTC; Start is the time of day at minute resolution.
type Appointment struct {
	ID        string
	Name      string
	Contact   string
	Date      time.Time
	Start     TimeOfDay
	IssueType string
	Notes     string
}

// ParseDate parses a YYYY-MM-DD calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// Validate checks field-level rules against the given submission time.
// It returns every violation found, not just the first. Conflict checking
// is a separate concern and runs only after validation passes.
func (a *Appointment) Validate(now time.Time) []error {
	var errs []error

	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, fmt.Errorf("customer name is required"))
	}
	if strings.TrimSpace(a.Contact) == "" {
		errs = append(errs, fmt.Errorf("contact is required"))
	}
	if a.Date.IsZero() {
		errs = append(errs, fmt.Errorf("date is required"))
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if a.Date.Before(today) {
			errs = append(errs, fmt.Errorf("date %s must not be in the past", a.Date.Format(DateLayout)))
		}
	}
	if a.Start < 0 || a.Start >= 24*60 {
		errs = append(errs, fmt.Errorf("time %d is out of range", int(a.Start)))
	}

	return errs
}

// SameDate reports whether the appointment falls on the given calendar date.
func (a *Appointment) SameDate(date time.Time) bool {
	ay, am, ad := a.Date.Date()
	by, bm, bd := date.Date()
	return ay == by && am == bm && ad == bd
}
