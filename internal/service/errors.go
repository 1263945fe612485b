package service

import (
	"fmt"
	"strings"

	"github.com/okarpenko/pitstop/internal/domain"
)

// ValidationError reports field-level rejections. The operation was aborted
// before any write; the user fixes the input and resubmits.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "invalid appointment: " + strings.Join(e.Reasons, "; ")
}

// ConflictError reports that a candidate appointment falls inside the buffer
// window of one or more existing appointments. The colliding appointments
// are carried so callers can show the user exactly what is in the way.
type ConflictError struct {
	BufferMinutes int
	Conflicts     []*domain.Appointment
}

func (e *ConflictError) Error() string {
	descs := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		descs = append(descs, fmt.Sprintf("%s %s — %s (%s)",
			c.Date.Format(domain.DateLayout), c.Start, c.Name, c.ID))
	}
	if e.BufferMinutes > 0 {
		return fmt.Sprintf("conflicts within %d min buffer: %s",
			e.BufferMinutes, strings.Join(descs, ", "))
	}
	return "conflicts with existing appointment: " + strings.Join(descs, ", ")
}

func newValidationError(errs []error) *ValidationError {
	reasons := make([]string, 0, len(errs))
	for _, err := range errs {
		reasons = append(reasons, err.Error())
	}
	return &ValidationError{Reasons: reasons}
}
