// Package schedule holds the pure scheduling logic: conflict detection
// against an in-memory appointment set and filter/sort/pagination over it.
// Nothing in this package touches storage.
package schedule

import (
	"github.com/okarpenko/pitstop/internal/domain"
)

// FindConflicts returns the existing appointments that collide with the
// candidate under the buffer rule. Two appointments collide only on the same
// calendar date: with bufferMin == 0 when their start minutes are identical,
// with bufferMin > 0 when their starts are at most bufferMin minutes apart.
// excludeID skips one appointment, so that an edit never collides with the
// record being edited.
//
// A linear scan is deliberate: a single shop books at most a few hundred
// appointments per day.
func FindConflicts(existing []*domain.Appointment, candidate *domain.Appointment, excludeID string, bufferMin int) []*domain.Appointment {
	var conflicts []*domain.Appointment
	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if !other.SameDate(candidate.Date) {
			continue
		}
		delta := other.Start.MinutesApart(candidate.Start)
		if bufferMin > 0 {
			if delta <= bufferMin {
				conflicts = append(conflicts, other)
			}
		} else if delta == 0 {
			conflicts = append(conflicts, other)
		}
	}
	return conflicts
}
