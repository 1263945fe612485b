package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/okarpenko/pitstop/internal/domain"
	"github.com/okarpenko/pitstop/internal/repository"
	"github.com/okarpenko/pitstop/internal/schedule"
)

type appointmentService struct {
	appts repository.AppointmentRepo
	now   func() time.Time
}

// NewAppointmentService creates the booking service over the given store.
func NewAppointmentService(appts repository.AppointmentRepo) AppointmentService {
	return &appointmentService{appts: appts, now: time.Now}
}

func (s *appointmentService) Create(ctx context.Context, a *domain.Appointment, bufferMin int) error {
	if a.ID == "" {
		a.ID = s.appts.NextID()
	}
	if errs := a.Validate(s.now()); len(errs) > 0 {
		return newValidationError(errs)
	}

	existing, err := s.appts.Load(ctx)
	if err != nil {
		return err
	}
	if conflicts := schedule.FindConflicts(existing, a, "", bufferMin); len(conflicts) > 0 {
		return &ConflictError{BufferMinutes: bufferMin, Conflicts: conflicts}
	}

	existing = append(existing, a)
	schedule.SortByDateTime(existing)
	return s.appts.Save(ctx, existing)
}

func (s *appointmentService) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	existing, err := s.appts.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
}

func (s *appointmentService) Update(ctx context.Context, a *domain.Appointment, bufferMin int) error {
	if errs := a.Validate(s.now()); len(errs) > 0 {
		return newValidationError(errs)
	}

	existing, err := s.appts.Load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, other := range existing {
		if other.ID == a.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("appointment %s: %w", a.ID, repository.ErrNotFound)
	}

	// The record being edited never collides with itself.
	if conflicts := schedule.FindConflicts(existing, a, a.ID, bufferMin); len(conflicts) > 0 {
		return &ConflictError{BufferMinutes: bufferMin, Conflicts: conflicts}
	}

	existing[idx] = a
	schedule.SortByDateTime(existing)
	return s.appts.Save(ctx, existing)
}

func (s *appointmentService) Delete(ctx context.Context, id string) error {
	existing, err := s.appts.Load(ctx)
	if err != nil {
		return err
	}

	kept := existing[:0]
	for _, a := range existing {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(existing) {
		return fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
	}
	return s.appts.Save(ctx, kept)
}

func (s *appointmentService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	existing, err := s.appts.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := q.Filter.Apply(existing)
	schedule.SortByDateTime(matched)
	page, total, current := schedule.Paginate(matched, q.Page, q.PageSize)

	return &ListResult{
		Appointments: page,
		Total:        total,
		Page:         current,
		PageSize:     q.PageSize,
	}, nil
}

func (s *appointmentService) Export(ctx context.Context, w io.Writer, f schedule.Filter) error {
	existing, err := s.appts.Load(ctx)
	if err != nil {
		return err
	}
	matched := f.Apply(existing)
	schedule.SortByDateTime(matched)
	return repository.WriteCSV(w, matched)
}
