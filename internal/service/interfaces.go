package service

import (
	"context"
	"io"

	"github.com/okarpenko/pitstop/internal/domain"
	"github.com/okarpenko/pitstop/internal/schedule"
)

// ListQuery selects and pages the appointment set. A zero Filter matches
// everything; PageSize <= 0 disables pagination.
type ListQuery struct {
	Filter   schedule.Filter
	Page     int
	PageSize int
}

// ListResult is one page of the filtered set plus the total match count for
// pagination controls.
type ListResult struct {
	Appointments []*domain.Appointment
	Total        int
	Page         int
	PageSize     int
}

// AppointmentService is the booking core. Every mutation runs a full
// load-validate-save cycle against the flat-file store; validation precedes
// conflict checking, and bufferMin is read fresh on every check.
type AppointmentService interface {
	Create(ctx context.Context, a *domain.Appointment, bufferMin int) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment, bufferMin int) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	Export(ctx context.Context, w io.Writer, f schedule.Filter) error
}
