package repository

import (
	"context"
	"errors"

	"github.com/okarpenko/pitstop/internal/domain"
)

// ErrNotFound is returned when a lookup does not match any stored record.
var ErrNotFound = errors.New("not found")

// AppointmentRepo is the flat-file appointment store. The whole set is
// loaded into memory and rewritten wholesale on every mutation; there is no
// incremental update path.
type AppointmentRepo interface {
	// Load returns the full ordered appointment set. A missing backing file
	// is not an error: it yields an empty set.
	Load(ctx context.Context) ([]*domain.Appointment, error)

	// Save overwrites the backing file with the given set, writing a
	// temporary file first and renaming it into place so a failed write
	// never leaves a partial file behind.
	Save(ctx context.Context, appts []*domain.Appointment) error

	// NextID returns an identifier not currently in use.
	NextID() string
}
