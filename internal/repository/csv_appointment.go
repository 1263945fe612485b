package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/okarpenko/pitstop/internal/domain"
)

// csvHeader is the fixed column layout of the backing file. It matches the
// export layout exactly, so the file opens directly in spreadsheet tools.
var csvHeader = []string{"id", "name", "contact", "date", "time", "issue_type", "notes"}

// CSVAppointmentRepo implements AppointmentRepo over a single CSV file.
type CSVAppointmentRepo struct {
	path string
}

// NewCSVAppointmentRepo creates a repo backed by the CSV file at path.
// The file does not need to exist yet.
func NewCSVAppointmentRepo(path string) *CSVAppointmentRepo {
	return &CSVAppointmentRepo{path: path}
}

// Path returns the location of the backing file.
func (r *CSVAppointmentRepo) Path() string { return r.path }

func (r *CSVAppointmentRepo) Load(ctx context.Context) ([]*domain.Appointment, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening appointment file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip the header row; an old file written without one still loads.
	start := 0
	if records[0][0] == csvHeader[0] {
		start = 1
	}

	appts := make([]*domain.Appointment, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		a, err := decodeRecord(records[i])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.path, i+1, err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

func (r *CSVAppointmentRepo) Save(ctx context.Context, appts []*domain.Appointment) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := WriteCSV(tmp, appts); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	return nil
}

func (r *CSVAppointmentRepo) NextID() string {
	return uuid.New().String()
}

// WriteCSV writes the header row and one row per appointment to w. Export
// uses the same encoding as Save, so exported files round-trip through Load.
func WriteCSV(w io.Writer, appts []*domain.Appointment) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, a := range appts {
		if err := writer.Write(encodeRecord(a)); err != nil {
			return fmt.Errorf("writing appointment %s: %w", a.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func encodeRecord(a *domain.Appointment) []string {
	return []string{
		a.ID,
		a.Name,
		a.Contact,
		a.Date.Format(domain.DateLayout),
		a.Start.String(),
		a.IssueType,
		a.Notes,
	}
}

func decodeRecord(rec []string) (*domain.Appointment, error) {
	date, err := domain.ParseDate(rec[3])
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseTimeOfDay(rec[4])
	if err != nil {
		return nil, err
	}
	return &domain.Appointment{
		ID:        rec[0],
		Name:      rec[1],
		Contact:   rec[2],
		Date:      date,
		Start:     start,
		IssueType: rec[5],
		Notes:     rec[6],
	}, nil
}
