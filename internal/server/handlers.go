package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okarpenko/pitstop/internal/domain"
	"github.com/okarpenko/pitstop/internal/repository"
	"github.com/okarpenko/pitstop/internal/schedule"
	"github.com/okarpenko/pitstop/internal/service"
)

// appointmentJSON is the wire form of an appointment: calendar date as
// YYYY-MM-DD, time as 24-hour HH:MM, matching the CSV column layout.
type appointmentJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	IssueType string `json:"issue_type"`
	Notes     string `json:"notes"`
}

type appointmentPayload struct {
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	IssueType string `json:"issue_type"`
	Notes     string `json:"notes"`
}

func toJSON(a *domain.Appointment) appointmentJSON {
	return appointmentJSON{
		ID:        a.ID,
		Name:      a.Name,
		Contact:   a.Contact,
		Date:      a.Date.Format(domain.DateLayout),
		Time:      a.Start.String(),
		IssueType: a.IssueType,
		Notes:     a.Notes,
	}
}

func toJSONList(appts []*domain.Appointment) []appointmentJSON {
	out := make([]appointmentJSON, 0, len(appts))
	for _, a := range appts {
		out = append(out, toJSON(a))
	}
	return out
}

// toDomain converts a payload into an Appointment, collecting date/time
// parse failures as rejection reasons. Field-level rules (empty name, past
// date) are the service's job.
func (p appointmentPayload) toDomain(id string) (*domain.Appointment, []string) {
	var reasons []string

	date, err := domain.ParseDate(p.Date)
	if err != nil {
		reasons = append(reasons, err.Error())
	}
	start, err := domain.ParseTimeOfDay(p.Time)
	if err != nil {
		reasons = append(reasons, err.Error())
	}
	if len(reasons) > 0 {
		return nil, reasons
	}

	return &domain.Appointment{
		ID:        id,
		Name:      p.Name,
		Contact:   p.Contact,
		Date:      date,
		Start:     start,
		IssueType: p.IssueType,
		Notes:     p.Notes,
	}, nil
}

// parseFilter reads from/to/type/q query params into a Filter.
func parseFilter(c *gin.Context) (schedule.Filter, error) {
	var f schedule.Filter

	if v := c.Query("from"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.From = &d
	}
	if v := c.Query("to"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.To = &d
	}
	f.IssueTypes = c.QueryArray("type")
	f.Query = c.Query("q")

	return f, nil
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// writeServiceError maps booking errors onto HTTP statuses: validation
// failures are 422 with per-field reasons, conflicts are 409 carrying the
// colliding appointments, unknown ids are 404.
func writeServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "reasons": verr.Reasons})
		return
	}
	var cerr *service.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":          cerr.Error(),
			"buffer_minutes": cerr.BufferMinutes,
			"conflicts":      toJSONList(cerr.Conflicts),
		})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GET /api/appointments
func (s *Server) listAppointmentsHandler(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := service.ListQuery{
		Filter:   filter,
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "page_size", s.pageSize),
	}
	res, err := s.appointments.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": toJSONList(res.Appointments),
		"total":        res.Total,
		"page":         res.Page,
		"page_size":    res.PageSize,
	})
}

// POST /api/appointments
func (s *Server) createAppointmentHandler(c *gin.Context) {
	var payload appointmentPayload
	if err := c.BindJSON(&payload); err != nil {
		return
	}

	a, reasons := payload.toDomain("")
	if reasons != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid appointment", "reasons": reasons})
		return
	}

	if err := s.appointments.Create(c.Request.Context(), a, s.bufferMinutes()); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toJSON(a))
}

// PUT /api/appointments/:id
func (s *Server) updateAppointmentHandler(c *gin.Context) {
	var payload appointmentPayload
	if err := c.BindJSON(&payload); err != nil {
		return
	}

	a, reasons := payload.toDomain(c.Param("id"))
	if reasons != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid appointment", "reasons": reasons})
		return
	}

	if err := s.appointments.Update(c.Request.Context(), a, s.bufferMinutes()); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJSON(a))
}

// DELETE /api/appointments/:id
func (s *Server) deleteAppointmentHandler(c *gin.Context) {
	if err := s.appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/export — same filter params as the list endpoint; the download
// uses the exact CSV column layout of the backing file.
func (s *Server) exportHandler(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := s.appointments.Export(c.Request.Context(), &buf, filter); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="appointments.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GET /api/issue-types
func (s *Server) issueTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"issue_types": domain.DefaultIssueTypes})
}

// GET /api/settings
func (s *Server) getSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buffer_minutes": s.bufferMinutes()})
}

// PUT /api/settings
func (s *Server) updateSettingsHandler(c *gin.Context) {
	var payload struct {
		BufferMinutes *int `json:"buffer_minutes"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return
	}
	if payload.BufferMinutes == nil || *payload.BufferMinutes < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "buffer_minutes must be a non-negative integer"})
		return
	}
	s.setBufferMinutes(*payload.BufferMinutes)
	c.JSON(http.StatusOK, gin.H{"buffer_minutes": s.bufferMinutes()})
}

// GET /
func (s *Server) indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
