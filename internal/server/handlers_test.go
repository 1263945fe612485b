package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarpenko/pitstop/internal/config"
	"github.com/okarpenko/pitstop/internal/repository"
	"github.com/okarpenko/pitstop/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repo := repository.NewCSVAppointmentRepo(filepath.Join(t.TempDir(), "appointments.csv"))
	svc := service.NewAppointmentService(repo)
	return New(svc, config.DefaultConfig()).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// futureDate returns a date safely in the future so validation never trips
// on "date in the past".
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func bookingPayload(name, date, clock string) map[string]any {
	return map[string]any{
		"name":       name,
		"contact":    name + "@example.com",
		"date":       date,
		"time":       clock,
		"issue_type": "Engine Problem",
		"notes":      "",
	}
}

func TestCreateAppointment(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Olena", futureDate(7), "10:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Olena", body["name"])
	assert.Equal(t, "10:00", body["time"])
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Olena", "2020-01-01", "10:00"))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decode(t, w)
	reasons, ok := body["reasons"].([]any)
	require.True(t, ok)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "past")
}

func TestCreateAppointment_BadDateFormat(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Olena", "01/06/2024", "10:00"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateAppointment_ConflictCarriesCollidingID(t *testing.T) {
	router := testRouter(t)
	date := futureDate(7)

	w := doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Olena", date, "10:00"))
	require.Equal(t, http.StatusCreated, w.Code)
	firstID := decode(t, w)["id"].(string)

	// Buffer 30: 10:20 collides.
	w = doJSON(t, router, http.MethodPut, "/api/settings", map[string]any{"buffer_minutes": 30})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Ivan", date, "10:20"))
	require.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 30, body["buffer_minutes"])
	conflicts := body["conflicts"].([]any)
	require.Len(t, conflicts, 1)
	assert.Equal(t, firstID, conflicts[0].(map[string]any)["id"])

	// 10:31 is outside the buffer.
	w = doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Ivan", date, "10:31"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestUpdateAppointment_SelfExcluded(t *testing.T) {
	router := testRouter(t)
	date := futureDate(7)

	w := doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Olena", date, "10:00"))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPut, "/api/settings", map[string]any{"buffer_minutes": 30})
	require.Equal(t, http.StatusOK, w.Code)

	// Same slot, new notes: must not conflict with itself.
	payload := bookingPayload("Olena", date, "10:00")
	payload["notes"] = "bring the service book"
	w = doJSON(t, router, http.MethodPut, "/api/appointments/"+id, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "bring the service book", decode(t, w)["notes"])
}

func TestUpdateAppointment_UnknownID(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodPut, "/api/appointments/nope", bookingPayload("Olena", futureDate(7), "10:00"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAppointment(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Olena", futureDate(7), "10:00"))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/appointments/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/appointments/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAppointments_FilterAndPaginate(t *testing.T) {
	router := testRouter(t)

	d1 := futureDate(7)
	d2 := futureDate(8)
	d3 := futureDate(9)
	for i, p := range []map[string]any{
		bookingPayload("Olena", d1, "10:00"),
		bookingPayload("Ivan", d2, "09:00"),
		bookingPayload("Maria", d3, "14:00"),
	} {
		w := doJSON(t, router, http.MethodPost, "/api/appointments", p)
		require.Equal(t, http.StatusCreated, w.Code, "payload %d: %s", i, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/api/appointments?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 3, body["total"])
	assert.Len(t, body["appointments"], 2)

	// Date range keeps only the middle appointment.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/appointments?from=%s&to=%s", d2, d2), nil)
	body = decode(t, w)
	assert.EqualValues(t, 1, body["total"])

	// Free-text search is case-insensitive.
	w = doJSON(t, router, http.MethodGet, "/api/appointments?q=MARIA", nil)
	body = decode(t, w)
	assert.EqualValues(t, 1, body["total"])

	w = doJSON(t, router, http.MethodGet, "/api/appointments?from=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/appointments", bookingPayload("Olena", futureDate(7), "10:00"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "appointments.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,contact,date,time,issue_type,notes", lines[0])
	assert.Contains(t, lines[1], "Olena")
}

func TestSettings(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["buffer_minutes"])

	w = doJSON(t, router, http.MethodPut, "/api/settings", map[string]any{"buffer_minutes": 45})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/settings", nil)
	assert.EqualValues(t, 45, decode(t, w)["buffer_minutes"])

	w = doJSON(t, router, http.MethodPut, "/api/settings", map[string]any{"buffer_minutes": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestIssueTypes(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/issue-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	types := decode(t, w)["issue_types"].([]any)
	assert.Contains(t, types, "Regular Maintenance")
	assert.Contains(t, types, "Other")
}

func TestIndexServesForm(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Appointment Booking")
}
