package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/okarpenko/pitstop/internal/config"
	"github.com/okarpenko/pitstop/internal/service"
)

// Server exposes the booking service over HTTP: a small JSON API plus the
// embedded browser booking form at /.
type Server struct {
	appointments service.AppointmentService
	pageSize     int

	// bufferMin is the session-scoped buffer-minutes setting, adjustable at
	// runtime via /api/settings. It is read fresh on every conflict check.
	mu        sync.RWMutex
	bufferMin int
}

// New creates a Server over the booking service, seeded from cfg.
func New(appointments service.AppointmentService, cfg config.Config) *Server {
	return &Server{
		appointments: appointments,
		pageSize:     cfg.PageSize,
		bufferMin:    cfg.BufferMinutes,
	}
}

func (s *Server) bufferMinutes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bufferMin
}

func (s *Server) setBufferMinutes(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bufferMin = n
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/", s.indexHandler)

	api := router.Group("/api")
	{
		api.GET("/appointments", s.listAppointmentsHandler)
		api.POST("/appointments", s.createAppointmentHandler)
		api.PUT("/appointments/:id", s.updateAppointmentHandler)
		api.DELETE("/appointments/:id", s.deleteAppointmentHandler)
		api.GET("/export", s.exportHandler)
		api.GET("/issue-types", s.issueTypesHandler)
		api.GET("/settings", s.getSettingsHandler)
		api.PUT("/settings", s.updateSettingsHandler)
	}

	return router
}

// Run starts the HTTP server on addr and blocks until it stops.
func (s *Server) Run(addr string) error {
	if err := s.Router().Run(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
