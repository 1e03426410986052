package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/analytics"
	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/couchcryptid/pothole-dashboard/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DetectionService is the read path the API serves from.
type DetectionService interface {
	Detections(ctx context.Context) ([]domain.DisplayRecord, error)
	Detail(ctx context.Context, id string) (domain.DetectionDetail, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the detection API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	svc        DetectionService
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API, /healthz, /readyz, and /metrics routes.
func NewServer(addr string, svc DetectionService, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:     svc,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /api/detections", s.handleDetections)
	mux.HandleFunc("GET /api/detections/{id}", s.handleDetail)
	mux.HandleFunc("GET /api/analytics", s.handleAnalytics)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(svc))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleDetections always answers 200. When the store cannot be read the
// client gets an empty list, which it renders as the empty state.
func (s *Server) handleDetections(w http.ResponseWriter, r *http.Request) {
	s.metrics.APIRequests.WithLabelValues("detections").Inc()

	records := s.listOrEmpty(r.Context())
	s.metrics.RecordsServed.Add(float64(len(records)))
	sharedobs.WriteJSON(w, http.StatusOK, records)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	s.metrics.APIRequests.WithLabelValues("detail").Inc()

	id := r.PathValue("id")
	detail, err := s.svc.Detail(r.Context(), id)
	switch {
	case err == nil:
		s.metrics.RecordsServed.Inc()
		sharedobs.WriteJSON(w, http.StatusOK, detail)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrStorageUnavailable):
		s.logger.Error("load detection failed", "record_id", id, "error", err)
		writeError(w, http.StatusServiceUnavailable, domain.ErrStorageUnavailable)
	default:
		s.logger.Error("load detection failed", "record_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	s.metrics.APIRequests.WithLabelValues("analytics").Inc()

	q := r.URL.Query()
	filter, err := analytics.ParseFilter(q.Get("type"), q.Get("status"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	records := analytics.Apply(s.listOrEmpty(r.Context()), filter)
	sharedobs.WriteJSON(w, http.StatusOK, analytics.Summarize(records))
}

func (s *Server) listOrEmpty(ctx context.Context) []domain.DisplayRecord {
	records, err := s.svc.Detections(ctx)
	if err != nil {
		s.logger.Error("list detections failed, serving empty result", "error", err)
		return []domain.DisplayRecord{}
	}
	return records
}

func writeError(w http.ResponseWriter, status int, err error) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}
