package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/async"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/common"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/export"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
)

// Server wires the HTTP API to the repositories and the parse queue.
type Server struct {
	logger   *slog.Logger
	jobs     repository.ScanJobRepository
	tickets  repository.TicketRepository
	queue    async.Queue
	exporter *export.Service
	pool     *pgxpool.Pool
}

func New(
	logger *slog.Logger,
	jobs repository.ScanJobRepository,
	tickets repository.TicketRepository,
	queue async.Queue,
	exporter *export.Service,
	pool *pgxpool.Pool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:   logger,
		jobs:     jobs,
		tickets:  tickets,
		queue:    queue,
		exporter: exporter,
		pool:     pool,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.requestID)
	r.Use(s.requestLog)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/scans", s.handleCreateScan)
		r.Get("/scans/{id}", s.handleGetScan)
		r.Get("/tickets", s.handleListTickets)
		r.Get("/tickets/export", s.handleExportTickets)
		r.Get("/tickets/{id}", s.handleGetTicket)
	})

	return r
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(common.WithRequestID(r.Context(), rid)))
	})
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http.request",
			"req_id", common.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pool != nil {
		if err := repository.HealthCheck(r.Context(), s.pool, 2*time.Second, s.logger); err != nil {
			s.writeError(w, r, common.WrapError(err, "database unreachable"))
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("http.encode_error", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("http.error",
			"req_id", common.RequestIDFromContext(r.Context()),
			"path", r.URL.Path, "error", err,
		)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
