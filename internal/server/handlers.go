package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/async"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/common"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/entity"
)

// CreateScanRequest is the POST /v1/scans payload.
type CreateScanRequest struct {
	SourcePath string `json:"source_path,omitempty"`
	Filename   string `json:"filename,omitempty"`
	Transcript string `json:"transcript"`
}

func (s *Server) handleCreateScan(w http.ResponseWriter, r *http.Request) {
	var req CreateScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.NewAppError("BAD_JSON", "request body is not valid JSON", common.ErrInvalidInput))
		return
	}
	if req.Transcript == "" {
		s.writeError(w, r, common.NewAppError("EMPTY_TRANSCRIPT", "transcript is required", common.ErrInvalidInput))
		return
	}

	filename := req.Filename
	if filename == "" && req.SourcePath != "" {
		filename = filepath.Base(req.SourcePath)
	}
	if filename == "" {
		filename = "inline.txt"
	}

	job, err := s.jobs.Create(r.Context(), req.SourcePath, filename, filepath.Ext(filename), req.Transcript)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.queue.Enqueue(r.Context(), async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, common.NewAppError("BAD_ID", "id is not a UUID", common.ErrInvalidInput))
		return
	}

	job, err := s.jobs.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.tickets.ListTickets(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if tickets == nil {
		tickets = []*entity.Ticket{}
	}
	s.writeJSON(w, http.StatusOK, tickets)
}

func (s *Server) handleGetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, common.NewAppError("BAD_ID", "id is not a UUID", common.ErrInvalidInput))
		return
	}

	ticket, err := s.tickets.GetTicket(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ticket)
}

func (s *Server) handleExportTickets(w http.ResponseWriter, r *http.Request) {
	data, err := s.exporter.ExportTicketsXLSX(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="tickets.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
