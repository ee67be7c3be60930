package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmorales/jobhunter/internal/store"
	"github.com/jmorales/jobhunter/internal/tracker"
	"github.com/jmorales/jobhunter/internal/types"
)

// StatusRequest is the PUT /postings/{id}/status body.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	filter := types.ApplicationStatus(r.URL.Query().Get("status"))

	postings, err := s.tracker.List(r.Context(), filter)
	if err != nil {
		var invalid *tracker.InvalidStatusError
		if errors.As(err, &invalid) {
			s.errorResponse(w, http.StatusBadRequest, invalid.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to list postings")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"postings": postings})
}

func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	posting, err := s.jobs.GetPosting(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "posting not found")
		} else {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load posting")
		}
		return
	}

	status, err := s.tracker.Status(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load posting status")
		return
	}

	s.jsonResponse(w, http.StatusOK, store.PostingWithStatus{JobPosting: *posting, Status: status})
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "status is required")
		return
	}

	err := s.tracker.Transition(r.Context(), id, types.ApplicationStatus(req.Status))
	if err != nil {
		var invalid *tracker.InvalidStatusError
		switch {
		case errors.As(err, &invalid):
			s.errorResponse(w, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, store.ErrNotFound):
			s.errorResponse(w, http.StatusNotFound, "posting not found")
		default:
			s.errorResponse(w, http.StatusInternalServerError, "failed to update status")
		}
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "status": req.Status})
}
