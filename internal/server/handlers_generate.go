package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jmorales/jobhunter/internal/compose"
	"github.com/jmorales/jobhunter/internal/generation"
	"github.com/jmorales/jobhunter/internal/rendering"
	"github.com/jmorales/jobhunter/internal/types"
)

// GenerateRequest is the POST /generate body.
type GenerateRequest struct {
	ProfileID string `json:"profile_id" validate:"required"`
	PostingID string `json:"posting_id" validate:"required"`
}

// GenerateResponse describes a finished (or cached) artifact.
type GenerateResponse struct {
	ArtifactID string              `json:"artifact_id"`
	Key        types.GenerationKey `json:"key"`
	Filename   string              `json:"filename"`
	Degraded   bool                `json:"degraded"`
	Warnings   []string            `json:"warnings,omitempty"`
	CreatedAt  string              `json:"created_at"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "profile_id and posting_id are required")
		return
	}

	artifact, err := s.generator.Generate(r.Context(), req.ProfileID, req.PostingID)
	if err != nil {
		s.generationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		ArtifactID: artifact.ID.String(),
		Key:        artifact.Key,
		Filename:   artifact.Filename,
		Degraded:   artifact.Degraded,
		Warnings:   artifact.Warnings,
		CreatedAt:  artifact.CreatedAt.Format(time.RFC3339),
	})
}

// generationError maps pipeline failures to HTTP statuses.
func (s *Server) generationError(w http.ResponseWriter, err error) {
	var inputErr *generation.InputError
	var compileErr *rendering.CompileError
	var templateErr *rendering.TemplateError
	var fault *compose.ConsistencyFault

	switch {
	case errors.As(err, &inputErr):
		s.errorResponse(w, http.StatusNotFound, inputErr.Message)
	case errors.Is(err, generation.ErrBusy):
		s.errorResponse(w, http.StatusConflict, "a generation is already running, try again later")
	case errors.As(err, &compileErr), errors.As(err, &templateErr):
		s.errorResponse(w, http.StatusBadGateway, "document rendering failed")
	case errors.As(err, &fault):
		s.errorResponse(w, http.StatusInternalServerError, "generated content failed consistency checks")
	default:
		s.errorResponse(w, http.StatusInternalServerError, "generation failed")
	}
}
