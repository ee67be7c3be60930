package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jmorales/jobhunter/internal/store"
	"github.com/jmorales/jobhunter/internal/types"
)

// ArtifactMeta is the GET /artifacts/{id}/meta response.
type ArtifactMeta struct {
	ArtifactID string              `json:"artifact_id"`
	Key        types.GenerationKey `json:"key"`
	Filename   string              `json:"filename"`
	SizeBytes  int                 `json:"size_bytes"`
	Degraded   bool                `json:"degraded"`
	Warnings   []string            `json:"warnings,omitempty"`
	CreatedAt  string              `json:"created_at"`
}

func (s *Server) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	artifact, ok := s.lookupArtifact(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.PDF)
}

func (s *Server) handleGetArtifactMeta(w http.ResponseWriter, r *http.Request) {
	artifact, ok := s.lookupArtifact(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, ArtifactMeta{
		ArtifactID: artifact.ID.String(),
		Key:        artifact.Key,
		Filename:   artifact.Filename,
		SizeBytes:  len(artifact.PDF),
		Degraded:   artifact.Degraded,
		Warnings:   artifact.Warnings,
		CreatedAt:  artifact.CreatedAt.Format(time.RFC3339),
	})
}

func (s *Server) lookupArtifact(w http.ResponseWriter, r *http.Request) (*types.GeneratedArtifact, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid artifact id")
		return nil, false
	}

	artifact, err := s.artifacts.GetArtifact(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "artifact not found")
		} else {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load artifact")
		}
		return nil, false
	}
	return artifact, true
}
