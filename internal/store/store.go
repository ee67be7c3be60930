// Package store defines persistence interfaces for profiles, postings, and
// generated artifacts, with Postgres and in-memory implementations.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jmorales/jobhunter/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// PostingWithStatus pairs a posting with its current application status for
// listing endpoints.
type PostingWithStatus struct {
	types.JobPosting
	Status types.ApplicationStatus `json:"status"`
}

// ProfileStore provides read access to candidate profiles. Profiles are
// maintained out of band; the generation pipeline never mutates them.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*types.CandidateProfile, error)
}

// JobStore provides access to job postings and their application status.
// A posting that has never been transitioned reports StatusNew.
type JobStore interface {
	GetPosting(ctx context.Context, id string) (*types.JobPosting, error)
	// ListPostings returns postings with status, optionally filtered. An
	// empty status means no filter.
	ListPostings(ctx context.Context, status types.ApplicationStatus) ([]PostingWithStatus, error)
	GetStatus(ctx context.Context, postingID string) (types.ApplicationStatus, error)
	SetStatus(ctx context.Context, postingID string, status types.ApplicationStatus) error
}

// ArtifactStore persists generated resume artifacts, PDF bytes included.
type ArtifactStore interface {
	SaveArtifact(ctx context.Context, artifact *types.GeneratedArtifact) error
	GetArtifact(ctx context.Context, id uuid.UUID) (*types.GeneratedArtifact, error)
	GetArtifactByKey(ctx context.Context, key types.GenerationKey) (*types.GeneratedArtifact, error)
}
