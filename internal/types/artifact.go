// Package types provides type definitions for structured data used throughout the jobhunter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerationKey identifies one generation unit of work: a posting paired with
// a specific version of the profile. Bumping the profile version yields a new
// key, which is what forces regeneration after profile edits.
type GenerationKey struct {
	ProfileID      string `json:"profile_id"`
	ProfileVersion int64  `json:"profile_version"`
	PostingID      string `json:"posting_id"`
}

// String returns the canonical form used for caching and logging.
func (k GenerationKey) String() string {
	return fmt.Sprintf("%s@v%d/%s", k.ProfileID, k.ProfileVersion, k.PostingID)
}

// GeneratedArtifact is the final rendered document plus its provenance.
type GeneratedArtifact struct {
	ID        uuid.UUID     `json:"id"`
	Key       GenerationKey `json:"key"`
	PDF       []byte        `json:"-"`
	Filename  string        `json:"filename"`
	Degraded  bool          `json:"degraded"`
	Warnings  []string      `json:"warnings,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
