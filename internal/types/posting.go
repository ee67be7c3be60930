// Package types provides type definitions for structured data used throughout the jobhunter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a saved job posting. Owned by the job store;
// read-only to the generation core.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Remote      bool   `json:"remote,omitempty"`
}
