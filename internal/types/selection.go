// Package types provides type definitions for structured data used throughout the jobhunter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SelectedStatement represents one chosen (possibly rewritten) accomplishment.
// Sources holds indices into the original experience's accomplishment list so
// every statement traces back to stored profile content.
type SelectedStatement struct {
	Text    string `json:"text"`
	Sources []int  `json:"sources"`
}

// ExperienceSelection represents the ordered statements chosen for one experience.
type ExperienceSelection struct {
	ExperienceID string              `json:"experience_id"`
	Statements   []SelectedStatement `json:"statements"`
}

// SelectionResult represents the full output of content selection for a posting.
type SelectionResult struct {
	Experiences []ExperienceSelection `json:"experiences"`
	Summary     string                `json:"summary,omitempty"`
	Skills      []string              `json:"skills,omitempty"`
	Degraded    bool                  `json:"degraded"`
	Warnings    []string              `json:"warnings,omitempty"`
}
