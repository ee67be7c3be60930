// Package types provides type definitions for structured data used throughout the jobhunter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents a snapshot of the candidate's master resume.
// It is owned by the profile store; the generation core only ever reads it.
type CandidateProfile struct {
	ID          string           `json:"id"`
	Version     int64            `json:"version"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Location    string           `json:"location"`
	LinkedIn    string           `json:"linkedin,omitempty"`
	Summary     string           `json:"summary"`
	Skills      []string         `json:"skills"`
	Experiences []WorkExperience `json:"experiences"`
}

// WorkExperience represents a single position with its accomplishment statements.
// Experiences are stored most-recent-first; accomplishment order is preserved
// unless selection explicitly reorders it.
type WorkExperience struct {
	ID              string   `json:"id"`
	Company         string   `json:"company"`
	Title           string   `json:"title"`
	Location        string   `json:"location,omitempty"`
	StartDate       string   `json:"start_date"` // YYYY-MM
	EndDate         string   `json:"end_date"`   // YYYY-MM, or "present"
	Accomplishments []string `json:"accomplishments"`
}

// Current reports whether this experience is ongoing.
func (e *WorkExperience) Current() bool {
	return e.EndDate == "" || e.EndDate == "present"
}
