// Package types provides type definitions for structured data used throughout the jobhunter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TailoredResume is the composed structured document handed to the renderer.
// It is created fresh per generation request and never mutated afterwards.
type TailoredResume struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Location    string            `json:"location,omitempty"`
	LinkedIn    string            `json:"linkedin,omitempty"`
	Summary     string            `json:"summary"`
	Skills      []string          `json:"skills"`
	Experiences []ResumeSection   `json:"experiences"`
	Target      TargetPostingInfo `json:"target"`
}

// ResumeSection represents one experience section with its final statements.
type ResumeSection struct {
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Location   string   `json:"location,omitempty"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Statements []string `json:"statements"`
}

// TargetPostingInfo records which posting the resume was tailored for.
type TargetPostingInfo struct {
	PostingID string `json:"posting_id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
}
