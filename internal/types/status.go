// Package types provides type definitions for structured data used throughout the jobhunter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ApplicationStatus tracks where a posting sits in the user's application process.
type ApplicationStatus string

// Valid application statuses. A posting starts as New; all later moves are
// user-triggered and may go backward, since this models a human process.
const (
	StatusNew          ApplicationStatus = "new"
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffer        ApplicationStatus = "offer"
	StatusRejected     ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusNew, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}
