// Package selection chooses and rewrites the profile content most relevant to a posting.
package selection

import "fmt"

// GenerationError represents a failed interaction with the generative model:
// unreachable runtime, timeout, or output that never parsed into the expected
// structure. The selector absorbs it into a degraded result; it is surfaced to
// callers as a warning, not a hard failure.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ParseError represents a model reply that failed schema or provenance checks.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
