// Package tracker records where each job posting stands in the application
// process. Transitions are user triggered and intentionally unrestricted in
// direction, since people do move applications backward (an offer can fall
// through, a rejection can be reopened).
package tracker

import (
	"context"
	"fmt"

	"github.com/jmorales/jobhunter/internal/store"
	"github.com/jmorales/jobhunter/internal/types"
)

// InvalidStatusError reports an attempt to set a status outside the known set.
type InvalidStatusError struct {
	Status types.ApplicationStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("tracker: invalid application status %q", e.Status)
}

// Tracker manages application status on top of a JobStore. Generation never
// reads or writes status; the two concerns stay independent.
type Tracker struct {
	jobs store.JobStore
}

func New(jobs store.JobStore) *Tracker {
	return &Tracker{jobs: jobs}
}

// Status returns the posting's current status. Postings that were never
// transitioned report StatusNew.
func (t *Tracker) Status(ctx context.Context, postingID string) (types.ApplicationStatus, error) {
	status, err := t.jobs.GetStatus(ctx, postingID)
	if err != nil {
		return "", err
	}
	if status == "" {
		return types.StatusNew, nil
	}
	return status, nil
}

// Transition moves the posting to the given status. Any known status is
// reachable from any other; only unknown statuses are rejected.
func (t *Tracker) Transition(ctx context.Context, postingID string, status types.ApplicationStatus) error {
	if !status.Valid() {
		return &InvalidStatusError{Status: status}
	}
	return t.jobs.SetStatus(ctx, postingID, status)
}

// List returns postings with their status, optionally filtered. The filter
// must itself be a known status.
func (t *Tracker) List(ctx context.Context, filter types.ApplicationStatus) ([]store.PostingWithStatus, error) {
	if filter != "" && !filter.Valid() {
		return nil, &InvalidStatusError{Status: filter}
	}
	return t.jobs.ListPostings(ctx, filter)
}
