// Package generation orchestrates the resume pipeline and caches its
// artifacts. One run selects content with the model, composes the resume,
// renders it to PDF, and persists the result.
package generation

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jmorales/jobhunter/internal/compose"
	"github.com/jmorales/jobhunter/internal/rendering"
	"github.com/jmorales/jobhunter/internal/selection"
	"github.com/jmorales/jobhunter/internal/store"
	"github.com/jmorales/jobhunter/internal/types"
)

// Selector is the slice of the content selector the pipeline needs.
type Selector interface {
	Select(ctx context.Context, profile *types.CandidateProfile, posting *types.JobPosting) (*types.SelectionResult, error)
}

// Renderer compiles LaTeX source to PDF bytes.
type Renderer interface {
	Compile(ctx context.Context, texSource string) ([]byte, error)
}

// Pipeline runs a single generation from stored inputs to a saved artifact.
type Pipeline struct {
	profiles         store.ProfileStore
	jobs             store.JobStore
	artifacts        store.ArtifactStore
	selector         Selector
	renderer         Renderer
	maxPerExperience int
}

// NewPipeline wires the pipeline stages. maxPerExperience bounds statements
// per resume section; zero takes the composer's default.
func NewPipeline(profiles store.ProfileStore, jobs store.JobStore, artifacts store.ArtifactStore, selector Selector, renderer Renderer, maxPerExperience int) *Pipeline {
	return &Pipeline{
		profiles:         profiles,
		jobs:             jobs,
		artifacts:        artifacts,
		selector:         selector,
		renderer:         renderer,
		maxPerExperience: maxPerExperience,
	}
}

// Run executes the full pipeline for one (profile, posting) pair. Unknown ids
// fail fast with InputError before any model call. Selection degradation does
// not fail the run; rendering and composition faults do.
func (p *Pipeline) Run(ctx context.Context, profileID, postingID string) (*types.GeneratedArtifact, error) {
	profile, err := p.profiles.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &InputError{Message: "unknown profile: " + profileID}
		}
		return nil, err
	}
	if len(profile.Experiences) == 0 {
		return nil, &InputError{Message: "profile has no work experience: " + profileID}
	}

	posting, err := p.jobs.GetPosting(ctx, postingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &InputError{Message: "unknown posting: " + postingID}
		}
		return nil, err
	}

	key := types.GenerationKey{
		ProfileID:      profile.ID,
		ProfileVersion: profile.Version,
		PostingID:      posting.ID,
	}

	sel, err := p.selector.Select(ctx, profile, posting)
	if err != nil {
		return nil, err
	}
	if sel.Degraded {
		log.Printf("[generation] degraded selection for %s: %v", key, sel.Warnings)
	}

	resume, err := compose.Compose(profile, posting, sel, p.maxPerExperience)
	if err != nil {
		return nil, err
	}

	tex, err := rendering.RenderLaTeX(resume)
	if err != nil {
		return nil, err
	}

	pdf, err := p.renderer.Compile(ctx, tex)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	artifact := &types.GeneratedArtifact{
		ID:        uuid.New(),
		Key:       key,
		PDF:       pdf,
		Filename:  ArtifactFilename(posting.Company, posting.ID, now),
		Degraded:  sel.Degraded,
		Warnings:  sel.Warnings,
		CreatedAt: now,
	}

	if err := p.artifacts.SaveArtifact(ctx, artifact); err != nil {
		return nil, err
	}

	log.Printf("[generation] artifact %s ready for %s (%d bytes, degraded=%t)",
		artifact.ID, key, len(pdf), artifact.Degraded)
	return artifact, nil
}

var _ Selector = (*selection.Selector)(nil)
var _ Renderer = (*rendering.Compiler)(nil)
