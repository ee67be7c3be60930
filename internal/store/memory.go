package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jmorales/jobhunter/internal/types"
)

// Memory is an in-memory implementation of all store interfaces, used for
// tests and for running without a database.
type Memory struct {
	mu        sync.RWMutex
	profiles  map[string]*types.CandidateProfile
	postings  map[string]*types.JobPosting
	statuses  map[string]types.ApplicationStatus
	artifacts map[uuid.UUID]*types.GeneratedArtifact
	byKey     map[types.GenerationKey]uuid.UUID
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		profiles:  make(map[string]*types.CandidateProfile),
		postings:  make(map[string]*types.JobPosting),
		statuses:  make(map[string]types.ApplicationStatus),
		artifacts: make(map[uuid.UUID]*types.GeneratedArtifact),
		byKey:     make(map[types.GenerationKey]uuid.UUID),
	}
}

// AddProfile seeds a profile.
func (m *Memory) AddProfile(profile *types.CandidateProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.ID] = profile
}

// AddPosting seeds a posting.
func (m *Memory) AddPosting(posting *types.JobPosting) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postings[posting.ID] = posting
}

func (m *Memory) GetProfile(_ context.Context, id string) (*types.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, ok := m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (m *Memory) GetPosting(_ context.Context, id string) (*types.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	posting, ok := m.postings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return posting, nil
}

func (m *Memory) ListPostings(_ context.Context, status types.ApplicationStatus) ([]PostingWithStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]PostingWithStatus, 0, len(m.postings))
	for id, posting := range m.postings {
		current := m.statuses[id]
		if current == "" {
			current = types.StatusNew
		}
		if status != "" && current != status {
			continue
		}
		result = append(result, PostingWithStatus{JobPosting: *posting, Status: current})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) GetStatus(_ context.Context, postingID string) (types.ApplicationStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.postings[postingID]; !ok {
		return "", ErrNotFound
	}
	if status, ok := m.statuses[postingID]; ok {
		return status, nil
	}
	return types.StatusNew, nil
}

func (m *Memory) SetStatus(_ context.Context, postingID string, status types.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.postings[postingID]; !ok {
		return ErrNotFound
	}
	m.statuses[postingID] = status
	return nil
}

func (m *Memory) SaveArtifact(_ context.Context, artifact *types.GeneratedArtifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifacts[artifact.ID] = artifact
	m.byKey[artifact.Key] = artifact.ID
	return nil
}

func (m *Memory) GetArtifact(_ context.Context, id uuid.UUID) (*types.GeneratedArtifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	artifact, ok := m.artifacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return artifact, nil
}

func (m *Memory) GetArtifactByKey(_ context.Context, key types.GenerationKey) (*types.GeneratedArtifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byKey[key]
	if !ok {
		return nil, ErrNotFound
	}
	return m.artifacts[id], nil
}
