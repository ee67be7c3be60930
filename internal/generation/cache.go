package generation

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/jmorales/jobhunter/internal/store"
	"github.com/jmorales/jobhunter/internal/types"
)

const (
	// DefaultMaxConcurrent admits one pipeline run at a time; local model
	// backends thrash badly beyond that.
	DefaultMaxConcurrent = 1

	// DefaultRunTimeout bounds a whole pipeline run end to end.
	DefaultRunTimeout = 5 * time.Minute
)

// Runner is the pipeline surface the cache drives.
type Runner interface {
	Run(ctx context.Context, profileID, postingID string) (*types.GeneratedArtifact, error)
}

// CacheOptions tunes the cache. Zero values take the defaults.
type CacheOptions struct {
	MaxConcurrent int64
	RunTimeout    time.Duration
}

// Cache collapses duplicate generation requests and remembers finished
// artifacts keyed by (profile id, profile version, posting id). Concurrent
// requests for the same key share one pipeline run; requests for other keys
// while the budget is spent fail fast with ErrBusy. Failed runs leave no
// trace, so the next request retries from scratch.
type Cache struct {
	profiles  store.ProfileStore
	artifacts store.ArtifactStore
	runner    Runner
	opts      CacheOptions

	group singleflight.Group
	sem   *semaphore.Weighted

	mu      sync.RWMutex
	entries map[types.GenerationKey]*types.GeneratedArtifact
	cleared map[types.GenerationKey]bool
}

func NewCache(profiles store.ProfileStore, artifacts store.ArtifactStore, runner Runner, opts CacheOptions) *Cache {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = DefaultMaxConcurrent
	}
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = DefaultRunTimeout
	}
	return &Cache{
		profiles:  profiles,
		artifacts: artifacts,
		runner:    runner,
		opts:      opts,
		sem:       semaphore.NewWeighted(opts.MaxConcurrent),
		entries:   make(map[types.GenerationKey]*types.GeneratedArtifact),
		cleared:   make(map[types.GenerationKey]bool),
	}
}

// Generate returns the cached artifact for the profile's current version, or
// runs the pipeline to produce one. The run outlives the caller's context:
// an abandoned request still populates the cache for the next attempt.
func (c *Cache) Generate(ctx context.Context, profileID, postingID string) (*types.GeneratedArtifact, error) {
	profile, err := c.profiles.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &InputError{Message: "unknown profile: " + profileID}
		}
		return nil, err
	}

	key := types.GenerationKey{
		ProfileID:      profile.ID,
		ProfileVersion: profile.Version,
		PostingID:      postingID,
	}

	if artifact := c.lookup(ctx, key); artifact != nil {
		return artifact, nil
	}

	ch := c.group.DoChan(key.String(), func() (any, error) {
		// A run that finished while we queued behind the leader counts as
		// a hit, no admission needed.
		if artifact := c.lookup(ctx, key); artifact != nil {
			return artifact, nil
		}

		if !c.sem.TryAcquire(1) {
			return nil, ErrBusy
		}
		defer c.sem.Release(1)

		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.RunTimeout)
		defer cancel()

		artifact, err := c.runner.Run(runCtx, profileID, postingID)
		if err != nil {
			return nil, err
		}

		// Index by the key the run actually produced. If the profile version
		// moved between admission and the run's own read, the artifact must
		// not be remembered under the stale key.
		c.mu.Lock()
		c.entries[artifact.Key] = artifact
		delete(c.cleared, artifact.Key)
		c.mu.Unlock()
		return artifact, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*types.GeneratedArtifact), nil
	case <-ctx.Done():
		// The run keeps going in the background; only this caller gives up.
		return nil, ctx.Err()
	}
}

// Clear drops the cached artifact for one key and forces the next request to
// regenerate. The persisted copy in the artifact store stays retrievable by
// artifact id.
func (c *Cache) Clear(key types.GenerationKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.cleared[key] = true
}

// lookup checks memory first, then the artifact store, so artifacts survive
// process restarts. Keys that were explicitly cleared skip the store until a
// fresh run replaces them.
func (c *Cache) lookup(ctx context.Context, key types.GenerationKey) *types.GeneratedArtifact {
	c.mu.RLock()
	artifact, ok := c.entries[key]
	skipStore := c.cleared[key]
	c.mu.RUnlock()
	if ok {
		return artifact
	}
	if skipStore {
		return nil
	}

	stored, err := c.artifacts.GetArtifactByKey(ctx, key)
	if err != nil {
		return nil
	}

	c.mu.Lock()
	c.entries[key] = stored
	c.mu.Unlock()
	return stored
}
