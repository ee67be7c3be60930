package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmorales/jobhunter/internal/config"
	"github.com/jmorales/jobhunter/internal/generation"
	"github.com/jmorales/jobhunter/internal/llm"
	"github.com/jmorales/jobhunter/internal/rendering"
	"github.com/jmorales/jobhunter/internal/selection"
	"github.com/jmorales/jobhunter/internal/store"
)

// app bundles the wired pipeline shared by the serve and generate commands.
type app struct {
	cfg       *config.Config
	client    llm.Client
	cache     *generation.Cache
	profiles  store.ProfileStore
	jobs      store.JobStore
	artifacts store.ArtifactStore
	pg        *store.Postgres
}

// buildApp wires stores, the model client, and the pipeline from config.
// When overrideStores is non-nil it is used for all three store roles instead
// of Postgres.
func buildApp(cfg *config.Config, overrideStores *store.Memory) (*app, error) {
	a := &app{cfg: cfg}

	if overrideStores != nil {
		a.profiles, a.jobs, a.artifacts = overrideStores, overrideStores, overrideStores
	} else {
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required (or pass profile and posting files)")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.pg = pg
		a.profiles, a.jobs, a.artifacts = pg, pg, pg
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmCfg := llm.DefaultConfig().WithModel(cfg.Model)
	llmCfg.Temperature = float32(cfg.Temperature)
	client, err := llm.NewClient(context.Background(), llmCfg, cfg.APIKey)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	a.client = client

	selector := selection.New(client, selection.Options{
		MaxPerExperience: cfg.MaxPerExperience,
		MaxRetries:       cfg.SelectionRetries,
		MaxPromptChars:   cfg.MaxPromptChars,
	})
	compiler := rendering.NewCompiler(cfg.PdflatexPath, cfg.CompileTimeout())

	pipeline := generation.NewPipeline(a.profiles, a.jobs, a.artifacts, selector, compiler, cfg.MaxPerExperience)
	a.cache = generation.NewCache(a.profiles, a.artifacts, pipeline, generation.CacheOptions{
		MaxConcurrent: cfg.MaxConcurrent,
		RunTimeout:    cfg.RunTimeout(),
	})

	return a, nil
}

func (a *app) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.pg != nil {
		a.pg.Close()
	}
}
