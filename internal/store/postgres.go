package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmorales/jobhunter/internal/types"
)

// Postgres implements the store interfaces on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool
func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// -----------------------------------------------------------------------------
// Profiles
// -----------------------------------------------------------------------------

func (s *Postgres) GetProfile(ctx context.Context, id string) (*types.CandidateProfile, error) {
	var data []byte
	var version int64

	err := s.pool.QueryRow(ctx,
		`SELECT version, data FROM candidate_profiles WHERE id = $1`,
		id,
	).Scan(&version, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	profile.ID = id
	profile.Version = version

	return &profile, nil
}

// -----------------------------------------------------------------------------
// Job Postings
// -----------------------------------------------------------------------------

func (s *Postgres) GetPosting(ctx context.Context, id string) (*types.JobPosting, error) {
	var p types.JobPosting

	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company, description, location, remote
		 FROM job_postings WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Company, &p.Description, &p.Location, &p.Remote)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}

	return &p, nil
}

func (s *Postgres) ListPostings(ctx context.Context, status types.ApplicationStatus) ([]PostingWithStatus, error) {
	query := `SELECT id, title, company, description, location, remote, status
	          FROM job_postings`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	var result []PostingWithStatus
	for rows.Next() {
		var p PostingWithStatus
		var st string
		if err := rows.Scan(&p.ID, &p.Title, &p.Company, &p.Description, &p.Location, &p.Remote, &st); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		p.Status = types.ApplicationStatus(st)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	return result, nil
}

func (s *Postgres) GetStatus(ctx context.Context, postingID string) (types.ApplicationStatus, error) {
	var st string
	err := s.pool.QueryRow(ctx,
		`SELECT status FROM job_postings WHERE id = $1`,
		postingID,
	).Scan(&st)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	return types.ApplicationStatus(st), nil
}

func (s *Postgres) SetStatus(ctx context.Context, postingID string, status types.ApplicationStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE job_postings SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), postingID,
	)
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// -----------------------------------------------------------------------------
// Artifacts
// -----------------------------------------------------------------------------

func (s *Postgres) SaveArtifact(ctx context.Context, artifact *types.GeneratedArtifact) error {
	warnings, err := json.Marshal(artifact.Warnings)
	if err != nil {
		return fmt.Errorf("failed to marshal warnings: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO artifacts (id, profile_id, profile_version, posting_id, filename, degraded, warnings, pdf, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (profile_id, profile_version, posting_id)
		 DO UPDATE SET id = $1, filename = $5, degraded = $6, warnings = $7, pdf = $8, created_at = $9`,
		artifact.ID, artifact.Key.ProfileID, artifact.Key.ProfileVersion, artifact.Key.PostingID,
		artifact.Filename, artifact.Degraded, warnings, artifact.PDF, artifact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact: %w", err)
	}
	return nil
}

func (s *Postgres) GetArtifact(ctx context.Context, id uuid.UUID) (*types.GeneratedArtifact, error) {
	return s.scanArtifact(ctx,
		`SELECT id, profile_id, profile_version, posting_id, filename, degraded, warnings, pdf, created_at
		 FROM artifacts WHERE id = $1`, id)
}

func (s *Postgres) GetArtifactByKey(ctx context.Context, key types.GenerationKey) (*types.GeneratedArtifact, error) {
	return s.scanArtifact(ctx,
		`SELECT id, profile_id, profile_version, posting_id, filename, degraded, warnings, pdf, created_at
		 FROM artifacts WHERE profile_id = $1 AND profile_version = $2 AND posting_id = $3`,
		key.ProfileID, key.ProfileVersion, key.PostingID)
}

func (s *Postgres) scanArtifact(ctx context.Context, query string, args ...any) (*types.GeneratedArtifact, error) {
	var a types.GeneratedArtifact
	var warnings []byte

	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.Key.ProfileID, &a.Key.ProfileVersion, &a.Key.PostingID,
		&a.Filename, &a.Degraded, &warnings, &a.PDF, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}

	if warnings != nil {
		if err := json.Unmarshal(warnings, &a.Warnings); err != nil {
			return nil, fmt.Errorf("failed to decode artifact warnings: %w", err)
		}
	}

	return &a, nil
}
