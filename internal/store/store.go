// Package store provides PostgreSQL persistence for structured profiles and
// match results.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jfelix/resume-matcher/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables the store needs if they are absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			id         UUID PRIMARY KEY,
			content    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS matches (
			id         UUID PRIMARY KEY,
			profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			job_title  TEXT NOT NULL,
			score      INT NOT NULL,
			content    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS matches_profile_idx ON matches (profile_id, created_at DESC)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveProfile upserts a structured profile keyed by its ID.
func (s *Store) SaveProfile(ctx context.Context, profile *types.StructuredProfile) error {
	id, err := uuid.Parse(profile.ID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", profile.ID, err)
	}
	content, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profiles (id, content) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET content = $2`,
		id, content)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile loads a profile by ID. Returns (nil, nil) when absent.
func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*types.StructuredProfile, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM profiles WHERE id = $1`, id).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile types.StructuredProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// SaveMatch stores a match result.
func (s *Store) SaveMatch(ctx context.Context, result *types.MatchResult) error {
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", result.ID, err)
	}
	profileID, err := uuid.Parse(result.ProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", result.ProfileID, err)
	}
	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO matches (id, profile_id, job_title, score, content)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, profileID, result.JobTitle, result.OverallScore, content)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

// GetMatch loads a match result by ID. Returns (nil, nil) when absent.
func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchResult, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM matches WHERE id = $1`, id).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}

	var result types.MatchResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}
	return &result, nil
}

// MatchesForProfile returns a profile's match results, newest first.
func (s *Store) MatchesForProfile(ctx context.Context, profileID uuid.UUID) ([]types.MatchResult, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT content FROM matches WHERE profile_id = $1 ORDER BY created_at DESC`,
		profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var results []types.MatchResult
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		var result types.MatchResult
		if err := json.Unmarshal(content, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}
	return results, nil
}
