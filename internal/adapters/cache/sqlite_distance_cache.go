package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"charter-quote-service/internal/ports"
)

// SQLite-backed cache for origin->destination distance results, used
// for local runs without a Redis instance. Keys are expected to be
// consistent (already normalized) by the caller.
type SqliteDistanceCache struct {
	DB *sql.DB
}

func NewSqliteDistanceCache(db *sql.DB) *SqliteDistanceCache {
	return &SqliteDistanceCache{DB: db}
}

// InitSchema creates the cache table when missing.
func (s *SqliteDistanceCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS distance_cache (
		origin           TEXT NOT NULL,
		destination      TEXT NOT NULL,
		distance_meters  INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		distance_text    TEXT NOT NULL DEFAULT '',
		duration_text    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (origin, destination)
	);
	`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init distance cache schema: %w", err)
	}

	return nil
}

// Get fetches one cached pair.
func (s *SqliteDistanceCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, bool, error) {
	if s.DB == nil {
		return ports.DistanceResult{}, false, errors.New("distance cache: db is nil")
	}

	q := `
	SELECT distance_meters, duration_seconds, distance_text, duration_text
	FROM distance_cache
	WHERE origin = ? AND destination = ?;
	`

	var result ports.DistanceResult
	err := s.DB.QueryRowContext(ctx, q, origin, destination).Scan(
		&result.DistanceMeters,
		&result.DurationSeconds,
		&result.DistanceText,
		&result.DurationText,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.DistanceResult{}, false, nil
	}
	if err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get distance cache: %w", err)
	}

	return result, true, nil
}

// Put stores one pair result, replacing any previous entry.
func (s *SqliteDistanceCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	result ports.DistanceResult,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	q := `
	INSERT INTO distance_cache (origin, destination, distance_meters, duration_seconds, distance_text, duration_text)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_meters = excluded.distance_meters,
		duration_seconds = excluded.duration_seconds,
		distance_text = excluded.distance_text,
		duration_text = excluded.duration_text;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination,
		result.DistanceMeters, result.DurationSeconds, result.DistanceText, result.DurationText); err != nil {
		return fmt.Errorf("insert distance cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}
