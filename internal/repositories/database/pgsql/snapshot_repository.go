package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotRepository stores snapshots in the snapshot_cache table.
type PgxSnapshotRepository struct {
	BaseRepository
}

// NewPgxSnapshotRepository creates a snapshot store backed by PostgreSQL.
func NewPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Get returns the payload for key unless it is missing or expired.
func (r *PgxSnapshotRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT payload
		FROM snapshot_cache
		WHERE cache_key = $1 AND (expires_at IS NULL OR expires_at > NOW());
	`
	var payload []byte
	err := r.Pool.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	return payload, true, nil
}

// Set upserts the payload and purges expired rows in the same transaction.
func (r *PgxSnapshotRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().UTC().Add(ttl)
		expiresAt = &t
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back snapshot write", slog.String("key", key), slog.String("error", rbErr.Error()))
		}
	}()

	upsert := `
		INSERT INTO snapshot_cache (cache_key, payload, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (cache_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := tx.Exec(ctx, upsert, key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM snapshot_cache WHERE expires_at IS NOT NULL AND expires_at <= NOW();`); err != nil {
		return fmt.Errorf("failed to purge expired snapshots: %w", err)
	}

	return r.Commit(ctx, tx)
}

// Delete removes the payload for key.
func (r *PgxSnapshotRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM snapshot_cache WHERE cache_key = $1;`, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

// Incr increments a counter row in a single upsert. The row lock serialises concurrent increments.
func (r *PgxSnapshotRepository) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().UTC().Add(ttl)
		expiresAt = &t
	}

	query := `
		INSERT INTO snapshot_cache (cache_key, payload, expires_at, updated_at)
		VALUES ($1, convert_to('1', 'UTF8'), $2, NOW())
		ON CONFLICT (cache_key) DO UPDATE SET
			payload = CASE
				WHEN snapshot_cache.expires_at IS NOT NULL AND snapshot_cache.expires_at <= NOW() THEN convert_to('1', 'UTF8')
				ELSE convert_to((convert_from(snapshot_cache.payload, 'UTF8')::BIGINT + 1)::TEXT, 'UTF8')
			END,
			expires_at = CASE
				WHEN snapshot_cache.expires_at IS NOT NULL AND snapshot_cache.expires_at <= NOW() THEN EXCLUDED.expires_at
				ELSE snapshot_cache.expires_at
			END,
			updated_at = NOW()
		RETURNING convert_from(payload, 'UTF8')::BIGINT;
	`
	var n int64
	if err := r.Pool.QueryRow(ctx, query, key, expiresAt).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", key, err)
	}
	return n, nil
}

var _ portsrepo.SnapshotStore = (*PgxSnapshotRepository)(nil)
