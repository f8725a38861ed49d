package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/SscSPs/exchange_desk/pkg/metrics"
)

var errNoSnapshotStore = errors.New("snapshot store is not configured")

// BaseService provides common functionality for all services
type BaseService struct {
	// Snapshots may be nil, in which case nothing is cached.
	Snapshots   portsrepo.SnapshotStore
	SnapshotTTL time.Duration
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// loadSnapshot decodes the snapshot at key into out. Store and decode failures count as a miss.
func (s *BaseService) loadSnapshot(ctx context.Context, name, key string, out any) bool {
	if s.Snapshots == nil {
		return false
	}
	raw, ok, err := s.Snapshots.Get(ctx, key)
	if err != nil {
		s.LogError(ctx, err, "Failed to read snapshot", slog.String("key", key))
		ok = false
	}
	if ok {
		if err := json.Unmarshal(raw, out); err != nil {
			s.LogError(ctx, err, "Discarding unreadable snapshot", slog.String("key", key))
			ok = false
		}
	}
	metrics.ObserveSnapshot(name, ok)
	return ok
}

// fetchState decodes the state held at key into out. Unlike loadSnapshot, a store failure is returned.
func (s *BaseService) fetchState(ctx context.Context, key string, out any) (bool, error) {
	if s.Snapshots == nil {
		return false, errNoSnapshotStore
	}
	raw, ok, err := s.Snapshots.Get(ctx, key)
	if err != nil {
		s.LogError(ctx, err, "Failed to read state", slog.String("key", key))
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.LogError(ctx, err, "Discarding unreadable state", slog.String("key", key))
		return false, nil
	}
	return true, nil
}

// storeState writes v at key and returns any failure.
func (s *BaseService) storeState(ctx context.Context, key string, v any, ttl time.Duration) error {
	if s.Snapshots == nil {
		return errNoSnapshotStore
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode state", slog.String("key", key))
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Snapshots.Set(ctx, key, raw, ttl); err != nil {
		s.LogError(ctx, err, "Failed to write state", slog.String("key", key))
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// saveSnapshot stores v at key. A failure is logged and otherwise ignored.
func (s *BaseService) saveSnapshot(ctx context.Context, key string, v any, ttl time.Duration) {
	if s.Snapshots == nil {
		return
	}
	// storeState has already logged the failure.
	_ = s.storeState(ctx, key, v, ttl)
}

func (s *BaseService) incrCounter(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if s.Snapshots == nil {
		return 0, errNoSnapshotStore
	}
	n, err := s.Snapshots.Incr(ctx, key, ttl)
	if err != nil {
		s.LogError(ctx, err, "Failed to increment counter", slog.String("key", key))
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	return n, nil
}

func (s *BaseService) invalidate(ctx context.Context, key string) {
	if s.Snapshots == nil {
		return
	}
	if err := s.Snapshots.Delete(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to invalidate snapshot", slog.String("key", key))
	}
}

// readThrough serves key from the snapshot store, falling back to fetch and storing its result.
// refresh skips the lookup and replaces the snapshot.
func readThrough[T any](ctx context.Context, s *BaseService, name, key string, refresh bool, fetch func(context.Context) (T, error)) (T, error) {
	var cached T
	if !refresh && s.loadSnapshot(ctx, name, key, &cached) {
		s.LogDebug(ctx, "Serving snapshot", slog.String("key", key))
		return cached, nil
	}

	fresh, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.saveSnapshot(ctx, key, fresh, s.SnapshotTTL)
	return fresh, nil
}
