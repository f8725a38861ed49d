package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements SnapshotStore using Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and checks the connection with a PING.
func NewRedisStore(ctx context.Context, addr, password string, db int, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return NewRedisStoreWithClient(client, prefix), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Debug("Redis snapshot miss", slog.String("key", key))
		return nil, false, nil
	}
	if err != nil {
		logger.Error("Redis snapshot get error", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Redis snapshot set error", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Redis snapshot delete error", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// Incr runs INCR and sets the expiry when the counter is new.
func (r *RedisStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	k := r.key(key)
	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Redis counter incr error", slog.String("key", key), slog.String("error", err.Error()))
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	if n == 1 && ttl > 0 {
		if err := r.client.PExpire(ctx, k, ttl).Err(); err != nil {
			return 0, fmt.Errorf("redis expire %s: %w", key, err)
		}
	}
	return n, nil
}

// Close closes the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ portsrepo.SnapshotStore = (*RedisStore)(nil)
