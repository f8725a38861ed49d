package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
)

const cleanupInterval = 5 * time.Minute

// MemoryStore implements SnapshotStore using in-memory storage.
type MemoryStore struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewMemoryStore creates an in-memory store and starts its cleanup goroutine. Call Close to stop it.
func NewMemoryStore() *MemoryStore {
	s := newMemoryStore(time.Now)
	go s.cleanup(cleanupInterval)
	return s
}

func newMemoryStore(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     now,
		done:    make(chan struct{}),
	}
}

// Get retrieves a payload. Expired entries are reported as missing.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || entry.expired(s.now()) {
		return nil, false, nil
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

// Set stores a copy of the payload.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}

// Delete removes a payload.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Incr increments a counter stored as a decimal string. The expiry is set by the first increment.
func (s *MemoryStore) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	var n int64
	if ok && !entry.expired(now) {
		current, err := strconv.ParseInt(string(entry.value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value at %s is not a counter: %w", key, err)
		}
		n = current
	} else {
		entry = memoryEntry{}
		if ttl > 0 {
			entry.expiresAt = now.Add(ttl)
		}
	}
	n++
	entry.value = []byte(strconv.FormatInt(n, 10))
	s.entries[key] = entry
	return n, nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) purgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, key)
		}
	}
}

func (s *MemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeExpired()
		case <-s.done:
			return
		}
	}
}

var _ portsrepo.SnapshotStore = (*MemoryStore)(nil)
