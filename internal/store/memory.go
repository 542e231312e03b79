package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// memoryStore implements Store with a mutex-guarded map. Entries carry
// their own deadline; reads past the deadline behave as misses even
// before a sweep removes them.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Get implements Store.
func (s *memoryStore) Get(ctx context.Context, key string, v any) (bool, error) {
	s.mu.RLock()
	entry, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.value, v); err != nil {
		return false, err
	}
	return true, nil
}

// Set implements Store.
func (s *memoryStore) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[key] = memoryEntry{value: b, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

// Delete implements Store.
func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Len implements Store. Expired-but-unswept entries are not counted.
func (s *memoryStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	n := 0
	for _, entry := range s.entries {
		if now.Before(entry.expiresAt) {
			n++
		}
	}
	return n, nil
}

// Sweep implements Store.
func (s *memoryStore) Sweep(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	return nil
}

// Close implements Store.
func (s *memoryStore) Close() error {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
	return nil
}
