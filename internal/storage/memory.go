package storage

import (
	"context"
	"sync"
	"time"
)

var _ Store = (*MemoryStore)(nil)

// memoryItem holds a value and its expiration time
type memoryItem struct {
	value     []byte
	expiresAt time.Time // zero means no expiration
}

// MemoryStore is an in-process Store. Expired keys are dropped lazily on
// read and in bulk by Sweep.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	lists map[string][][]byte
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		lists: make(map[string][][]byte),
		now:   time.Now,
	}
}

func (s *MemoryStore) expired(item memoryItem) bool {
	return !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt)
}

// Get returns a copy of the value stored under key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	item, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(item) {
		s.mu.Lock()
		if cur, ok := s.items[key]; ok && s.expired(cur) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	return clone(item.value), nil
}

// Set stores a copy of value under key
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	item := memoryItem{value: clone(value)}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.items[key] = item
	s.mu.Unlock()
	return nil
}

// Delete removes key and any list stored under it
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	delete(s.lists, key)
	s.mu.Unlock()
	return nil
}

// Append adds a copy of value to the list under key
func (s *MemoryStore) Append(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.lists[key] = append(s.lists[key], clone(value))
	s.mu.Unlock()
	return nil
}

// List returns copies of the list entries under key; a missing list is empty
func (s *MemoryStore) List(ctx context.Context, key string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.lists[key]
	out := make([][]byte, 0, len(entries))
	for _, e := range entries {
		out = append(out, clone(e))
	}
	return out, nil
}

// Sweep removes every expired key and returns how many were removed
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, item := range s.items {
		if s.expired(item) {
			delete(s.items, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of live and not yet swept keys
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
