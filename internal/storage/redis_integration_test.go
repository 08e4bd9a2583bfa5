package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestRedisStore_RealServer exercises the Redis backend against a live server.
// It is skipped unless REDIS_ADDR points at one.
func TestRedisStore_RealServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis test in short mode")
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("skipping test: REDIS_ADDR not set")
	}

	ctx := context.Background()
	prefix := "lumber-test:" + uuid.NewString() + ":"

	s, err := NewRedisStore(ctx, RedisOptions{Addr: addr, KeyPrefix: prefix})
	if err != nil {
		t.Fatalf("NewRedisStore() unexpected error = %v", err)
	}
	defer s.Close()

	t.Cleanup(func() {
		_ = s.Delete(context.Background(), "cart")
		_ = s.Delete(context.Background(), "list")
	})

	if _, err := s.Get(ctx, "cart"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on missing key error = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "cart", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set() unexpected error = %v", err)
	}
	got, err := s.Get(ctx, "cart")
	if err != nil || string(got) != "payload" {
		t.Fatalf("Get() = %q, %v", got, err)
	}

	for _, v := range []string{"a", "b"} {
		if err := s.Append(ctx, "list", []byte(v)); err != nil {
			t.Fatalf("Append() unexpected error = %v", err)
		}
	}
	entries, err := s.List(ctx, "list")
	if err != nil {
		t.Fatalf("List() unexpected error = %v", err)
	}
	if len(entries) != 2 || string(entries[0]) != "a" || string(entries[1]) != "b" {
		t.Errorf("List() = %q", entries)
	}
}

func TestNewRedisStore_RequiresAddress(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), RedisOptions{}); err == nil {
		t.Error("NewRedisStore() expected error for empty address")
	}
}
