package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
)

func setupRedisTest(t *testing.T) *RedisGateway {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	g, err := NewRedisGateway(ctx, RedisConfig{Addr: addr}, "test-state-"+uuid.NewString())
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() {
		_ = g.client.Del(context.Background(), g.key).Err()
		_ = g.Close()
	})
	return g
}

func TestRedisGatewayRoundTrip(t *testing.T) {
	g := setupRedisTest(t)
	ctx := context.Background()

	s, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameState(t, s, EmptyState())

	want := testState(t)
	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameState(t, got, want)
}

func TestRedisGatewayCorruptPayload(t *testing.T) {
	g := setupRedisTest(t)
	ctx := context.Background()
	if err := g.client.Set(ctx, g.key, "{broken", 0).Err(); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, err := g.Load(ctx)
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
}

func TestNewRedisGatewayUnreachable(t *testing.T) {
	_, err := NewRedisGateway(context.Background(), RedisConfig{Addr: "127.0.0.1:1"}, "k")
	if err == nil {
		t.Fatal("expected connection error")
	}
}
