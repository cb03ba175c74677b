package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisGateway stores the state as a JSON payload under one key.
type RedisGateway struct {
	client *redis.Client
	key    string
}

// NewRedisGateway connects to Redis and verifies the connection.
func NewRedisGateway(ctx context.Context, cfg RedisConfig, key string) (*RedisGateway, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisGateway{client: client, key: key}, nil
}

// Load reads the state key. A missing key means nothing was saved.
func (g *RedisGateway) Load(ctx context.Context) (State, error) {
	data, err := g.client.Get(ctx, g.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return EmptyState(), nil
		}
		return State{}, fmt.Errorf("get state key: %w", err)
	}
	return UnmarshalJSON(data)
}

// Save overwrites the state key without expiry.
func (g *RedisGateway) Save(ctx context.Context, s State) error {
	data, err := MarshalJSON(s)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := g.client.Set(ctx, g.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set state key: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (g *RedisGateway) Close() error {
	return g.client.Close()
}

var _ Gateway = (*RedisGateway)(nil)
