package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string // optional
	DB       int    // optional
}

func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisStore keeps each session key as its own Redis string with a TTL, so sessions can be
// shared by several API processes.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, prefix: "buspass:session:"}
}

func (r *RedisStore) key(sessionID, key string) string {
	return r.prefix + sessionID + ":" + key
}

func (r *RedisStore) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, r.key(sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *RedisStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	return r.client.Set(ctx, r.key(sessionID, key), value, r.ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	return r.client.Del(ctx, r.key(sessionID, key)).Err()
}
