package session

import (
	"context"
	"errors"
	"time"

	"github.com/bloomstitch/storefront-backend/pkg/redis"
)

type redisCommands interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}

// RedisStore persists session state as JSON snapshots in redis, so carts
// survive API restarts and can be shared across replicas.
type RedisStore struct {
	client redisCommands
	ttl    time.Duration
}

// NewRedisStore builds a redis-backed store expiring idle sessions after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*State, error) {
	raw, err := r.client.Get(ctx, r.client.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return NewState(), nil
		}
		return nil, err
	}
	return decodeState([]byte(raw))
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, state *State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.client.SessionKey(sessionID), string(data), r.ttl)
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.client.SessionKey(sessionID))
}
