package preference

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares preferences between instances, keyed per visitor.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix sets the namespace of every key. Default "portfolio:pref".
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithTTL sets how long a visitor's preferences live after the last write.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedisStore creates a store over an existing client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "portfolio:pref",
		ttl:    365 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// For returns the Store of one visitor.
func (s *RedisStore) For(visitorID string) Store {
	return &visitorStore{parent: s, visitor: visitorID}
}

// Key returns the Redis key of a visitor preference.
func (s *RedisStore) Key(visitorID, key string) string {
	return s.prefix + ":" + visitorID + ":" + key
}

type visitorStore struct {
	parent  *RedisStore
	visitor string
}

func (v *visitorStore) Get(ctx context.Context, key string) (string, error) {
	value, err := v.parent.client.Get(ctx, v.parent.Key(v.visitor, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Join(ErrStoreUnavailable, err)
	}
	return value, nil
}

func (v *visitorStore) Set(ctx context.Context, key, value string) error {
	if err := v.parent.client.Set(ctx, v.parent.Key(v.visitor, key), value, v.parent.ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
