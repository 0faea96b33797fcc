package once

import (
	"context"
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// RedisStore keeps keys in redis with SETNX so that several server
// processes agree on what already happened.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore dials addr and pings it, keys expire after ttl (0
// keeps them forever).
func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping().Err(); err != nil {
		return nil, Error{Op: "ping", Err: err}
	}
	return &RedisStore{client: client, prefix: "archglob:", ttl: ttl}, nil
}

func (s *RedisStore) MarkDone(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Wrap(err, "not marking")
	}
	ok, err := s.client.SetNX(s.prefix+key, 1, s.ttl).Result()
	if err != nil {
		return false, Error{Op: "setnx", Err: err}
	}
	return ok, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
