package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// RedisDenylist stores revoked token ids with a TTL matching the token's
// remaining lifetime, so entries expire on their own.
type RedisDenylist struct {
	rdb *redis.Client
}

func NewRedisDenylist(rdb *redis.Client) *RedisDenylist {
	return &RedisDenylist{rdb: rdb}
}

func denylistKey(jti string) string { return "denylist:" + jti }

func (d *RedisDenylist) Revocar(ctx context.Context, jti string, hasta time.Time) error {
	ttl := time.Until(hasta)
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, denylistKey(jti), "1", ttl).Err()
}

func (d *RedisDenylist) Revocado(ctx context.Context, jti string) (bool, error) {
	n, err := d.rdb.Exists(ctx, denylistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
