package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis dials and pings; a dead redis at startup is a config error.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// OpenOptional returns (nil, nil) when no address is configured; callers
// treat a nil client as "idempotency disabled".
func OpenOptional(addr string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	return OpenRedis(addr, db)
}
