package idgen

import (
	"context"
	"time"

	"github.com/anthanhphan/gosdk/logger"
	"github.com/redis/go-redis/v9"
)

// Clock is the millisecond time source of a Generator.
type Clock interface {
	Now() int64
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().UnixMilli()
}

// RedisClock reads Redis TIME so that several processes sharing one Redis agree on time.
// It falls back to the local clock when Redis is unreachable.
type RedisClock struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisClock(client *redis.Client) *RedisClock {
	return &RedisClock{client: client, timeout: 500 * time.Millisecond}
}

func (r *RedisClock) Now() int64 {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	t, err := r.client.Time(ctx).Result()
	if err != nil {
		logger.Debugw("Redis TIME failed, using local clock", "error", err.Error())
		return time.Now().UnixMilli()
	}
	return t.UnixMilli()
}
