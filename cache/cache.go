package cache

import (
	"context"
	"time"

	"board/config"

	"github.com/redis/go-redis/v9"
)

// PostsKey holds the serialized latest-posts response.
const PostsKey = "posts:latest"

type RedisCache struct {
	Cli *redis.Client
	TTL time.Duration
}

var Instance *RedisCache

// Init connects to Redis when an address is configured. Instance stays
// nil otherwise and callers go straight to the database.
func Init() {
	if config.REDIS_ADDR == "" {
		return
	}
	Instance = &RedisCache{
		Cli: redis.NewClient(&redis.Options{
			Addr: config.REDIS_ADDR,
			DB:   config.REDIS_DB,
		}),
		TTL: time.Duration(config.CACHE_TTL_SECONDS) * time.Second,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return r.Cli.Get(ctx, key).Result()
}

func (r *RedisCache) Set(ctx context.Context, key string, val string) error {
	return r.Cli.Set(ctx, key, val, r.TTL).Err()
}

func (r *RedisCache) Del(ctx context.Context, key string) error {
	return r.Cli.Del(ctx, key).Err()
}
