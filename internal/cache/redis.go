package cache

import (
	"fmt"

	"study-helper/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client instance. Connectivity is checked by
// the caller through domain.Cache.Ping.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	return redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}), nil
}
