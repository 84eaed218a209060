package database

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/lighty7/Finances-backend/config"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis is optional: when no REDIS_HOST is configured the client
// stays nil and every cache-aware code path falls through to postgres.
func ConnectRedis(cfg *config.Config) error {
	if cfg.RedisHost == "" {
		return nil
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	return err
}
