package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"tourmuse/internal/config"
	"tourmuse/pkg/logger"
)

// InitRedis connects the draft staging area. Returns nil when REDIS_URL is
// unset; callers fall back to the in-memory staging store.
func InitRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Fatalf("Failed to connect to Redis: %v", err)
	}

	return client
}

func CloseRedis(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Log.Errorf("Error closing Redis connection: %v", err)
	}
}
