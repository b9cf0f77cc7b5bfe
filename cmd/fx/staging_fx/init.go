package staging_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tourmuse/internal/config"
	"tourmuse/internal/repositories"
)

var Module = fx.Provide(provideStaging)

// Redis-backed staging when configured, in-process otherwise.
func provideStaging(client *redis.Client, cfg *config.Config) repositories.DraftStaging {
	if client != nil {
		return repositories.NewRedisStaging(client, cfg.DraftTTL)
	}
	return repositories.NewMemoryStaging(cfg.DraftTTL)
}
