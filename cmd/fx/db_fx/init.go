package db_fx

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmuse/internal/config"
	"tourmuse/internal/infra"
)

var Module = fx.Provide(
	config.Load,
	provideMongo,
	provideCatalogDB,
	provideRedis,
)

func provideMongo(cfg *config.Config) *mongo.Database {
	return infra.InitMongo(cfg)
}

func provideCatalogDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

func provideRedis(cfg *config.Config) *redis.Client {
	return infra.InitRedis(cfg)
}
