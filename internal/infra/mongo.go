package infra

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourmuse/internal/config"
	"tourmuse/pkg/logger"
)

// InitMongo connects to the trips document store.
func InitMongo(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		logger.Log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	return client.Database(cfg.MongoDB)
}

func CloseMongo(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		logger.Log.Errorf("Error closing MongoDB connection: %v", err)
	}
}
