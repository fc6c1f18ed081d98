// Package mongodb opens the document database that stores the user
// accounts.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"tienda_backend/internal/platform/config"
)

// Connect opens a MongoDB client, verifies the connection with a ping and
// returns the configured database handle.
func Connect(cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb: connect failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongodb: ping failed: %w", err)
	}

	slog.Info("MongoDB connection successful", "database", cfg.MongoDB)
	return client, client.Database(cfg.MongoDB), nil
}
