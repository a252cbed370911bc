package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"roomyy/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	client *mongo.Client
)

// connect establishes the MongoDB client. Callers must hold mu.
func connect(logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(15 * time.Second).
		SetSocketTimeout(45 * time.Second)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	client = c
	logger.Info("Connected to MongoDB")
	return nil
}

// InitDB eagerly establishes the MongoDB connection. A failure here is not
// fatal: the handle is re-attempted lazily on the next call that needs it.
func InitDB(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if err := connect(logger); err != nil {
		logger.Warn("MongoDB not reachable at startup, will retry on demand", zap.Error(err))
	}
}

// Client returns the cached MongoDB client, re-attempting the connection when
// no healthy handle is cached.
func Client() (*mongo.Client, error) {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		return client, nil
	}
	if err := connect(zap.L()); err != nil {
		return nil, err
	}
	return client, nil
}

// Collection resolves a collection on the configured database.
func Collection(name string) (*mongo.Collection, error) {
	c, err := Client()
	if err != nil {
		return nil, err
	}
	return c.Database(config.AppConfig.DatabaseName).Collection(name), nil
}

// Ping reports whether the store is reachable right now.
func Ping(ctx context.Context) error {
	c, err := Client()
	if err != nil {
		return err
	}
	return c.Ping(ctx, nil)
}

// Disconnect tears down the cached client. Used on shutdown.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	return err
}
