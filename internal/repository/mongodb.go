// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	menuItemsCollection = "menu_items"
	logsCollection      = "logs"

	// indexOptionsConflict is the server code for re-creating an index with new options.
	indexOptionsConflict = 85
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns the pool settings used in production.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	MenuItems *mongo.Collection
	Logs      *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:    client,
		Database:  db,
		MenuItems: db.Collection(menuItemsCollection),
		Logs:      db.Collection(logsCollection),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return mongoDB, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.MenuItems.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "available", Value: 1}}},
	})
	if err != nil {
		return err
	}

	// best effort; the TTL index is managed by SetLogsTTL
	_, _ = m.Logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "action_type", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return nil
}

// SetLogsTTL (re)creates the TTL index that expires log documents.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == indexOptionsConflict {
		return nil
	}
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary with a short timeout.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
