//go:build integration

// Package testutil starts MongoDB containers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// DefaultMongoImage can be overridden with TEST_MONGO_IMAGE.
const DefaultMongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a MongoDB container and returns its connection string.
// Prefer the shared container in test_container.go from TestMain.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := os.Getenv("TEST_MONGO_IMAGE")
	if image == "" {
		image = DefaultMongoImage
	}

	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: container,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate container: %w", err)
	}
	return nil
}
