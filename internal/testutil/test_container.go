//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// GetSharedMongoDB starts one container per test binary and returns it on every call.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		c, err := SetupMongoDB(ctx)
		sharedMu.Lock()
		shared, sharedErr = c, err
		sharedMu.Unlock()
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return shared, sharedErr
}

// CleanupSharedMongoDB terminates the shared container, if any.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	return shared.Cleanup(ctx)
}

// SetupTestMainWithMongoDB wraps m.Run with the shared container lifecycle:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mongodb container: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: cleanup shared mongodb container: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// It panics when GetSharedMongoDB has not succeeded.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if shared == nil {
		panic("shared MongoDB container not initialized")
	}
	return shared.URI
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", "\"", "_")

// SanitizeDBName turns a test name into a unique, valid MongoDB database name.
func SanitizeDBName(testName string) string {
	name := dbNameReplacer.Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
