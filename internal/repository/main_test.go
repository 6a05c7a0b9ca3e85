//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/combo-pricing-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer connects to a database named after the test,
// so parallel tests never see each other's menu items or logs.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	return db
}
