//go:build !integration

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/combo-pricing-service/internal/metrics"
	"github.com/guttosm/combo-pricing-service/internal/repository"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	db := InitializeDatabase(config.DatabaseConfig{Enabled: false})
	assert.Nil(t, db)
	assert.NoError(t, db.Close(context.Background()))
}

func TestNewBreaker(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 2,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}
	ctx := context.Background()
	gauge := metrics.CircuitBreakerState.WithLabelValues("test_breaker")

	cb := newBreaker("test_breaker", cfg)
	assert.Equal(t, float64(circuitbreaker.StateClosed), testutil.ToFloat64(gauge))

	for i := 0; i < 5; i++ {
		_ = cb.Execute(ctx, func() error { return fmt.Errorf("menu item x: %w", repository.ErrNotFound) })
	}
	assert.Equal(t, circuitbreaker.StateClosed, cb.State(), "unknown ids must not trip the breaker")

	for i := 0; i < 2; i++ {
		_ = cb.Execute(ctx, func() error { return errors.New("server selection timeout") })
	}
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
	assert.Equal(t, float64(circuitbreaker.StateOpen), testutil.ToFloat64(gauge))
}
