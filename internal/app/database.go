// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/combo-pricing-service/internal/metrics"
	"github.com/guttosm/combo-pricing-service/internal/repository"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

// Circuit breaker names, also used as health check keys.
const (
	menuItemsBreaker = "mongodb_menu_items"
	logsBreaker      = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                      *repository.MongoDB
	MenuItemsRepo           repository.MenuItemsRepositoryInterface
	LoggingService          service.LoggingService
	MenuItemsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker      *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the guarded repositories.
// Returns nil if the database is disabled or unreachable; the service then
// prices explicit amounts only.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without menu catalog")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	menuCB := newBreaker(menuItemsBreaker, cfg)
	logsCB := newBreaker(logsBreaker, cfg)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	menuRepo := repository.NewMenuItemsRepositoryWithCircuitBreaker(repository.NewMenuItemsRepository(db), menuCB)

	return &DatabaseComponents{
		DB:                      db,
		MenuItemsRepo:           menuRepo,
		LoggingService:          service.NewLoggingService(logsRepo),
		MenuItemsCircuitBreaker: menuCB,
		LogsCircuitBreaker:      logsCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// newBreaker builds a breaker that ignores caller mistakes (unknown or
// malformed ids) and publishes its state as a gauge.
func newBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))

	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		IsSuccessful:     repository.IsClientError,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
}
