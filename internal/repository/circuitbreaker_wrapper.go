package repository

import (
	"context"
	"errors"

	"github.com/guttosm/combo-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/combo-pricing-service/internal/domain/model"
)

// guarded runs fn through cb and hands back its result.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// MenuItemsRepositoryWithCircuitBreaker wraps a menu store with circuit breaker protection.
// An open circuit surfaces as circuitbreaker.ErrCircuitOpen; callers must not
// fall back to guessed prices.
type MenuItemsRepositoryWithCircuitBreaker struct {
	repo           MenuItemsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMenuItemsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMenuItemsRepositoryWithCircuitBreaker(repo MenuItemsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *MenuItemsRepositoryWithCircuitBreaker {
	return &MenuItemsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByID implements MenuItemsRepositoryInterface.
func (r *MenuItemsRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.MenuItem, error) {
		return r.repo.FindByID(ctx, id)
	})
}

// FindByIDs implements MenuItemsRepositoryInterface.
func (r *MenuItemsRepositoryWithCircuitBreaker) FindByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.MenuItem, error) {
		return r.repo.FindByIDs(ctx, ids)
	})
}

// List implements MenuItemsRepositoryInterface.
func (r *MenuItemsRepositoryWithCircuitBreaker) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.MenuItem, error) {
		return r.repo.List(ctx, filter)
	})
}

// Upsert implements MenuItemsRepositoryInterface.
func (r *MenuItemsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.MenuItem, error) {
		return r.repo.Upsert(ctx, item)
	})
}

// Delete implements MenuItemsRepositoryInterface.
func (r *MenuItemsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MenuItemsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a log store with circuit breaker protection.
// Writes are dropped silently while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	}))
}

// CreateMany implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	}))
}

// Query implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}
