package repository

import (
	"context"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
)

// MenuItemsRepositoryInterface is the menu price catalog store.
type MenuItemsRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error)
	List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error)
	Upsert(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ MenuItemsRepositoryInterface = (*MenuItemsRepository)(nil)
	_ MenuItemsRepositoryInterface = (*MenuItemsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface      = (*LogsRepository)(nil)
	_ LogsRepositoryInterface      = (*LogsRepositoryWithCircuitBreaker)(nil)
)
