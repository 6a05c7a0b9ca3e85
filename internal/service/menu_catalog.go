package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/repository"
	"github.com/guttosm/combo-pricing-service/internal/service/cache"
)

// MenuCatalog is the source of menu item prices.
type MenuCatalog interface {
	Get(ctx context.Context, id string) (*model.MenuItem, error)
	// GetMany returns the items found among ids keyed by id; unknown ids are absent.
	GetMany(ctx context.Context, ids []string) (map[string]model.MenuItem, error)
	List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error)
	Upsert(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// MenuCatalogService reads through a sharded cache and invalidates on writes.
type MenuCatalogService struct {
	repo  repository.MenuItemsRepositoryInterface
	cache cache.CacheWithMetrics[string, model.MenuItem]
}

// CatalogOption configures a MenuCatalogService.
type CatalogOption func(*MenuCatalogService)

// WithMenuCache enables the read-through cache.
func WithMenuCache(size int, ttl time.Duration) CatalogOption {
	return func(s *MenuCatalogService) {
		if size > 0 && ttl > 0 {
			s.cache = NewShardedCache[model.MenuItem](size, ttl, defaultShards)
		}
	}
}

// WithMenuCacheInstance injects a cache implementation.
func WithMenuCacheInstance(c cache.CacheWithMetrics[string, model.MenuItem]) CatalogOption {
	return func(s *MenuCatalogService) {
		s.cache = c
	}
}

// NewMenuCatalogService creates a catalog over repo. A nil repo yields a
// catalog whose every call fails with ErrRepositoryNotConfigured.
func NewMenuCatalogService(repo repository.MenuItemsRepositoryInterface, opts ...CatalogOption) *MenuCatalogService {
	s := &MenuCatalogService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns one menu item.
func (s *MenuCatalogService) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if key, ok := canonicalID(id); ok {
		if item, hit := s.cacheGet(key); hit {
			return &item, nil
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	s.cacheSet(*item)
	return item, nil
}

// GetMany resolves ids with one batched query for the cache misses. ObjectID
// hex is case-insensitive; results are keyed by the ids exactly as given.
func (s *MenuCatalogService) GetMany(ctx context.Context, ids []string) (map[string]model.MenuItem, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	byKey := make(map[string]model.MenuItem, len(ids))
	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		key, ok := canonicalID(id)
		if !ok {
			continue
		}
		if _, done := byKey[key]; done || slices.Contains(missing, key) {
			continue
		}
		if item, hit := s.cacheGet(key); hit {
			byKey[key] = item
			continue
		}
		missing = append(missing, key)
	}

	if len(missing) > 0 {
		items, err := s.repo.FindByIDs(ctx, missing)
		if err != nil {
			return nil, mapRepoError(err, "")
		}
		for _, item := range items {
			byKey[item.ID.Hex()] = item
			s.cacheSet(item)
		}
	}

	found := make(map[string]model.MenuItem, len(ids))
	for _, id := range ids {
		if key, ok := canonicalID(id); ok {
			if item, hit := byKey[key]; hit {
				found[id] = item
			}
		}
	}
	return found, nil
}

// List returns catalog entries. Listings bypass the cache.
func (s *MenuCatalogService) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	return items, nil
}

// Upsert validates and stores item, then drops any cached copy.
func (s *MenuCatalogService) Upsert(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.ToLower(strings.TrimSpace(item.Category))
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, item)
	if err != nil {
		return nil, mapRepoError(err, item.ID.Hex())
	}
	s.cacheInvalidate(saved.ID.Hex())

	log.Info().
		Str("menu_item_id", saved.ID.Hex()).
		Float64("price", saved.Price).
		Str("updated_by", saved.UpdatedBy).
		Msg("menu item saved")
	return saved, nil
}

// Delete removes a menu item and its cached copy.
func (s *MenuCatalogService) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, id)
	}
	if key, ok := canonicalID(id); ok {
		s.cacheInvalidate(key)
	}
	return nil
}

// CacheMetrics exposes cache statistics; ok is false when caching is off.
func (s *MenuCatalogService) CacheMetrics() (m cache.Metrics, ok bool) {
	if s.cache == nil {
		return cache.Metrics{}, false
	}
	return s.cache.Metrics(), true
}

// Close stops background cache maintenance.
func (s *MenuCatalogService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *MenuCatalogService) cacheGet(id string) (model.MenuItem, bool) {
	if s.cache == nil {
		return model.MenuItem{}, false
	}
	return s.cache.Get(id)
}

func (s *MenuCatalogService) cacheSet(item model.MenuItem) {
	if s.cache != nil {
		s.cache.Set(item.ID.Hex(), item)
	}
}

func (s *MenuCatalogService) cacheInvalidate(id string) {
	if s.cache != nil {
		s.cache.Invalidate(id)
	}
}

// canonicalID returns the lowercase hex form used as cache key.
func canonicalID(id string) (string, bool) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return "", false
	}
	return oid.Hex(), true
}

func validateMenuItem(item model.MenuItem) error {
	switch {
	case item.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	case math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0:
		return fmt.Errorf("%w: price must be a non-negative number", ErrInvalidMenuItem)
	}
	return nil
}

// mapRepoError turns storage errors into service sentinels. Anything that is
// not the caller's fault means prices cannot be trusted right now.
func mapRepoError(err error, id string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrInvalidID):
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, id)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
}
