package service

import "errors"

var (
	// ErrMenuItemNotFound is returned when a combo references an unknown menu item.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrCatalogUnavailable is returned when menu prices cannot be read or written.
	ErrCatalogUnavailable = errors.New("menu catalog unavailable")
	// ErrRepositoryNotConfigured is returned when a catalog lookup is needed but no database is configured.
	ErrRepositoryNotConfigured = errors.New("menu repository not configured")
	// ErrInvalidMenuItem is returned when a menu item fails validation.
	ErrInvalidMenuItem = errors.New("invalid menu item")
	// ErrTooManyItems is returned when a combo exceeds the configured item limit.
	ErrTooManyItems = errors.New("too many items in combo")
)
