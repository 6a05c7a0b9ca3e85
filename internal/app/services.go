// Package app provides service initialization.
package app

import (
	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Quotes       service.QuoteService
	PriceChecker service.PriceChecker
	// Catalog is nil when MongoDB is unavailable.
	Catalog *service.MenuCatalogService
}

// InitializeServices wires the pricing services, backed by the menu catalog
// when db is available.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{}

	opts := []service.Option{
		service.WithCurrency(cfg.Pricing.Currency),
		service.WithMaxItems(cfg.Pricing.MaxItemsPerCombo),
	}

	if db != nil && db.MenuItemsRepo != nil {
		var catalogOpts []service.CatalogOption
		if cfg.Cache.Size > 0 {
			catalogOpts = append(catalogOpts, service.WithMenuCache(cfg.Cache.Size, cfg.Cache.TTL))
		}
		components.Catalog = service.NewMenuCatalogService(db.MenuItemsRepo, catalogOpts...)
		components.PriceChecker = service.NewPriceCheckService(components.Catalog)
		opts = append(opts, service.WithCatalog(components.Catalog))
	}

	components.Quotes = service.NewQuoteService(opts...)
	return components
}

// Close stops background cache maintenance.
func (s *ServiceComponents) Close() {
	if s != nil && s.Catalog != nil {
		s.Catalog.Close()
	}
}
