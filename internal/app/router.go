// Package app provides router configuration.
package app

import (
	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/http"
	"github.com/guttosm/combo-pricing-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	ComboHandler  *http.ComboHandler
	MenuHandler   *http.MenuItemsHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(cfg config.Config, services *ServiceComponents, db *DatabaseComponents) *RouterComponents {
	comboOpts := []http.ComboHandlerOption{http.WithPreviewCurrency(cfg.Pricing.Currency)}
	if services.PriceChecker != nil {
		comboOpts = append(comboOpts, http.WithPriceChecker(services.PriceChecker))
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.Auth = InitializeAuth(cfg.Auth)
	routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	if cfg.Auth.AdminRole != "" {
		routerCfg.AdminRole = cfg.Auth.AdminRole
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	healthHandler := http.NewHealthHandler()
	var menuHandler *http.MenuItemsHandler

	if db != nil {
		routerCfg.AuditLog = middleware.NewAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())

		if db.DB != nil {
			healthHandler.RegisterChecker("mongodb", db.DB)
		}
		healthHandler.RegisterCircuitBreaker(menuItemsBreaker, db.MenuItemsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker(logsBreaker, db.LogsCircuitBreaker)
	}
	if services.Catalog != nil {
		menuHandler = http.NewMenuItemsHandler(services.Catalog, routerCfg.AuditLog)
	}

	return &RouterComponents{
		ComboHandler:  http.NewComboHandler(services.Quotes, comboOpts...),
		MenuHandler:   menuHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Close stops the rate limiter janitor and drains the log sink.
func (r *RouterComponents) Close() {
	if r == nil {
		return
	}
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	r.Config.AuditLog.Stop()
}
