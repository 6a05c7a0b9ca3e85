package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/combo-pricing-service/internal/metrics"
	"github.com/guttosm/combo-pricing-service/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// Auth enables authentication on /api when set.
	Auth *middleware.AuthConfig
	// AdminRole is required on catalog writes when Auth is set.
	AdminRole string
	// RateLimiter is applied globally when set.
	RateLimiter *middleware.RateLimiter
	// AuditLog ships request and audit entries to MongoDB; nil disables it.
	AuditLog       *middleware.AsyncLogger
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		AdminRole:      "admin",
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the pricing service.
// menu may be nil when MongoDB is disabled.
func NewRouter(combos *ComboHandler, menu *MenuItemsHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	groups := []RouteGroup{NewComboRoutes(combos)}
	if menu != nil {
		groups = append(groups, NewMenuRoutes(menu))
	}
	for _, g := range groups {
		g.RegisterRoutes(api, &cfg)
	}

	return router
}

func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", middleware.APIKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.AuditLog),
		middleware.ErrorHandler(),
	)
}

func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware orders the /api chain: deadline, identity, then the
// limiter so authenticated callers are limited per subject.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.Auth != nil {
		api.Use(middleware.Authenticate(*cfg.Auth))
	}
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware())
	}
}
