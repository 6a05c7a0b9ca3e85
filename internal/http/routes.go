package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/middleware"
)

// RouteGroup is a set of endpoints mounted under /api.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// adminOnly guards writes when authentication is on.
func adminOnly(cfg *RouterConfig) []gin.HandlerFunc {
	if cfg.Auth == nil || cfg.AdminRole == "" {
		return nil
	}
	return []gin.HandlerFunc{middleware.RequireRole(cfg.AdminRole)}
}
