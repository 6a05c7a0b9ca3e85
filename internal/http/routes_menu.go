package http

import "github.com/gin-gonic/gin"

// MenuRoutes mounts the menu catalog endpoints.
type MenuRoutes struct {
	handler *MenuItemsHandler
}

// NewMenuRoutes creates menu routes.
func NewMenuRoutes(handler *MenuItemsHandler) *MenuRoutes {
	return &MenuRoutes{handler: handler}
}

// RegisterRoutes registers /menu-items endpoints; writes need the admin role.
func (r *MenuRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	items := rg.Group("/menu-items")
	items.GET("", r.handler.List)
	items.GET("/:id", r.handler.Get)

	write := items.Group("", adminOnly(cfg)...)
	write.POST("", r.handler.Create)
	write.PUT("/:id", r.handler.Upsert)
	write.DELETE("/:id", r.handler.Delete)
}
