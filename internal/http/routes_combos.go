package http

import "github.com/gin-gonic/gin"

// ComboRoutes mounts the pricing endpoints.
type ComboRoutes struct {
	handler *ComboHandler
}

// NewComboRoutes creates combo routes.
func NewComboRoutes(handler *ComboHandler) *ComboRoutes {
	return &ComboRoutes{handler: handler}
}

// RegisterRoutes registers /combos endpoints. Every authenticated caller may price.
func (r *ComboRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	if r.handler == nil {
		return
	}
	combos := rg.Group("/combos")
	combos.POST("/quote", r.handler.Quote)
	combos.POST("/discount/kind", r.handler.DiscountKind)
	combos.POST("/discount/value", r.handler.DiscountValue)
	combos.POST("/price-check", r.handler.PriceCheck)
}
