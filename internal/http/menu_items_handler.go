package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
	"github.com/guttosm/combo-pricing-service/internal/middleware"
	"github.com/guttosm/combo-pricing-service/internal/repository"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

// MenuItemsHandler serves the menu price catalog.
type MenuItemsHandler struct {
	catalog service.MenuCatalog
	audit   *middleware.AsyncLogger
}

// NewMenuItemsHandler creates a MenuItemsHandler. audit may be nil.
func NewMenuItemsHandler(catalog service.MenuCatalog, audit *middleware.AsyncLogger) *MenuItemsHandler {
	return &MenuItemsHandler{catalog: catalog, audit: audit}
}

// List handles GET /api/menu-items.
//
// @Summary      List menu items
// @Description  Lists catalog items ordered by category and name.
// @Tags         Menu
// @Produce      json
// @Param        category  query string false "Exact category"
// @Param        search    query string false "Case-insensitive name search"
// @Param        available query bool   false "Only available or unavailable items"
// @Param        limit     query int    false "Page size (1-200)"
// @Param        skip      query int    false "Items to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.MenuItem} "Menu items"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Menu catalog unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/menu-items [get]
func (h *MenuItemsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.MenuItemQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.BindError(err)
		return
	}

	items, err := h.catalog.List(c.Request.Context(), query.Filter())
	if err != nil {
		builder.ServiceError(err)
		return
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	builder.SuccessOK(items)
}

// Get handles GET /api/menu-items/:id.
//
// @Summary      Get menu item
// @Tags         Menu
// @Produce      json
// @Param        id path string true "Menu item id"
// @Success      200 {object} dto.SuccessResponse{data=model.MenuItem} "Menu item"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Menu item not found"
// @Failure      503 {object} dto.ErrorResponse "Menu catalog unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/menu-items/{id} [get]
func (h *MenuItemsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	item, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(item)
}

// Create handles POST /api/menu-items.
//
// @Summary      Create menu item
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Param        request body dto.UpsertMenuItemRequest true "Menu item"
// @Success      201 {object} dto.SuccessResponse{data=model.MenuItem} "Created menu item"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Admin role required"
// @Failure      503 {object} dto.ErrorResponse "Menu catalog unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/menu-items [post]
func (h *MenuItemsHandler) Create(c *gin.Context) {
	h.save(c, model.MenuItem{}, http.StatusCreated)
}

// Upsert handles PUT /api/menu-items/:id.
//
// @Summary      Create or replace menu item
// @Description  Stores the item under id. Cached prices for the item are invalidated.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Menu item id (24 hex characters)"
// @Param        request body dto.UpsertMenuItemRequest true "Menu item"
// @Success      200 {object} dto.SuccessResponse{data=model.MenuItem} "Saved menu item"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Admin role required"
// @Failure      503 {object} dto.ErrorResponse "Menu catalog unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/menu-items/{id} [put]
func (h *MenuItemsHandler) Upsert(c *gin.Context) {
	oid, err := repository.ParseID(c.Param("id"))
	if err != nil {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{"id": "objectid"}, nil)
		return
	}
	h.save(c, model.MenuItem{ID: oid}, http.StatusOK)
}

func (h *MenuItemsHandler) save(c *gin.Context, base model.MenuItem, status int) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpsertMenuItemRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	item := req.ToModel()
	item.ID = base.ID
	if claims := middleware.GetClaims(c); claims != nil {
		item.UpdatedBy = claims.Subject
	}

	saved, err := h.catalog.Upsert(c.Request.Context(), item)
	if err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionUpsertMenuItem, "Menu item save failed", err, map[string]interface{}{
			"menu_item_id": item.ID.Hex(),
		})
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionUpsertMenuItem, "Menu item saved", map[string]interface{}{
		"menu_item_id": saved.ID.Hex(),
		"price":        saved.Price,
		"available":    saved.Available,
	})
	builder.Success(status, saved)
}

// Delete handles DELETE /api/menu-items/:id.
//
// @Summary      Delete menu item
// @Tags         Menu
// @Param        id path string true "Menu item id"
// @Success      204 "Deleted"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Admin role required"
// @Failure      404 {object} dto.ErrorResponse "Menu item not found"
// @Failure      503 {object} dto.ErrorResponse "Menu catalog unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/menu-items/{id} [delete]
func (h *MenuItemsHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionDeleteMenuItem, "Menu item delete failed", err, map[string]interface{}{
			"menu_item_id": id,
		})
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionDeleteMenuItem, "Menu item deleted", map[string]interface{}{
		"menu_item_id": id,
	})
	c.Status(http.StatusNoContent)
}
