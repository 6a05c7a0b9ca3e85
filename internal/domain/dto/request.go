// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry the binding
// rules validated by gin.
package dto

import (
	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/pricing"
)

// DiscountInput is the discount currently configured in the console form.
//
// @Description Discount type and value
// @Example {"type": "percentage", "value": 20}
type DiscountInput struct {
	// Type is one of none, percentage or fixed (case-insensitive).
	Type string `json:"type" binding:"omitempty,discount_kind" example:"percentage" enums:"none,percentage,fixed"`
	// Value is the percent or amount off; clamped server side.
	Value float64 `json:"value" example:"20"`
} // @name DiscountInput

// Spec converts the input into an engine DiscountSpec.
func (d DiscountInput) Spec() pricing.DiscountSpec {
	return pricing.DiscountSpec{Kind: pricing.ParseDiscountKind(d.Type), Value: d.Value}
}

// QuoteRequest is the JSON body of the quote endpoint.
//
// Either OriginalPrice or Items must be present. When both are sent the
// original price is recomputed from Items.
//
// @Description Request to price a combo
// @Example {"original_price": 150, "discount": {"type": "percentage", "value": 20}}
// @Example {"items": [{"menu_item_id": "65a1f0c2e4b0a1b2c3d4e5f6", "quantity": 2}], "discount": {"type": "fixed", "value": 40}}
type QuoteRequest struct {
	OriginalPrice *float64          `json:"original_price,omitempty" binding:"omitempty,gte=0" example:"150"`
	Items         []model.ComboItem `json:"items,omitempty" binding:"omitempty,dive"`
	Discount      DiscountInput     `json:"discount"`
} // @name QuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingPriceSource is returned when neither original_price nor items is sent.
	ErrMissingPriceSource = &ValidationError{
		Field:   "original_price",
		Message: "original_price or items is required",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs checks that binding tags cannot express.
func (r *QuoteRequest) Validate() error {
	if r.OriginalPrice == nil && len(r.Items) == 0 {
		return ErrMissingPriceSource
	}
	return nil
}

// DiscountKindRequest switches the kind of the current discount.
//
// @Description Request to change the discount type
// @Example {"current": {"type": "fixed", "value": 80}, "kind": "percentage"}
type DiscountKindRequest struct {
	Current DiscountInput `json:"current"`
	Kind    string        `json:"kind" binding:"required,discount_kind" example:"percentage" enums:"none,percentage,fixed"`
} // @name DiscountKindRequest

// DiscountValueRequest stores a raw typed value into the current discount.
//
// @Description Request to change the discount value from raw user input
// @Example {"current": {"type": "fixed", "value": 0}, "raw_input": "9999", "original_price": 200}
type DiscountValueRequest struct {
	Current DiscountInput `json:"current"`
	// RawInput is exactly what the user typed; unparseable input counts as 0.
	RawInput      string  `json:"raw_input" example:"9999"`
	OriginalPrice float64 `json:"original_price" example:"200"`
} // @name DiscountValueRequest

// PriceCheckRequest compares a stored combo price with current menu prices.
//
// @Description Request to check a stored combo price against the menu
// @Example {"stored_original_price": 150, "items": [{"menu_item_id": "65a1f0c2e4b0a1b2c3d4e5f6", "quantity": 2, "price": 75}]}
type PriceCheckRequest struct {
	StoredOriginalPrice float64           `json:"stored_original_price" binding:"gte=0" example:"150"`
	Items               []model.ComboItem `json:"items" binding:"required,min=1,dive"`
} // @name PriceCheckRequest

// UpsertMenuItemRequest is the JSON body for creating or replacing a menu item.
//
// @Description Menu item to create or replace
// @Example {"name": "Paneer Tikka", "category": "starter", "price": 75, "available": true}
type UpsertMenuItemRequest struct {
	Name      string   `json:"name" binding:"required,max=120" example:"Paneer Tikka"`
	Category  string   `json:"category" binding:"omitempty,max=60" example:"starter"`
	Price     *float64 `json:"price" binding:"required,gte=0" example:"75"`
	Available *bool    `json:"available,omitempty" example:"true"`
} // @name UpsertMenuItemRequest

// ToModel builds a MenuItem from the request. Available defaults to true.
func (r *UpsertMenuItemRequest) ToModel() model.MenuItem {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	var price float64
	if r.Price != nil {
		price = *r.Price
	}
	return model.MenuItem{
		Name:      r.Name,
		Category:  r.Category,
		Price:     price,
		Available: available,
	}
}

// MenuItemQuery holds the list filters of the menu items endpoint.
type MenuItemQuery struct {
	Category  string `form:"category"`
	Search    string `form:"search" binding:"omitempty,max=100"`
	Available *bool  `form:"available"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Skip      int    `form:"skip" binding:"omitempty,min=0"`
}

// Filter converts the query into a repository filter.
func (q MenuItemQuery) Filter() model.MenuItemFilter {
	return model.MenuItemFilter{
		Category:  q.Category,
		Search:    q.Search,
		Available: q.Available,
		Limit:     q.Limit,
		Skip:      q.Skip,
	}
}
