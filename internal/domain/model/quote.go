// Package model defines the core domain entities for the combo pricing service.
package model

import (
	"time"

	"github.com/guttosm/combo-pricing-service/internal/pricing"
)

// ComboItem is one menu item selected into a combo.
//
// @Description Menu item and quantity selected into a combo
// @Example {"menu_item_id": "65a1f0c2e4b0a1b2c3d4e5f6", "quantity": 2}
type ComboItem struct {
	// MenuItemID references a catalog menu item.
	MenuItemID string `json:"menu_item_id" binding:"required" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	// Quantity of the item in the combo, at least 1.
	Quantity int `json:"quantity" example:"2"`
	// Price overrides the catalog price when set.
	Price *float64 `json:"price,omitempty" binding:"omitempty,gte=0" example:"75"`
}

// EffectiveQuantity returns the quantity floored at one.
func (i ComboItem) EffectiveQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// PriceQuote is the priced result of a combo discount.
//
// @Description Combo price quote
// @Example {"original_price": 150, "discount": {"type": "percentage", "value": 20}, "discount_amount": 30, "final_price": 120, "savings_percent": 20, "description": "20% of 150.00", "currency": "INR"}
type PriceQuote struct {
	OriginalPrice  float64              `json:"original_price" example:"150"`
	Discount       pricing.DiscountSpec `json:"discount"`
	DiscountAmount float64              `json:"discount_amount" example:"30"`
	FinalPrice     float64              `json:"final_price" example:"120"`
	SavingsPercent float64              `json:"savings_percent" example:"20"`
	Description    string               `json:"description,omitempty" example:"20% of 150.00"`
	Currency       string               `json:"currency,omitempty" example:"INR"`
	// Items echoes the resolved line items when the quote was built from a selection.
	Items []QuoteLine `json:"items,omitempty"`
}

// QuoteLine is a resolved combo line with its catalog price.
type QuoteLine struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name,omitempty"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
}

// NewPriceQuote converts an engine quote into its API representation.
func NewPriceQuote(q pricing.Quote, currency string) PriceQuote {
	return PriceQuote{
		OriginalPrice:  q.OriginalPrice,
		Discount:       q.Discount,
		DiscountAmount: q.DiscountAmount,
		FinalPrice:     q.FinalPrice,
		SavingsPercent: q.SavingsPercent,
		Description:    q.Description,
		Currency:       currency,
	}
}

// PriceWarning flags a combo whose stored original price drifted from the catalog.
//
// @Description Result of comparing a combo's stored price with current menu prices
type PriceWarning struct {
	HasWarning           bool          `json:"has_warning"`
	Message              string        `json:"message,omitempty"`
	StoredOriginalPrice  float64       `json:"stored_original_price"`
	CurrentOriginalPrice float64       `json:"current_original_price"`
	ChangedItems         []PriceChange `json:"changed_items,omitempty"`
	LastChecked          time.Time     `json:"last_checked"`
}

// PriceChange describes a single item whose price moved.
type PriceChange struct {
	MenuItemID   string  `json:"menu_item_id"`
	Name         string  `json:"name,omitempty"`
	OldUnitPrice float64 `json:"old_unit_price"`
	NewUnitPrice float64 `json:"new_unit_price"`
}
