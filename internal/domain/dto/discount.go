package dto

import (
	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/pricing"
)

// DiscountResponse is the resolved discount after a form edit.
//
// @Description Resolved discount, plus a price preview when the original price is known
type DiscountResponse struct {
	Discount pricing.DiscountSpec `json:"discount"`
	// Quote previews the price with the new discount.
	Quote *model.PriceQuote `json:"quote,omitempty"`
} // @name DiscountResponse
