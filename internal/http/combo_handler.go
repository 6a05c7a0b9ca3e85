package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
	"github.com/guttosm/combo-pricing-service/internal/pricing"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

// ComboHandler serves the combo pricing endpoints.
type ComboHandler struct {
	quotes   service.QuoteService
	checker  service.PriceChecker
	currency string
}

// ComboHandlerOption configures a ComboHandler.
type ComboHandlerOption func(*ComboHandler)

// WithPriceChecker enables the price-check endpoint.
func WithPriceChecker(pc service.PriceChecker) ComboHandlerOption {
	return func(h *ComboHandler) {
		h.checker = pc
	}
}

// WithPreviewCurrency sets the currency on discount previews.
func WithPreviewCurrency(code string) ComboHandlerOption {
	return func(h *ComboHandler) {
		h.currency = code
	}
}

// NewComboHandler creates a ComboHandler.
func NewComboHandler(quotes service.QuoteService, opts ...ComboHandlerOption) *ComboHandler {
	h := &ComboHandler{
		quotes:   quotes,
		currency: service.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Quote handles POST /api/combos/quote.
//
// @Summary      Price a combo
// @Description  Computes discount amount and final price for a combo. The original price is either sent directly or derived from the item selection using current menu prices. The discount value is clamped to its valid range before use.
// @Tags         Combos
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Combo price source and discount"
// @Success      200 {object} dto.SuccessResponse{data=model.PriceQuote} "Priced combo"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Menu item not found"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      503 {object} dto.ErrorResponse "Menu catalog unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/combos/quote [post]
func (h *ComboHandler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	quote, err := h.quotes.Quote(c.Request.Context(), service.QuoteInput{
		OriginalPrice: req.OriginalPrice,
		Items:         req.Items,
		Discount:      req.Discount.Spec(),
	})
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(quote)
}

// DiscountKind handles POST /api/combos/discount/kind.
//
// @Summary      Change discount type
// @Description  Switches the discount type. Switching to none resets the value to 0; any other type keeps the current value.
// @Tags         Combos
// @Accept       json
// @Produce      json
// @Param        request body dto.DiscountKindRequest true "Current discount and new type"
// @Success      200 {object} dto.SuccessResponse{data=dto.DiscountResponse} "Resolved discount"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/combos/discount/kind [post]
func (h *ComboHandler) DiscountKind(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.DiscountKindRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	next := h.quotes.ApplyKind(req.Current.Spec(), pricing.ParseDiscountKind(req.Kind))
	builder.SuccessOK(dto.DiscountResponse{Discount: next})
}

// DiscountValue handles POST /api/combos/discount/value.
//
// @Summary      Change discount value
// @Description  Stores raw typed input as the discount value. Non-numeric input counts as 0; percentages are clamped to [0, 100] and fixed amounts to [0, original_price]. The response carries a price preview.
// @Tags         Combos
// @Accept       json
// @Produce      json
// @Param        request body dto.DiscountValueRequest true "Current discount, raw input and original price"
// @Success      200 {object} dto.SuccessResponse{data=dto.DiscountResponse} "Resolved discount with preview"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/combos/discount/value [post]
func (h *ComboHandler) DiscountValue(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.DiscountValueRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	next := h.quotes.ApplyValue(req.Current.Spec(), req.RawInput, req.OriginalPrice)
	preview := model.NewPriceQuote(pricing.NewQuote(next, req.OriginalPrice), h.currency)

	builder.SuccessOK(dto.DiscountResponse{Discount: next, Quote: &preview})
}

// PriceCheck handles POST /api/combos/price-check.
//
// @Summary      Check stored combo price
// @Description  Recomputes the combo original price from current menu prices and reports a warning when it differs from the stored one.
// @Tags         Combos
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Message language (en, pt, hi)"
// @Param        request body dto.PriceCheckRequest true "Stored price and combo items"
// @Success      200 {object} dto.SuccessResponse{data=model.PriceWarning} "Price check result"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Menu item not found"
// @Failure      503 {object} dto.ErrorResponse "Menu catalog unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/combos/price-check [post]
func (h *ComboHandler) PriceCheck(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.checker == nil {
		builder.ServiceError(service.ErrRepositoryNotConfigured)
		return
	}

	req, err := BuildRequest[dto.PriceCheckRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	warning, err := h.checker.CheckPrices(c.Request.Context(), req.StoredOriginalPrice, req.Items)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	if locale := i18n.GetLocale(c); locale != i18n.DefaultLocale {
		warning.Message = service.PriceWarningMessage(warning, locale)
	}
	builder.SuccessOK(warning)
}
