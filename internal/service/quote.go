package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/metrics"
	"github.com/guttosm/combo-pricing-service/internal/pricing"
)

const (
	// DefaultCurrency is used when no currency is configured.
	DefaultCurrency = "INR"
	// DefaultMaxItems bounds the number of lines in one combo.
	DefaultMaxItems = 50
)

// QuoteInput is what the console knows about a combo when asking for a price.
type QuoteInput struct {
	// OriginalPrice is used when Items is empty.
	OriginalPrice *float64
	Items         []model.ComboItem
	Discount      pricing.DiscountSpec
}

// QuoteService prices combos.
type QuoteService interface {
	Quote(ctx context.Context, in QuoteInput) (model.PriceQuote, error)
	ApplyKind(current pricing.DiscountSpec, kind pricing.DiscountKind) pricing.DiscountSpec
	ApplyValue(current pricing.DiscountSpec, rawInput string, originalPrice float64) pricing.DiscountSpec
}

// QuoteServiceImpl implements QuoteService on top of the pricing engine.
type QuoteServiceImpl struct {
	catalog  MenuCatalog
	currency string
	maxItems int
}

// Option configures a QuoteServiceImpl.
type Option func(*QuoteServiceImpl)

// WithCatalog sets the menu catalog used to price items without an explicit price.
func WithCatalog(c MenuCatalog) Option {
	return func(s *QuoteServiceImpl) {
		s.catalog = c
	}
}

// WithCurrency sets the currency code stamped on quotes.
func WithCurrency(code string) Option {
	return func(s *QuoteServiceImpl) {
		if code = strings.TrimSpace(code); code != "" {
			s.currency = strings.ToUpper(code)
		}
	}
}

// WithMaxItems bounds the number of lines per combo.
func WithMaxItems(n int) Option {
	return func(s *QuoteServiceImpl) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// NewQuoteService creates a quote service.
func NewQuoteService(opts ...Option) *QuoteServiceImpl {
	s := &QuoteServiceImpl{
		currency: DefaultCurrency,
		maxItems: DefaultMaxItems,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote resolves the original price and applies the clamped discount.
// Items take precedence over OriginalPrice.
func (s *QuoteServiceImpl) Quote(ctx context.Context, in QuoteInput) (model.PriceQuote, error) {
	start := time.Now()
	kind := in.Discount.Kind.String()

	var (
		original float64
		lines    []model.QuoteLine
	)
	if len(in.Items) > 0 {
		var err error
		lines, original, err = s.resolveLines(ctx, in.Items)
		if err != nil {
			metrics.RecordQuote(time.Since(start), kind, "error")
			return model.PriceQuote{}, err
		}
	} else if in.OriginalPrice != nil {
		original = *in.OriginalPrice
	}

	q := model.NewPriceQuote(pricing.NewQuote(in.Discount, original), s.currency)
	q.Items = lines

	metrics.RecordQuote(time.Since(start), kind, "success")
	log.Debug().
		Str("discount_type", kind).
		Float64("original_price", q.OriginalPrice).
		Float64("final_price", q.FinalPrice).
		Int("items", len(lines)).
		Msg("combo quoted")
	return q, nil
}

// ApplyKind switches the discount kind.
func (s *QuoteServiceImpl) ApplyKind(current pricing.DiscountSpec, kind pricing.DiscountKind) pricing.DiscountSpec {
	next := pricing.SetDiscountKind(current, kind)
	metrics.RecordDiscountAdjustment("kind", next.Kind.String(), next.Value != current.Value)
	return next
}

// ApplyValue stores raw user input into the discount, clamped for its kind.
func (s *QuoteServiceImpl) ApplyValue(current pricing.DiscountSpec, rawInput string, originalPrice float64) pricing.DiscountSpec {
	next := pricing.SetDiscountValue(current, rawInput, originalPrice)

	typed, err := strconv.ParseFloat(strings.TrimSpace(rawInput), 64)
	metrics.RecordDiscountAdjustment("value", next.Kind.String(), err != nil || typed != next.Value)
	return next
}

// resolveLines prices every item, fetching missing unit prices from the catalog.
func (s *QuoteServiceImpl) resolveLines(ctx context.Context, items []model.ComboItem) ([]model.QuoteLine, float64, error) {
	if len(items) > s.maxItems {
		return nil, 0, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(items), s.maxItems)
	}

	catalog, err := s.lookup(ctx, items)
	if err != nil {
		return nil, 0, err
	}

	lines := make([]model.QuoteLine, 0, len(items))
	for _, it := range items {
		line := model.QuoteLine{MenuItemID: it.MenuItemID, Quantity: it.EffectiveQuantity()}

		menuItem, known := catalog[it.MenuItemID]
		if known {
			line.Name = menuItem.Name
			line.UnitPrice = menuItem.Price
		}
		if it.Price != nil {
			line.UnitPrice = *it.Price
		} else if !known {
			return nil, 0, fmt.Errorf("%w: %s", ErrMenuItemNotFound, it.MenuItemID)
		}
		lines = append(lines, line)
	}

	return lines, sumLines(lines), nil
}

// lookup fetches the catalog entries for items that carry no price of their own.
func (s *QuoteServiceImpl) lookup(ctx context.Context, items []model.ComboItem) (map[string]model.MenuItem, error) {
	var ids []string
	for _, it := range items {
		if it.Price == nil {
			ids = append(ids, it.MenuItemID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if s.catalog == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalog.GetMany(ctx, ids)
}

// sumLines fills each line total and returns the combo total, both in exact
// decimal arithmetic rounded to cents.
func sumLines(lines []model.QuoteLine) float64 {
	total := decimal.Zero
	for i := range lines {
		lineTotal := decimal.NewFromFloat(lines[i].UnitPrice).
			Mul(decimal.NewFromInt(int64(lines[i].Quantity))).
			Round(2)
		lines[i].LineTotal = lineTotal.InexactFloat64()
		total = total.Add(lineTotal)
	}
	return total.Round(2).InexactFloat64()
}
