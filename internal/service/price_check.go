package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
	"github.com/guttosm/combo-pricing-service/internal/logger"
	"github.com/guttosm/combo-pricing-service/internal/metrics"
	"github.com/guttosm/combo-pricing-service/internal/pricing"
)

// PriceChecker detects combos whose stored original price drifted from the menu.
type PriceChecker interface {
	CheckPrices(ctx context.Context, storedOriginalPrice float64, items []model.ComboItem) (model.PriceWarning, error)
}

// PriceCheckService compares stored combo prices against the catalog.
type PriceCheckService struct {
	catalog MenuCatalog
	now     func() time.Time
}

// NewPriceCheckService creates a price checker backed by catalog.
func NewPriceCheckService(catalog MenuCatalog) *PriceCheckService {
	return &PriceCheckService{
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CheckPrices recomputes the combo total from current menu prices. Item
// prices sent by the caller are the prices the combo was built with and are
// only used to report which items changed.
func (s *PriceCheckService) CheckPrices(ctx context.Context, storedOriginalPrice float64, items []model.ComboItem) (model.PriceWarning, error) {
	if s.catalog == nil {
		metrics.RecordPriceCheck("error")
		return model.PriceWarning{}, ErrRepositoryNotConfigured
	}

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.MenuItemID
	}
	catalog, err := s.catalog.GetMany(ctx, ids)
	if err != nil {
		metrics.RecordPriceCheck("error")
		return model.PriceWarning{}, err
	}

	lines := make([]model.QuoteLine, 0, len(items))
	var changed []model.PriceChange
	for _, it := range items {
		menuItem, ok := catalog[it.MenuItemID]
		if !ok {
			metrics.RecordPriceCheck("error")
			return model.PriceWarning{}, fmt.Errorf("%w: %s", ErrMenuItemNotFound, it.MenuItemID)
		}
		lines = append(lines, model.QuoteLine{
			MenuItemID: it.MenuItemID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   it.EffectiveQuantity(),
		})
		if it.Price != nil && pricing.Round2(*it.Price) != pricing.Round2(menuItem.Price) {
			changed = append(changed, model.PriceChange{
				MenuItemID:   it.MenuItemID,
				Name:         menuItem.Name,
				OldUnitPrice: *it.Price,
				NewUnitPrice: menuItem.Price,
			})
		}
	}

	stored := pricing.Round2(storedOriginalPrice)
	current := sumLines(lines)

	warning := model.PriceWarning{
		HasWarning:           stored != current,
		StoredOriginalPrice:  stored,
		CurrentOriginalPrice: current,
		ChangedItems:         changed,
		LastChecked:          s.now(),
	}
	warning.Message = PriceWarningMessage(warning, i18n.DefaultLocale)

	result := "unchanged"
	if warning.HasWarning {
		result = "changed"
		l := logger.WithContext(map[string]interface{}{
			"stored_original_price":  stored,
			"current_original_price": current,
			"changed_items":          len(changed),
		})
		l.Info().Msg("combo price drift detected")
	}
	metrics.RecordPriceCheck(result)
	return warning, nil
}

// PriceWarningMessage renders the warning text in locale.
func PriceWarningMessage(w model.PriceWarning, locale string) string {
	t := i18n.GetTranslator()
	if !w.HasWarning {
		return t.Translate(i18n.MsgKeyPricesCurrent, locale)
	}
	return t.Translatef(i18n.MsgKeyPricesChanged, locale, w.StoredOriginalPrice, w.CurrentOriginalPrice)
}
