// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/pricing"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, in service.QuoteInput) (model.PriceQuote, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.PriceQuote), args.Error(1)
}

func (m *MockQuoteService) ApplyKind(current pricing.DiscountSpec, kind pricing.DiscountKind) pricing.DiscountSpec {
	args := m.Called(current, kind)
	return args.Get(0).(pricing.DiscountSpec)
}

func (m *MockQuoteService) ApplyValue(current pricing.DiscountSpec, rawInput string, originalPrice float64) pricing.DiscountSpec {
	args := m.Called(current, rawInput, originalPrice)
	return args.Get(0).(pricing.DiscountSpec)
}

type MockPriceChecker struct {
	mock.Mock
}

func (m *MockPriceChecker) CheckPrices(ctx context.Context, storedOriginalPrice float64, items []model.ComboItem) (model.PriceWarning, error) {
	args := m.Called(ctx, storedOriginalPrice, items)
	return args.Get(0).(model.PriceWarning), args.Error(1)
}
