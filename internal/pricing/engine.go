// Package pricing computes combo discounts and final prices.
//
// Every function in this package is pure and total: malformed input degrades to
// "no discount" instead of producing an error, so callers can run it on every
// keystroke of a form without guarding against failures.
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DiscountKind identifies how a combo discount value is interpreted.
type DiscountKind string

const (
	// KindNone means the combo is sold at its original price.
	KindNone DiscountKind = "none"
	// KindPercentage means the value is percent-off, in [0, 100].
	KindPercentage DiscountKind = "percentage"
	// KindFixed means the value is an absolute amount off, in [0, originalPrice].
	KindFixed DiscountKind = "fixed"
)

// ParseDiscountKind converts a wire or user-supplied kind into a DiscountKind.
// Matching is case-insensitive; anything unrecognised is KindNone.
func ParseDiscountKind(s string) DiscountKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindPercentage):
		return KindPercentage
	case string(KindFixed):
		return KindFixed
	default:
		return KindNone
	}
}

// IsValidDiscountKind reports whether s names a known kind.
func IsValidDiscountKind(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindNone), string(KindPercentage), string(KindFixed):
		return true
	}
	return false
}

// String returns the lowercase wire form of the kind.
func (k DiscountKind) String() string {
	return string(ParseDiscountKind(string(k)))
}

// DiscountSpec is the discount configured for a combo.
type DiscountSpec struct {
	Kind  DiscountKind `json:"type"`
	Value float64      `json:"value"`
}

// None returns a spec without discount.
func None() DiscountSpec {
	return DiscountSpec{Kind: KindNone}
}

// Quote is the priced outcome of applying a DiscountSpec to an original price.
type Quote struct {
	OriginalPrice  float64
	Discount       DiscountSpec
	DiscountAmount float64
	FinalPrice     float64
	SavingsPercent float64
	Description    string
}

// Round2 rounds x to the nearest cent, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// SetDiscountKind replaces the discount kind. Switching to KindNone resets the
// value to zero; any other kind keeps the current value untouched.
func SetDiscountKind(current DiscountSpec, kind DiscountKind) DiscountSpec {
	kind = ParseDiscountKind(string(kind))
	if kind == KindNone {
		return DiscountSpec{Kind: KindNone}
	}
	return DiscountSpec{Kind: kind, Value: current.Value}
}

// SetDiscountValue parses raw user input and stores it, clamped for the current kind.
// Non-numeric, empty or non-finite input counts as zero.
func SetDiscountValue(current DiscountSpec, rawInput string, originalPrice float64) DiscountSpec {
	return DiscountSpec{
		Kind:  current.Kind,
		Value: clampValue(current.Kind, parseAmount(rawInput), sanitizePrice(originalPrice)),
	}
}

// Clamp applies the SetDiscountValue bounds to a value that is already numeric.
func Clamp(spec DiscountSpec, originalPrice float64) DiscountSpec {
	return DiscountSpec{
		Kind:  spec.Kind,
		Value: clampValue(spec.Kind, spec.Value, sanitizePrice(originalPrice)),
	}
}

// ComputeDiscountAmount returns the amount taken off originalPrice, in [0, originalPrice].
func ComputeDiscountAmount(spec DiscountSpec, originalPrice float64) float64 {
	price := sanitizePrice(originalPrice)
	value := finiteOrZero(spec.Value)

	var amount float64
	switch ParseDiscountKind(string(spec.Kind)) {
	case KindPercentage:
		amount = Round2(price * value / 100)
	case KindFixed:
		amount = Round2(value)
	default:
		return 0
	}

	// The value is clamped upstream; this keeps hand-built specs inside the bounds too.
	return math.Min(math.Max(amount, 0), price)
}

// ComputeFinalPrice returns the price after discount, never below zero.
func ComputeFinalPrice(spec DiscountSpec, originalPrice float64) float64 {
	price := sanitizePrice(originalPrice)
	return Round2(math.Max(0, price-ComputeDiscountAmount(spec, price)))
}

// DescribeDiscount renders a short human-readable breakdown of the discount.
func DescribeDiscount(spec DiscountSpec, originalPrice float64) string {
	switch ParseDiscountKind(string(spec.Kind)) {
	case KindPercentage:
		return fmt.Sprintf("%s%% of %.2f", formatValue(spec.Value), sanitizePrice(originalPrice))
	case KindFixed:
		return fmt.Sprintf("fixed discount of %.2f", finiteOrZero(spec.Value))
	default:
		return ""
	}
}

// NewQuote clamps spec against originalPrice and prices it.
func NewQuote(spec DiscountSpec, originalPrice float64) Quote {
	price := sanitizePrice(originalPrice)
	clamped := Clamp(spec, price)
	clamped.Kind = ParseDiscountKind(string(clamped.Kind))

	amount := ComputeDiscountAmount(clamped, price)

	var savings float64
	if price > 0 {
		savings = math.Round(amount / price * 100)
	}

	return Quote{
		OriginalPrice:  price,
		Discount:       clamped,
		DiscountAmount: amount,
		FinalPrice:     ComputeFinalPrice(clamped, price),
		SavingsPercent: savings,
		Description:    DescribeDiscount(clamped, price),
	}
}

func clampValue(kind DiscountKind, value, originalPrice float64) float64 {
	value = math.Max(0, finiteOrZero(value))

	switch ParseDiscountKind(string(kind)) {
	case KindPercentage:
		return math.Min(100, value)
	case KindFixed:
		return math.Min(originalPrice, value)
	default:
		return 0
	}
}

func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

func sanitizePrice(p float64) float64 {
	return math.Max(0, finiteOrZero(p))
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func formatValue(v float64) string {
	return strconv.FormatFloat(finiteOrZero(v), 'f', -1, 64)
}
