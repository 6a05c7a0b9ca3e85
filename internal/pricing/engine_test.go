package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDiscountKind(t *testing.T) {
	tests := []struct {
		in   string
		want DiscountKind
	}{
		{"none", KindNone},
		{"NONE", KindNone},
		{"percentage", KindPercentage},
		{" Percentage ", KindPercentage},
		{"FIXED", KindFixed},
		{"", KindNone},
		{"bogus", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDiscountKind(tt.in))
		})
	}

	assert.True(t, IsValidDiscountKind("Fixed"))
	assert.False(t, IsValidDiscountKind("bogus"))
	assert.Equal(t, "percentage", DiscountKind("PERCENTAGE").String())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.0, Round2(32.9967))
	assert.Equal(t, 1.01, Round2(1.005000001))
	assert.Equal(t, -1.5, Round2(-1.499999))
	assert.Equal(t, 0.0, Round2(0.004))
}

func TestSetDiscountKind(t *testing.T) {
	tests := []struct {
		name    string
		current DiscountSpec
		kind    DiscountKind
		want    DiscountSpec
	}{
		{
			name:    "none resets value",
			current: DiscountSpec{Kind: KindFixed, Value: 80},
			kind:    KindNone,
			want:    DiscountSpec{Kind: KindNone, Value: 0},
		},
		{
			name:    "fixed to percentage keeps value",
			current: DiscountSpec{Kind: KindFixed, Value: 80},
			kind:    KindPercentage,
			want:    DiscountSpec{Kind: KindPercentage, Value: 80},
		},
		{
			name:    "none to fixed keeps zero",
			current: None(),
			kind:    KindFixed,
			want:    DiscountSpec{Kind: KindFixed, Value: 0},
		},
		{
			name:    "unknown kind behaves as none",
			current: DiscountSpec{Kind: KindPercentage, Value: 10},
			kind:    DiscountKind("weird"),
			want:    DiscountSpec{Kind: KindNone, Value: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetDiscountKind(tt.current, tt.kind))
		})
	}
}

func TestSetDiscountValue(t *testing.T) {
	percentage := DiscountSpec{Kind: KindPercentage}
	fixed := DiscountSpec{Kind: KindFixed}
	none := None()

	tests := []struct {
		name  string
		spec  DiscountSpec
		raw   string
		price float64
		want  float64
	}{
		{"percentage above 100 clamps to 100", percentage, "150", 200, 100},
		{"fixed above price clamps to price", fixed, "9999", 200, 200},
		{"negative percentage clamps to zero", percentage, "-5", 200, 0},
		{"negative fixed clamps to zero", fixed, "-5", 200, 0},
		{"non numeric is zero", percentage, "abc", 200, 0},
		{"empty is zero", fixed, "", 200, 0},
		{"infinity is zero", fixed, "Inf", 200, 0},
		{"nan is zero", percentage, "NaN", 200, 0},
		{"none ignores input", none, "42", 200, 0},
		{"decimal fixed value", fixed, " 12.5 ", 200, 12.5},
		{"fixed against negative price clamps to zero", fixed, "10", -20, 0},
		{"percentage within range", percentage, "20", 150, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetDiscountValue(tt.spec, tt.raw, tt.price)
			assert.Equal(t, tt.spec.Kind, got.Kind)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestComputeDiscountAmountAndFinalPrice(t *testing.T) {
	tests := []struct {
		name         string
		spec         DiscountSpec
		price        float64
		wantDiscount float64
		wantFinal    float64
	}{
		{"percentage 20 of 150", DiscountSpec{Kind: KindPercentage, Value: 20}, 150, 30, 120},
		{"fixed 40 of 150", DiscountSpec{Kind: KindFixed, Value: 40}, 150, 40, 110},
		{"none on 150", None(), 150, 0, 150},
		{"percentage 33 of 99.99 rounds", DiscountSpec{Kind: KindPercentage, Value: 33}, 99.99, 33, 66.99},
		{"full percentage", DiscountSpec{Kind: KindPercentage, Value: 100}, 200, 200, 0},
		{"full fixed", DiscountSpec{Kind: KindFixed, Value: 200}, 200, 200, 0},
		{"none with stale value", DiscountSpec{Kind: KindNone, Value: 55}, 100, 0, 100},
		{"unclamped fixed is bounded by price", DiscountSpec{Kind: KindFixed, Value: 500}, 100, 100, 0},
		{"negative value is bounded at zero", DiscountSpec{Kind: KindFixed, Value: -3}, 100, 0, 100},
		{"zero price", DiscountSpec{Kind: KindPercentage, Value: 50}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantDiscount, ComputeDiscountAmount(tt.spec, tt.price), 1e-9)
			assert.InDelta(t, tt.wantFinal, ComputeFinalPrice(tt.spec, tt.price), 1e-9)
		})
	}
}

func TestDescribeDiscount(t *testing.T) {
	assert.Empty(t, DescribeDiscount(None(), 150))
	assert.Equal(t, "20% of 150.00", DescribeDiscount(DiscountSpec{Kind: KindPercentage, Value: 20}, 150))
	assert.Equal(t, "12.5% of 99.99", DescribeDiscount(DiscountSpec{Kind: KindPercentage, Value: 12.5}, 99.99))
	assert.Equal(t, "fixed discount of 40.00", DescribeDiscount(DiscountSpec{Kind: KindFixed, Value: 40}, 150))
}

func TestNewQuote(t *testing.T) {
	t.Run("clamps before pricing", func(t *testing.T) {
		q := NewQuote(DiscountSpec{Kind: KindFixed, Value: 9999}, 200)
		assert.Equal(t, DiscountSpec{Kind: KindFixed, Value: 200}, q.Discount)
		assert.Equal(t, 200.0, q.DiscountAmount)
		assert.Equal(t, 0.0, q.FinalPrice)
		assert.Equal(t, 100.0, q.SavingsPercent)
	})

	t.Run("normalises kind casing", func(t *testing.T) {
		q := NewQuote(DiscountSpec{Kind: "PERCENTAGE", Value: 20}, 150)
		assert.Equal(t, KindPercentage, q.Discount.Kind)
		assert.Equal(t, 30.0, q.DiscountAmount)
		assert.Equal(t, 120.0, q.FinalPrice)
		assert.Equal(t, 20.0, q.SavingsPercent)
		assert.Equal(t, "20% of 150.00", q.Description)
	})

	t.Run("no savings on zero price", func(t *testing.T) {
		q := NewQuote(DiscountSpec{Kind: KindPercentage, Value: 20}, 0)
		assert.Zero(t, q.SavingsPercent)
		assert.Zero(t, q.FinalPrice)
	})

	t.Run("non finite price is zero", func(t *testing.T) {
		q := NewQuote(DiscountSpec{Kind: KindFixed, Value: 10}, math.NaN())
		assert.Zero(t, q.OriginalPrice)
		assert.Zero(t, q.DiscountAmount)
	})
}

func TestKindSwitchScenario(t *testing.T) {
	spec := DiscountSpec{Kind: KindFixed, Value: 80}

	spec = SetDiscountKind(spec, KindPercentage)
	assert.Equal(t, 80.0, spec.Value)

	spec = Clamp(spec, 100)
	assert.Equal(t, 80.0, spec.Value)
	assert.Equal(t, 80.0, ComputeDiscountAmount(spec, 100))

	spec = SetDiscountKind(spec, KindNone)
	assert.Equal(t, DiscountSpec{Kind: KindNone}, spec)
}

// reachableSpecs builds specs the way a form would: through the setters only.
func reachableSpecs(price float64) []DiscountSpec {
	inputs := []string{"", "abc", "-10", "0", "0.5", "1", "12.34", "33", "50", "99.999", "100", "150", "1e6"}
	kinds := []DiscountKind{KindNone, KindPercentage, KindFixed}

	specs := make([]DiscountSpec, 0, len(inputs)*len(kinds))
	for _, k := range kinds {
		for _, in := range inputs {
			specs = append(specs, SetDiscountValue(SetDiscountKind(None(), k), in, price))
		}
	}
	return specs
}

func TestInvariants(t *testing.T) {
	prices := []float64{0, 0.01, 1, 9.99, 99.99, 150, 200, 1234.56}

	for _, price := range prices {
		for _, spec := range reachableSpecs(price) {
			discount := ComputeDiscountAmount(spec, price)
			final := ComputeFinalPrice(spec, price)

			assert.GreaterOrEqual(t, discount, 0.0)
			assert.LessOrEqual(t, discount, price)

			if diff := price - discount; diff >= 0 {
				assert.InDelta(t, diff, final, 0.005)
			} else {
				assert.Zero(t, final)
			}
			assert.GreaterOrEqual(t, final, 0.0)
			assert.LessOrEqual(t, final, price)
		}
	}

	for _, p := range prices {
		assert.Zero(t, ComputeDiscountAmount(DiscountSpec{Kind: KindNone, Value: 1e9}, p))
	}
}

func TestSetDiscountValueIdempotent(t *testing.T) {
	inputs := []string{"abc", "-5", "0", "20", "150", "9999", "33.333"}
	kinds := []DiscountKind{KindNone, KindPercentage, KindFixed}

	for _, k := range kinds {
		for _, in := range inputs {
			s := DiscountSpec{Kind: k, Value: 7}
			once := SetDiscountValue(s, in, 200)
			twice := SetDiscountValue(once, in, 200)
			assert.Equal(t, once, twice, "kind=%s input=%s", k, in)
			assert.Equal(t, once, Clamp(once, 200))
		}
	}
}

func TestPercentageMonotonic(t *testing.T) {
	for _, price := range []float64{0.01, 9.99, 150, 1234.56} {
		prev := -1.0
		for v := 0.0; v <= 100; v += 0.5 {
			amount := ComputeDiscountAmount(DiscountSpec{Kind: KindPercentage, Value: v}, price)
			assert.GreaterOrEqual(t, amount, prev, "price=%v value=%v", price, v)
			prev = amount
		}
	}
}
