package impl

import (
	"testing"

	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingService_QuoteCake_RealCakeOnly(t *testing.T) {
	svc := NewPricingService()

	quote, err := svc.QuoteCake(&usecase.CakeQuoteInput{
		Complexity: "Design by Cream Easy",
		RealCakeKg: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 126.00, quote.BasePricePerKg)
	assert.Equal(t, 252.00, quote.RealCakePrice)
	assert.Equal(t, 0.0, quote.DummyCakePrice)
	assert.Equal(t, 252.00, quote.Subtotal)
	assert.Equal(t, 252.00, quote.Total)
}

func TestPricingService_QuoteCake_DummyTierHalfRate(t *testing.T) {
	svc := NewPricingService()

	quote, err := svc.QuoteCake(&usecase.CakeQuoteInput{
		Complexity:  "Sugarpaste Medium",
		RealCakeKg:  1,
		DummyCakeKg: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 183.75, quote.BasePricePerKg)
	assert.Equal(t, 183.75, quote.RealCakePrice)
	assert.InDelta(t, 183.75, quote.DummyCakePrice, 1e-9)
	assert.InDelta(t, 367.50, quote.Total, 1e-9)
}

func TestPricingService_QuoteCake_FlavorChargeOnRealWeightOnly(t *testing.T) {
	svc := NewPricingService()

	quote, err := svc.QuoteCake(&usecase.CakeQuoteInput{
		Complexity:   "Design by Cream Medium",
		RealCakeKg:   3,
		DummyCakeKg:  2,
		FlavorCharge: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 63.00, quote.FlavorCharge)
	assert.InDelta(t, 3*147.00+2*73.50+63.00, quote.Subtotal, 1e-9)
}

func TestPricingService_QuoteCake_ToysAndDiscount(t *testing.T) {
	svc := NewPricingService()

	quote, err := svc.QuoteCake(&usecase.CakeQuoteInput{
		Complexity:    "Sugarpaste VIP",
		RealCakeKg:    1,
		ToyComplexity: "Hard",
		ToyQuantity:   2,
		ApplyDiscount: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 168.00, quote.ToyPrice)
	subtotal := 246.75 + 168.00
	assert.InDelta(t, subtotal, quote.Subtotal, 1e-9)
	assert.InDelta(t, subtotal*0.10, quote.DiscountAmount, 1e-9)
	assert.InDelta(t, subtotal*0.90, quote.Total, 1e-9)
}

func TestPricingService_QuoteCake_ToyPriceScalesWithQuantity(t *testing.T) {
	svc := NewPricingService()

	tests := []struct {
		name     string
		quantity int
		want     float64
	}{
		{name: "zero quantity costs nothing", quantity: 0, want: 0},
		{name: "single toy", quantity: 1, want: 26.25},
		{name: "three toys", quantity: 3, want: 78.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.QuoteCake(&usecase.CakeQuoteInput{
				ToyComplexity: "Easy",
				ToyQuantity:   tt.quantity,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, quote.ToyPrice)
			assert.Equal(t, tt.want, quote.Total)
		})
	}
}

func TestPricingService_QuoteCake_TierNameNormalized(t *testing.T) {
	svc := NewPricingService()

	quote, err := svc.QuoteCake(&usecase.CakeQuoteInput{
		Complexity: "  SUGARPASTE   Super Hard!  ",
		RealCakeKg: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 225.75, quote.BasePricePerKg)
}

func TestPricingService_QuoteCake_DesignByPrefixOptional(t *testing.T) {
	svc := NewPricingService()

	tests := []struct {
		name       string
		complexity string
		want       float64
	}{
		{name: "cream with prefix", complexity: "Design by Cream Easy", want: 126.00},
		{name: "cream without prefix", complexity: "Cream Easy", want: 126.00},
		{name: "sugarpaste with prefix", complexity: "Design by Sugarpaste VIP", want: 246.75},
		{name: "sugarpaste without prefix", complexity: "Sugarpaste VIP", want: 246.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.QuoteCake(&usecase.CakeQuoteInput{
				Complexity: tt.complexity,
				RealCakeKg: 1,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.BasePricePerKg)
		})
	}
}

func TestPricingService_QuoteCake_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CakeQuoteInput
	}{
		{
			name:  "unknown design tier",
			input: &usecase.CakeQuoteInput{Complexity: "impossible", RealCakeKg: 1},
		},
		{
			name:  "weight without tier",
			input: &usecase.CakeQuoteInput{RealCakeKg: 1},
		},
		{
			name:  "unknown toy tier",
			input: &usecase.CakeQuoteInput{ToyComplexity: "diamond"},
		},
		{
			name:  "negative weight",
			input: &usecase.CakeQuoteInput{Complexity: "Design by Cream Easy", RealCakeKg: -1},
		},
		{
			name:  "negative toy quantity",
			input: &usecase.CakeQuoteInput{ToyComplexity: "Easy", ToyQuantity: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPricingService()

			quote, err := svc.QuoteCake(tt.input)
			require.Error(t, err)
			assert.Nil(t, quote)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
