package impl

import (
	"strings"

	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/normalize"
	"bakehouse/internal/usecase"
)

// Price tables in AED, keyed by normalized tier name. The "design by"
// marketing prefix is stripped before lookup so labels work with or
// without it.
var (
	cakeTierPrices = map[string]float64{
		"cream easy":            126.00,
		"cream medium":          147.00,
		"cream hard":            157.50,
		"cream super hard":      183.75,
		"sugarpaste medium":     183.75,
		"sugarpaste hard":       204.75,
		"sugarpaste super hard": 225.75,
		"sugarpaste vip":        246.75,
	}

	toyTierPrices = map[string]float64{
		"easy":   26.25,
		"medium": 52.50,
		"hard":   84.00,
	}
)

// flavorChargePerKg is the premium flavor surcharge, applied per real kg.
const flavorChargePerKg = 21.00

// discountRate is the flat promotional discount.
const discountRate = 0.10

type pricingService struct{}

// NewPricingService creates a new cake quote service instance.
func NewPricingService() usecase.PricingUsecase {
	return &pricingService{}
}

// QuoteCake computes an itemized quote. The dummy tier is billed at half the
// base rate, and the flavor surcharge applies to real cake weight only.
func (s *pricingService) QuoteCake(input *usecase.CakeQuoteInput) (*usecase.CakeQuote, error) {
	if input.RealCakeKg < 0 || input.DummyCakeKg < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cake weight must not be negative")
	}
	if input.ToyQuantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("toy quantity must not be negative")
	}

	quote := &usecase.CakeQuote{}

	if tier := normalize.Key(input.Complexity); tier != "" {
		base, ok := cakeTierPrices[strings.TrimPrefix(tier, "design by ")]
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown design complexity")
		}

		quote.BasePricePerKg = base
		quote.RealCakePrice = base * input.RealCakeKg
		quote.DummyCakePrice = base / 2 * input.DummyCakeKg
	} else if input.RealCakeKg > 0 || input.DummyCakeKg > 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("design complexity is required when a weight is given")
	}

	if input.FlavorCharge {
		quote.FlavorCharge = flavorChargePerKg * input.RealCakeKg
	}

	if tier := normalize.Key(input.ToyComplexity); tier != "" {
		price, ok := toyTierPrices[tier]
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown toy complexity")
		}

		quote.ToyPrice = price * float64(input.ToyQuantity)
	}

	quote.Subtotal = quote.RealCakePrice + quote.DummyCakePrice + quote.FlavorCharge + quote.ToyPrice
	if input.ApplyDiscount {
		quote.DiscountAmount = quote.Subtotal * discountRate
	}
	quote.Total = quote.Subtotal - quote.DiscountAmount

	return quote, nil
}
