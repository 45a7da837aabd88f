package usecase

// CakeQuoteInput represents the input for a custom cake price quote.
type CakeQuoteInput struct {
	Complexity    string  `json:"complexity"`     // design tier, "" means not selected
	RealCakeKg    float64 `json:"real_cake_kg"`   // weight of the real cake
	DummyCakeKg   float64 `json:"dummy_cake_kg"`  // weight of the styrofoam dummy tier
	FlavorCharge  bool    `json:"flavor_charge"`  // premium flavor surcharge per real kg
	ToyComplexity string  `json:"toy_complexity"` // topper tier, "" means none
	ToyQuantity   int     `json:"toy_quantity"`
	ApplyDiscount bool    `json:"apply_discount"` // 10% off the overall price
}

// CakeQuote is an itemized price quote in AED.
type CakeQuote struct {
	BasePricePerKg float64 `json:"base_price_per_kg"`
	RealCakePrice  float64 `json:"real_cake_price"`
	DummyCakePrice float64 `json:"dummy_cake_price"`
	FlavorCharge   float64 `json:"flavor_charge"`
	ToyPrice       float64 `json:"toy_price"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

// PricingUsecase produces cake price quotes. Quoting is pure arithmetic
// over configured tier tables; it performs no I/O.
type PricingUsecase interface {
	QuoteCake(input *CakeQuoteInput) (*CakeQuote, error)
}
