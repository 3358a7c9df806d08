package pricing

import "github.com/bloomstitch/storefront-backend/pkg/config"

// Totals breaks an order amount into its displayed parts. All values are
// whole rupees.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
}

// ComputeTotals applies the flat-fee shipping rule: the fee is waived once
// the subtotal reaches the free-shipping threshold.
func ComputeTotals(subtotal int, cfg config.ShippingConfig) Totals {
	shipping := 0
	if subtotal < cfg.FreeShippingThreshold {
		shipping = cfg.Fee
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// RemainingForFreeShipping returns how much more must be spent before the fee
// is waived, or zero once the threshold is met.
func RemainingForFreeShipping(subtotal int, cfg config.ShippingConfig) int {
	if subtotal >= cfg.FreeShippingThreshold {
		return 0
	}
	return cfg.FreeShippingThreshold - subtotal
}
