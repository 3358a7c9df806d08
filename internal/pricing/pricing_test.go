package pricing

import (
	"testing"

	"github.com/bloomstitch/storefront-backend/pkg/config"
)

func defaults() config.ShippingConfig {
	return config.ShippingConfig{Fee: 250, FreeShippingThreshold: 10000}
}

func TestComputeTotalsBelowThreshold(t *testing.T) {
	t.Parallel()

	got := ComputeTotals(9999, defaults())
	if got.Shipping != 250 {
		t.Fatalf("expected shipping 250, got %d", got.Shipping)
	}
	if got.Total != 10249 {
		t.Fatalf("expected total 10249, got %d", got.Total)
	}
}

func TestComputeTotalsAtThreshold(t *testing.T) {
	t.Parallel()

	got := ComputeTotals(10000, defaults())
	if got.Shipping != 0 {
		t.Fatalf("expected free shipping at threshold, got %d", got.Shipping)
	}
	if got.Total != 10000 {
		t.Fatalf("expected total 10000, got %d", got.Total)
	}
}

func TestComputeTotalsTracksCartGrowth(t *testing.T) {
	t.Parallel()

	cfg := defaults()

	before := ComputeTotals(5000, cfg)
	if before.Total != 5250 {
		t.Fatalf("expected total 5250, got %d", before.Total)
	}

	after := ComputeTotals(12000, cfg)
	if after.Shipping != 0 || after.Total != 12000 {
		t.Fatalf("expected free shipping above threshold, got %+v", after)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	t.Parallel()

	got := ComputeTotals(0, defaults())
	if got.Shipping != 250 || got.Total != 250 {
		t.Fatalf("zero subtotal still pays the fee: %+v", got)
	}
}

func TestRemainingForFreeShipping(t *testing.T) {
	t.Parallel()

	cfg := defaults()
	if got := RemainingForFreeShipping(9000, cfg); got != 1000 {
		t.Fatalf("expected 1000 remaining, got %d", got)
	}
	if got := RemainingForFreeShipping(10000, cfg); got != 0 {
		t.Fatalf("expected 0 remaining at threshold, got %d", got)
	}
	if got := RemainingForFreeShipping(15000, cfg); got != 0 {
		t.Fatalf("expected 0 remaining above threshold, got %d", got)
	}
}
