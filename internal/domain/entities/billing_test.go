package entities

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBillingSettledTotal(t *testing.T) {
	t.Run("add-on charges stack on the starting amount when never negotiated", func(t *testing.T) {
		b := Billing{
			StartingAmount:   2000,
			AddonsShirtPrice: 300,
			AddonsFee:        0,
		}
		if !approxEqual(b.BaseAmount(), 2000) {
			t.Fatalf("expected base amount 2000, got %v", b.BaseAmount())
		}
		if !approxEqual(b.SettledTotal(), 2300) {
			t.Fatalf("expected settled total 2300, got %v", b.SettledTotal())
		}
	})

	t.Run("negotiated amount replaces the starting amount once", func(t *testing.T) {
		b := Billing{
			StartingAmount:   2000,
			FinalAmount:      1850,
			AddonsShirtPrice: 300,
			AddonsFee:        40,
		}
		if !approxEqual(b.SettledTotal(), 2190) {
			t.Fatalf("expected settled total 2190, got %v", b.SettledTotal())
		}
	})

	t.Run("no add-ons and no negotiation settles at the starting amount", func(t *testing.T) {
		b := Billing{StartingAmount: 1200}
		if !approxEqual(b.SettledTotal(), 1200) {
			t.Fatalf("expected settled total 1200, got %v", b.SettledTotal())
		}
	})
}

func TestBillingNegotiationFloor(t *testing.T) {
	b := Billing{StartingAmount: 1000, FinalAmount: 950}
	if !approxEqual(b.NegotiationFloor(), 900) {
		t.Fatalf("expected floor 900, got %v", b.NegotiationFloor())
	}
}
