package response

import (
	"testing"
	"time"

	"atelier-service/internal/domain/entities"
)

func TestFromBilling(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Billing{
		ID:                "design-1",
		DesignID:          "design-1",
		InvoiceNo:         "INV-AAAA1111",
		StartingAmount:    1000,
		PrintFee:          800,
		DesignerFee:       200,
		FinalAmount:       950,
		NegotiationRounds: 2,
		AddonsShirtPrice:  300,
		AddonsFee:         40,
		Status:            entities.BillingStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromBilling(b)
	if res.ID != "design-1" || res.InvoiceNo != "INV-AAAA1111" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.RoundsRemaining != 3 {
		t.Fatalf("expected 3 rounds remaining, got %d", res.RoundsRemaining)
	}
	if res.NegotiationFloor != 900 {
		t.Fatalf("expected floor 900, got %v", res.NegotiationFloor)
	}
	// negotiated 950 plus 340 of add-on charges
	if res.SettledTotal != 1290 {
		t.Fatalf("expected settled total 1290, got %v", res.SettledTotal)
	}
	if res.Status != "pending" {
		t.Fatalf("unexpected status: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromBilling_RoundsNeverNegative(t *testing.T) {
	b := entities.Billing{
		ID:                "design-1",
		StartingAmount:    1000,
		NegotiationRounds: entities.MaxNegotiationRounds + 1,
	}

	res := FromBilling(b)
	if res.RoundsRemaining != 0 {
		t.Fatalf("expected 0 rounds remaining, got %d", res.RoundsRemaining)
	}
}
