package usecase

import (
	"context"
	"errors"
	"testing"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"
	mock_interfaces "atelier-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingBilling() entities.Billing {
	return entities.Billing{
		ID:             "design-1",
		DesignID:       "design-1",
		InvoiceNo:      "INV-AAAA1111",
		StartingAmount: 1000,
		Status:         entities.BillingStatusPending,
	}
}

func billingDesign() entities.Design {
	return entities.Design{
		ID:         "design-1",
		ClientID:   "client-1",
		DesignerID: "designer-1",
		Status:     entities.DesignStatusApproved,
	}
}

func TestBillingUseCase_Negotiate(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil, nil)
		_, err := uc.Negotiate(context.Background(), "design-1", "client-1", 0)
		if !errors.Is(err, ErrInvalidProposal) {
			t.Fatalf("expected ErrInvalidProposal, got %v", err)
		}
	})

	t.Run("below the floor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)

		// Floor for 1000 is 900; 850 must be rejected.
		_, err := uc.Negotiate(context.Background(), "design-1", "client-1", 850)
		if !errors.Is(err, ErrAmountBelowFloor) {
			t.Fatalf("expected ErrAmountBelowFloor, got %v", err)
		}
	})

	t.Run("exactly at the floor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)
		billings.EXPECT().AppendNegotiation(gomock.Any(), "design-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, designID string, entry entities.NegotiationEntry) (entities.Billing, error) {
				b := pendingBilling()
				b.FinalAmount = entry.Amount
				b.NegotiationHistory = []entities.NegotiationEntry{entry}
				b.NegotiationRounds = 1
				return b, nil
			})

		updated, err := uc.Negotiate(context.Background(), "design-1", "client-1", 900)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.FinalAmount != 900 || updated.NegotiationRounds != 1 {
			t.Fatalf("unexpected billing: %+v", updated)
		}
	})

	t.Run("round limit reached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		b := pendingBilling()
		b.NegotiationRounds = entities.MaxNegotiationRounds
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(b, nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)

		_, err := uc.Negotiate(context.Background(), "design-1", "client-1", 950)
		if !errors.Is(err, ErrNegotiationLimit) {
			t.Fatalf("expected ErrNegotiationLimit, got %v", err)
		}
	})

	t.Run("approved billing is closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		b := pendingBilling()
		b.Status = entities.BillingStatusApproved
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(b, nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)

		_, err := uc.Negotiate(context.Background(), "design-1", "client-1", 950)
		if !errors.Is(err, ErrBillingApproved) {
			t.Fatalf("expected ErrBillingApproved, got %v", err)
		}
	})

	t.Run("losing the write race to an approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)
		billings.EXPECT().AppendNegotiation(gomock.Any(), "design-1", gomock.Any()).
			Return(entities.Billing{}, interfaces.ErrConflict)
		approved := pendingBilling()
		approved.Status = entities.BillingStatusApproved
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(approved, nil)

		_, err := uc.Negotiate(context.Background(), "design-1", "client-1", 950)
		if !errors.Is(err, ErrBillingApproved) {
			t.Fatalf("expected ErrBillingApproved, got %v", err)
		}
	})

	t.Run("losing the write race to the final round", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)
		billings.EXPECT().AppendNegotiation(gomock.Any(), "design-1", gomock.Any()).
			Return(entities.Billing{}, interfaces.ErrConflict)
		exhausted := pendingBilling()
		exhausted.NegotiationRounds = entities.MaxNegotiationRounds
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(exhausted, nil)

		_, err := uc.Negotiate(context.Background(), "design-1", "client-1", 950)
		if !errors.Is(err, ErrNegotiationLimit) {
			t.Fatalf("expected ErrNegotiationLimit, got %v", err)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)

		_, err := uc.Negotiate(context.Background(), "design-1", "client-2", 950)
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})
}

func TestBillingUseCase_Approve(t *testing.T) {
	t.Run("approve without negotiating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)
		billings.EXPECT().UpdateStatus(gomock.Any(), "design-1", entities.BillingStatusApproved).
			DoAndReturn(func(_ context.Context, designID string, status entities.BillingStatus) (entities.Billing, error) {
				b := pendingBilling()
				b.Status = status
				return b, nil
			})

		approved, err := uc.Approve(context.Background(), "design-1", "client-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if approved.Status != entities.BillingStatusApproved {
			t.Fatalf("expected approved, got %s", approved.Status)
		}
		if approved.SettledTotal() != 1000 {
			t.Fatalf("expected settled total 1000, got %v", approved.SettledTotal())
		}
	})

	t.Run("raced approval surfaces as already approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)
		billings.EXPECT().UpdateStatus(gomock.Any(), "design-1", entities.BillingStatusApproved).
			Return(entities.Billing{}, interfaces.ErrConflict)

		_, err := uc.Approve(context.Background(), "design-1", "client-1")
		if !errors.Is(err, ErrBillingApproved) {
			t.Fatalf("expected ErrBillingApproved, got %v", err)
		}
	})

	t.Run("double approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewBillingUseCase(billings, designs, nil, nil)

		b := pendingBilling()
		b.Status = entities.BillingStatusApproved
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(b, nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)

		_, err := uc.Approve(context.Background(), "design-1", "client-1")
		if !errors.Is(err, ErrBillingApproved) {
			t.Fatalf("expected ErrBillingApproved, got %v", err)
		}
	})

	t.Run("gateway failure does not block approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingUseCase(billings, designs, gateway, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(pendingBilling(), nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(billingDesign(), nil)
		billings.EXPECT().UpdateStatus(gomock.Any(), "design-1", entities.BillingStatusApproved).
			DoAndReturn(func(_ context.Context, designID string, status entities.BillingStatus) (entities.Billing, error) {
				b := pendingBilling()
				b.Status = status
				return b, nil
			})
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New("provider down"))

		if _, err := uc.Approve(context.Background(), "design-1", "client-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBillingUseCase_GetByDesignID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil, nil, nil)
		_, err := uc.GetByDesignID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidBillingRef) {
			t.Fatalf("expected ErrInvalidBillingRef, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewBillingUseCase(billings, nil, nil, nil)

		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(entities.Billing{}, nil)

		_, err := uc.GetByDesignID(context.Background(), "design-1")
		if !errors.Is(err, ErrBillingNotFound) {
			t.Fatalf("expected ErrBillingNotFound, got %v", err)
		}
	})
}
