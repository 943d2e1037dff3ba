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

func pendingAddOn(t entities.AddOnType) entities.AddOnRequest {
	return entities.AddOnRequest{
		ID:            "addon-1",
		DesignID:      "design-1",
		RequesterID:   "client-1",
		RequesterRole: entities.RoleClient,
		Type:          t,
		Status:        entities.AddOnStatusPending,
		Sizes:         []entities.AddOnSize{{Label: "S", Quantity: 2}, {Label: "M", Quantity: 1}},
	}
}

func TestAddOnUseCase_Submit(t *testing.T) {
	t.Run("rejects an unknown type", func(t *testing.T) {
		uc := NewAddOnUseCase(nil, nil, nil, nil, nil, nil)

		_, err := uc.Submit(context.Background(), SubmitAddOnInput{
			DesignID:    "design-1",
			RequesterID: "client-1",
			Type:        entities.AddOnType("embellishment"),
		})
		if !errors.Is(err, ErrInvalidAddOnType) {
			t.Fatalf("expected ErrInvalidAddOnType, got %v", err)
		}
	})

	t.Run("quantity add-on needs size rows", func(t *testing.T) {
		uc := NewAddOnUseCase(nil, nil, nil, nil, nil, nil)

		_, err := uc.Submit(context.Background(), SubmitAddOnInput{
			DesignID:    "design-1",
			RequesterID: "client-1",
			Type:        entities.AddOnTypeQuantity,
		})
		if !errors.Is(err, ErrAddOnSizesRequired) {
			t.Fatalf("expected ErrAddOnSizesRequired, got %v", err)
		}
	})

	t.Run("design add-on pulls the design back in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewAddOnUseCase(addons, designs, nil, nil, nil, nil)

		d := inProgressDesign()
		d.Status = entities.DesignStatusApproved
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(d, nil)
		addons.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.AddOnRequest) (entities.AddOnRequest, error) {
				if a.ID == "" {
					t.Fatalf("expected a generated id")
				}
				if a.Status != entities.AddOnStatusPending {
					t.Fatalf("expected pending status, got %s", a.Status)
				}
				return a, nil
			})
		designs.EXPECT().UpdateStatus(gomock.Any(), "design-1", entities.DesignStatusInProgress).Return(d, nil)

		created, err := uc.Submit(context.Background(), SubmitAddOnInput{
			DesignID:      "design-1",
			RequesterID:   "client-1",
			RequesterRole: entities.RoleClient,
			Type:          entities.AddOnTypeDesign,
			Reason:        "  move the logo  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Reason != "move the logo" {
			t.Fatalf("expected trimmed reason, got %q", created.Reason)
		}
	})

	t.Run("quantity add-on leaves an approved design untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		uc := NewAddOnUseCase(addons, designs, nil, nil, nil, nil)

		d := inProgressDesign()
		d.Status = entities.DesignStatusApproved
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(d, nil)
		addons.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.AddOnRequest) (entities.AddOnRequest, error) {
				return a, nil
			})

		_, err := uc.Submit(context.Background(), SubmitAddOnInput{
			DesignID:    "design-1",
			RequesterID: "client-1",
			Type:        entities.AddOnTypeQuantity,
			Sizes:       []entities.AddOnSize{{Label: "S", Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAddOnUseCase_Approve(t *testing.T) {
	t.Run("design add-on requires a positive fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		uc := NewAddOnUseCase(addons, nil, nil, nil, nil, nil)

		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(pendingAddOn(entities.AddOnTypeDesign), nil)

		_, err := uc.Approve(context.Background(), "addon-1", "admin-1", 0)
		if !errors.Is(err, ErrFeeRequired) {
			t.Fatalf("expected ErrFeeRequired, got %v", err)
		}
	})

	t.Run("settled add-ons cannot be approved again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		uc := NewAddOnUseCase(addons, nil, nil, nil, nil, nil)

		a := pendingAddOn(entities.AddOnTypeDesign)
		a.Status = entities.AddOnStatusDeclined
		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(a, nil)

		_, err := uc.Approve(context.Background(), "addon-1", "admin-1", 100)
		if !errors.Is(err, ErrAddOnNotPending) {
			t.Fatalf("expected ErrAddOnNotPending, got %v", err)
		}
	})

	t.Run("quantity add-on is priced and billed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		requests := mock_interfaces.NewMockIDesignRequestRepository(ctrl)
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewAddOnUseCase(addons, designs, requests, billings, catalog, nil)

		a := pendingAddOn(entities.AddOnTypeQuantity)
		d := inProgressDesign()
		d.Status = entities.DesignStatusCompleted
		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(a, nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(d, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.DesignRequest{ID: "req-1", PrintType: "screen", ShirtTypeName: "crew"}, nil)
		catalog.EXPECT().Snapshot(gomock.Any()).Return(testCatalog(), nil)
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").
			Return(entities.Billing{ID: "design-1", DesignID: "design-1", InvoiceNo: "INV-AAAA1111"}, nil)
		// S:2 + M:1 at 100 each.
		billings.EXPECT().AddAddOnCharges(gomock.Any(), "design-1", 300.0, 40.0).
			Return(entities.Billing{ID: "design-1"}, nil)
		addons.EXPECT().UpdateDecision(gomock.Any(), "addon-1", entities.AddOnStatusApproved, 40.0, 300.0, "").
			DoAndReturn(func(_ context.Context, id string, status entities.AddOnStatus, fee, price float64, _ string) (entities.AddOnRequest, error) {
				a.Status = status
				a.Fee = fee
				a.Price = price
				return a, nil
			})
		designs.EXPECT().UpdateStatus(gomock.Any(), "design-1", entities.DesignStatusInProduction).Return(d, nil)

		updated, err := uc.Approve(context.Background(), "addon-1", "admin-1", 40)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.AddOnStatusApproved {
			t.Fatalf("expected approved, got %s", updated.Status)
		}
		if updated.Price != 300 {
			t.Fatalf("expected quantity price 300, got %v", updated.Price)
		}
	})

	t.Run("a raced decision never charges the billing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewAddOnUseCase(addons, designs, nil, billings, nil, nil)

		a := pendingAddOn(entities.AddOnTypeDesign)
		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(a, nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(inProgressDesign(), nil)
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").
			Return(entities.Billing{ID: "design-1", DesignID: "design-1", InvoiceNo: "INV-AAAA1111"}, nil)
		// The add-on was declined between the read and the decision write.
		// AddAddOnCharges has no expectation on purpose: calling it here fails
		// the test.
		addons.EXPECT().UpdateDecision(gomock.Any(), "addon-1", entities.AddOnStatusApproved, 120.0, 0.0, "").
			Return(entities.AddOnRequest{}, interfaces.ErrConflict)

		_, err := uc.Approve(context.Background(), "addon-1", "admin-1", 120)
		if !errors.Is(err, ErrAddOnNotPending) {
			t.Fatalf("expected ErrAddOnNotPending, got %v", err)
		}
	})

	t.Run("approval fails when the billing is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		designs := mock_interfaces.NewMockIDesignRepository(ctrl)
		billings := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewAddOnUseCase(addons, designs, nil, billings, nil, nil)

		a := pendingAddOn(entities.AddOnTypeDesign)
		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(a, nil)
		designs.EXPECT().GetByID(gomock.Any(), "design-1").Return(inProgressDesign(), nil)
		billings.EXPECT().GetByDesignID(gomock.Any(), "design-1").Return(entities.Billing{}, nil)

		_, err := uc.Approve(context.Background(), "addon-1", "admin-1", 120)
		if !errors.Is(err, ErrBillingNotFound) {
			t.Fatalf("expected ErrBillingNotFound, got %v", err)
		}
	})
}

func TestAddOnUseCase_Decline(t *testing.T) {
	t.Run("reason is required before anything is read", func(t *testing.T) {
		uc := NewAddOnUseCase(nil, nil, nil, nil, nil, nil)

		_, err := uc.Decline(context.Background(), "addon-1", "admin-1", "   ")
		if !errors.Is(err, ErrDeclineReasonRequired) {
			t.Fatalf("expected ErrDeclineReasonRequired, got %v", err)
		}
	})

	t.Run("declines a pending add-on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		uc := NewAddOnUseCase(addons, nil, nil, nil, nil, nil)

		a := pendingAddOn(entities.AddOnTypeDesign)
		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(a, nil)
		addons.EXPECT().UpdateDecision(gomock.Any(), "addon-1", entities.AddOnStatusDeclined, 0.0, 0.0, "out of fabric").
			DoAndReturn(func(_ context.Context, id string, status entities.AddOnStatus, _, _ float64, reason string) (entities.AddOnRequest, error) {
				a.Status = status
				a.DeclineReason = reason
				return a, nil
			})

		updated, err := uc.Decline(context.Background(), "addon-1", "admin-1", "out of fabric")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.AddOnStatusDeclined {
			t.Fatalf("expected declined, got %s", updated.Status)
		}
	})
}

func TestAddOnUseCase_Cancel(t *testing.T) {
	t.Run("only the requester may cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		uc := NewAddOnUseCase(addons, nil, nil, nil, nil, nil)

		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(pendingAddOn(entities.AddOnTypeDesign), nil)

		_, err := uc.Cancel(context.Background(), "addon-1", "client-2")
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("cancels a pending add-on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addons := mock_interfaces.NewMockIAddOnRepository(ctrl)
		uc := NewAddOnUseCase(addons, nil, nil, nil, nil, nil)

		a := pendingAddOn(entities.AddOnTypeQuantity)
		addons.EXPECT().GetByID(gomock.Any(), "addon-1").Return(a, nil)
		addons.EXPECT().UpdateDecision(gomock.Any(), "addon-1", entities.AddOnStatusCancelled, 0.0, 0.0, "").
			DoAndReturn(func(_ context.Context, id string, status entities.AddOnStatus, _, _ float64, _ string) (entities.AddOnRequest, error) {
				a.Status = status
				return a, nil
			})

		updated, err := uc.Cancel(context.Background(), "addon-1", "client-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.AddOnStatusCancelled {
			t.Fatalf("expected cancelled, got %s", updated.Status)
		}
	})
}
