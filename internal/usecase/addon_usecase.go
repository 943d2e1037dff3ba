package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAddOnNotFound         = errors.New("add-on request not found")
	ErrInvalidAddOnID        = errors.New("invalid add-on id")
	ErrInvalidAddOnType      = errors.New("invalid add-on type")
	ErrAddOnNotPending       = errors.New("add-on request is not pending")
	ErrDeclineReasonRequired = errors.New("decline reason is required")
	ErrFeeRequired           = errors.New("a fee > 0 is required for a design add-on")
	ErrAddOnSizesRequired    = errors.New("size rows are required for a quantity add-on")
)

// SubmitAddOnInput carries a post-approval change request.
type SubmitAddOnInput struct {
	DesignID      string
	RequesterID   string
	RequesterRole entities.UserRole
	Type          entities.AddOnType
	Reason        string
	Sizes         []entities.AddOnSize
	ImageHandles  []string
}

// IAddOnUseCase exposes the post-approval change request flow. Approved
// add-ons are the only path that grows a finalized billing.

type IAddOnUseCase interface {
	Submit(ctx context.Context, in SubmitAddOnInput) (entities.AddOnRequest, error)
	Approve(ctx context.Context, addOnID, adminID string, fee float64) (entities.AddOnRequest, error)
	Decline(ctx context.Context, addOnID, adminID, reason string) (entities.AddOnRequest, error)
	Cancel(ctx context.Context, addOnID, requesterID string) (entities.AddOnRequest, error)
	GetByID(ctx context.Context, id string) (entities.AddOnRequest, error)
	ListByDesign(ctx context.Context, designID string) ([]entities.AddOnRequest, error)
}

type AddOnUseCase struct {
	addons     interfaces.IAddOnRepository
	designs    interfaces.IDesignRepository
	requests   interfaces.IDesignRequestRepository
	billings   interfaces.IBillingRepository
	catalog    interfaces.ICatalogRepository
	dispatcher *Dispatcher
	now        func() time.Time
}

var _ IAddOnUseCase = (*AddOnUseCase)(nil)

func NewAddOnUseCase(addons interfaces.IAddOnRepository, designs interfaces.IDesignRepository, requests interfaces.IDesignRequestRepository, billings interfaces.IBillingRepository, catalog interfaces.ICatalogRepository, dispatcher *Dispatcher) *AddOnUseCase {
	return &AddOnUseCase{
		addons:     addons,
		designs:    designs,
		requests:   requests,
		billings:   billings,
		catalog:    catalog,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (u *AddOnUseCase) Submit(ctx context.Context, in SubmitAddOnInput) (entities.AddOnRequest, error) {
	in.DesignID = strings.TrimSpace(in.DesignID)
	in.RequesterID = strings.TrimSpace(in.RequesterID)
	if in.DesignID == "" || in.RequesterID == "" {
		return entities.AddOnRequest{}, ErrInvalidAddOnID
	}
	if !in.Type.Valid() {
		return entities.AddOnRequest{}, ErrInvalidAddOnType
	}
	if in.Type.HasQuantity() && len(in.Sizes) == 0 {
		return entities.AddOnRequest{}, ErrAddOnSizesRequired
	}
	for _, s := range in.Sizes {
		if s.Quantity <= 0 {
			return entities.AddOnRequest{}, ErrInvalidQuantity
		}
	}

	design, err := u.designs.GetByID(ctx, in.DesignID)
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if design.ID == "" {
		return entities.AddOnRequest{}, ErrDesignNotFound
	}

	now := u.now().UTC()
	addon := entities.AddOnRequest{
		ID:            uuid.NewString(),
		DesignID:      design.ID,
		RequesterID:   in.RequesterID,
		RequesterRole: in.RequesterRole,
		Type:          in.Type,
		Reason:        strings.TrimSpace(in.Reason),
		Fee:           0,
		Price:         0,
		Status:        entities.AddOnStatusPending,
		Sizes:         in.Sizes,
		ImageHandles:  in.ImageHandles,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.addons.Create(ctx, addon)
	if err != nil {
		return entities.AddOnRequest{}, err
	}

	if next := ApplyAddOnStatus(design.Status, in.Type); next != design.Status {
		if _, err := u.designs.UpdateStatus(ctx, design.ID, next); err != nil {
			return entities.AddOnRequest{}, err
		}
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyAll(entities.RoleAdmin, "New add-on request",
			fmt.Sprintf("Add-on request %s (%s) was submitted for design %s.", created.ID, created.Type, design.ID), "addon_submitted"),
		Audit(in.RequesterID, in.RequesterRole, "submit_addon", "create", created.ID, "addon_request", string(created.Type)),
	})
	return created, nil
}

// Approve settles a pending add-on: the admin fee plus the recomputed
// quantity price flow into the billing totals, then the design status is
// adjusted for the extra work.
func (u *AddOnUseCase) Approve(ctx context.Context, addOnID, adminID string, fee float64) (entities.AddOnRequest, error) {
	addon, err := u.GetByID(ctx, addOnID)
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if addon.Status.IsTerminal() {
		return entities.AddOnRequest{}, ErrAddOnNotPending
	}
	// A pure design add-on has no quantity component to price, so the admin
	// fee is the whole cost and must be positive.
	if addon.Type == entities.AddOnTypeDesign && fee <= 0 {
		return entities.AddOnRequest{}, ErrFeeRequired
	}
	if fee < 0 {
		return entities.AddOnRequest{}, ErrFeeRequired
	}

	design, err := u.designs.GetByID(ctx, addon.DesignID)
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if design.ID == "" {
		return entities.AddOnRequest{}, ErrDesignNotFound
	}

	quantityPrice := 0.0
	if addon.Type.HasQuantity() {
		req, err := u.requests.GetByID(ctx, design.RequestID)
		if err != nil {
			return entities.AddOnRequest{}, err
		}
		if req.ID == "" {
			return entities.AddOnRequest{}, ErrRequestNotFound
		}
		catalog, err := u.catalog.Snapshot(ctx)
		if err != nil {
			return entities.AddOnRequest{}, err
		}
		quantityPrice, err = PriceAddOnSizes(req.PrintType, addon.Sizes, catalog)
		if err != nil {
			return entities.AddOnRequest{}, err
		}
	}

	billing, err := u.billings.GetByDesignID(ctx, addon.DesignID)
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if billing.ID == "" {
		return entities.AddOnRequest{}, ErrBillingNotFound
	}

	// The decision lands before any money moves: a raced decline or cancel
	// fails the conditional write here and the billing is never charged.
	updated, err := u.addons.UpdateDecision(ctx, addon.ID, entities.AddOnStatusApproved, fee, quantityPrice, "")
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.AddOnRequest{}, ErrAddOnNotPending
		}
		return entities.AddOnRequest{}, err
	}

	if _, err := u.billings.AddAddOnCharges(ctx, addon.DesignID, quantityPrice, fee); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.AddOnRequest{}, ErrBillingNotFound
		}
		return entities.AddOnRequest{}, err
	}

	if next := ApplyAddOnStatus(design.Status, addon.Type); next != design.Status {
		if _, err := u.designs.UpdateStatus(ctx, design.ID, next); err != nil {
			return entities.AddOnRequest{}, err
		}
	}

	total := quantityPrice + fee
	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(design.ClientID, entities.RoleClient, "Add-on approved",
			fmt.Sprintf("Your add-on request was approved; %.2f was added to invoice %s.", total, billing.InvoiceNo), "addon_approved"),
		NotifyUser(design.DesignerID, entities.RoleDesigner, "Add-on approved",
			fmt.Sprintf("Add-on %s on design %s was approved.", addon.ID, design.ID), "addon_approved"),
		Audit(adminID, entities.RoleAdmin, "approve_addon", "update", addon.ID, "addon_request",
			fmt.Sprintf("fee %.2f, quantity price %.2f", fee, quantityPrice)),
		Audit(design.ClientID, entities.RoleClient, "addon_approved", "update", addon.ID, "addon_request", ""),
	})
	return updated, nil
}

// Decline requires a reason before any record is touched.
func (u *AddOnUseCase) Decline(ctx context.Context, addOnID, adminID, reason string) (entities.AddOnRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.AddOnRequest{}, ErrDeclineReasonRequired
	}

	addon, err := u.GetByID(ctx, addOnID)
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if addon.Status.IsTerminal() {
		return entities.AddOnRequest{}, ErrAddOnNotPending
	}

	updated, err := u.addons.UpdateDecision(ctx, addon.ID, entities.AddOnStatusDeclined, 0, 0, reason)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.AddOnRequest{}, ErrAddOnNotPending
		}
		return entities.AddOnRequest{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(addon.RequesterID, addon.RequesterRole, "Add-on declined", reason, "addon_declined"),
		Audit(adminID, entities.RoleAdmin, "decline_addon", "update", addon.ID, "addon_request", reason),
	})
	return updated, nil
}

func (u *AddOnUseCase) Cancel(ctx context.Context, addOnID, requesterID string) (entities.AddOnRequest, error) {
	addon, err := u.GetByID(ctx, addOnID)
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if addon.RequesterID != strings.TrimSpace(requesterID) {
		return entities.AddOnRequest{}, ErrNotOwner
	}
	if addon.Status.IsTerminal() {
		return entities.AddOnRequest{}, ErrAddOnNotPending
	}

	updated, err := u.addons.UpdateDecision(ctx, addon.ID, entities.AddOnStatusCancelled, 0, 0, "")
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.AddOnRequest{}, ErrAddOnNotPending
		}
		return entities.AddOnRequest{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		Audit(addon.RequesterID, addon.RequesterRole, "cancel_addon", "update", addon.ID, "addon_request", ""),
	})
	return updated, nil
}

func (u *AddOnUseCase) GetByID(ctx context.Context, id string) (entities.AddOnRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AddOnRequest{}, ErrInvalidAddOnID
	}
	a, err := u.addons.GetByID(ctx, id)
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if a.ID == "" {
		return entities.AddOnRequest{}, ErrAddOnNotFound
	}
	return a, nil
}

func (u *AddOnUseCase) ListByDesign(ctx context.Context, designID string) ([]entities.AddOnRequest, error) {
	designID = strings.TrimSpace(designID)
	if designID == "" {
		return nil, ErrInvalidAddOnID
	}
	return u.addons.ListByDesignID(ctx, designID)
}
