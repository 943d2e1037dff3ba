package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDesignNotFound     = errors.New("design not found")
	ErrInvalidDesignID    = errors.New("invalid design id")
	ErrRevisionInProgress = errors.New("revision already in progress")
	ErrInvalidDesignState = errors.New("design state does not permit this operation")
	ErrNotAssignee        = errors.New("actor is not the assigned designer")
	ErrEmptyComment       = errors.New("comment body is required")
)

// IDesignUseCase exposes the design progress, revision and production
// state machine, plus the approval that seeds billing.

type IDesignUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Design, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Design, error)
	ListByDesigner(ctx context.Context, designerID string) ([]entities.Design, error)

	PostPreview(ctx context.Context, designID, designerID, imageHandle, note string) (entities.Preview, error)
	ListPreviews(ctx context.Context, designID string) ([]entities.Preview, error)
	PostComment(ctx context.Context, designID, authorID string, role entities.UserRole, body string) (entities.DesignComment, error)
	ListComments(ctx context.Context, designID string) ([]entities.DesignComment, error)

	RequestRevision(ctx context.Context, designID, clientID string) (entities.Design, error)
	ResumeProgress(ctx context.Context, designID, adminID string) (entities.Design, error)
	Approve(ctx context.Context, designID, clientID string) (entities.Billing, error)

	StartProduction(ctx context.Context, designID, adminID string) (entities.Design, error)
	MarkReadyForPickup(ctx context.Context, designID, adminID string) (entities.Design, error)
	MarkCompleted(ctx context.Context, designID, adminID string) (entities.Design, error)
}

type DesignUseCase struct {
	designs    interfaces.IDesignRepository
	requests   interfaces.IDesignRequestRepository
	billings   interfaces.IBillingRepository
	catalog    interfaces.ICatalogRepository
	dispatcher *Dispatcher
	now        func() time.Time
}

var _ IDesignUseCase = (*DesignUseCase)(nil)

func NewDesignUseCase(designs interfaces.IDesignRepository, requests interfaces.IDesignRequestRepository, billings interfaces.IBillingRepository, catalog interfaces.ICatalogRepository, dispatcher *Dispatcher) *DesignUseCase {
	return &DesignUseCase{
		designs:    designs,
		requests:   requests,
		billings:   billings,
		catalog:    catalog,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (u *DesignUseCase) load(ctx context.Context, designID string) (entities.Design, error) {
	designID = strings.TrimSpace(designID)
	if designID == "" {
		return entities.Design{}, ErrInvalidDesignID
	}
	d, err := u.designs.GetByID(ctx, designID)
	if err != nil {
		return entities.Design{}, err
	}
	if d.ID == "" {
		return entities.Design{}, ErrDesignNotFound
	}
	return d, nil
}

func (u *DesignUseCase) GetByID(ctx context.Context, id string) (entities.Design, error) {
	return u.load(ctx, id)
}

func (u *DesignUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Design, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidDesignID
	}
	return u.designs.ListByClientID(ctx, clientID)
}

func (u *DesignUseCase) ListByDesigner(ctx context.Context, designerID string) ([]entities.Design, error) {
	designerID = strings.TrimSpace(designerID)
	if designerID == "" {
		return nil, ErrInvalidDesignID
	}
	return u.designs.ListByDesignerID(ctx, designerID)
}

// PostPreview appends a progress snapshot. Posting while a revision is
// pending returns the design to in_progress; otherwise status is untouched.
func (u *DesignUseCase) PostPreview(ctx context.Context, designID, designerID, imageHandle, note string) (entities.Preview, error) {
	d, err := u.load(ctx, designID)
	if err != nil {
		return entities.Preview{}, err
	}
	if d.DesignerID != strings.TrimSpace(designerID) {
		return entities.Preview{}, ErrNotAssignee
	}

	preview := entities.Preview{
		ID:          uuid.NewString(),
		DesignID:    d.ID,
		DesignerID:  d.DesignerID,
		ImageHandle: strings.TrimSpace(imageHandle),
		Note:        strings.TrimSpace(note),
		CreatedAt:   u.now().UTC(),
	}
	created, err := u.designs.AddPreview(ctx, preview)
	if err != nil {
		return entities.Preview{}, err
	}

	if d.Status == entities.DesignStatusPendingRevision {
		if _, err := u.designs.UpdateStatus(ctx, d.ID, entities.DesignStatusInProgress); err != nil {
			if errors.Is(err, interfaces.ErrConflict) {
				return entities.Preview{}, ErrDesignNotFound
			}
			return entities.Preview{}, err
		}
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(d.ClientID, entities.RoleClient, "New preview",
			fmt.Sprintf("Your designer posted a new preview for design %s.", d.ID), "preview_posted"),
		Audit(d.DesignerID, entities.RoleDesigner, "post_preview", "create", d.ID, "design", created.ID),
	})
	return created, nil
}

func (u *DesignUseCase) ListPreviews(ctx context.Context, designID string) ([]entities.Preview, error) {
	d, err := u.load(ctx, designID)
	if err != nil {
		return nil, err
	}
	return u.designs.ListPreviews(ctx, d.ID)
}

// PostComment is append-only and never changes design status.
func (u *DesignUseCase) PostComment(ctx context.Context, designID, authorID string, role entities.UserRole, body string) (entities.DesignComment, error) {
	if strings.TrimSpace(body) == "" {
		return entities.DesignComment{}, ErrEmptyComment
	}
	d, err := u.load(ctx, designID)
	if err != nil {
		return entities.DesignComment{}, err
	}

	comment := entities.DesignComment{
		ID:         uuid.NewString(),
		DesignID:   d.ID,
		AuthorID:   strings.TrimSpace(authorID),
		AuthorRole: role,
		Body:       strings.TrimSpace(body),
		CreatedAt:  u.now().UTC(),
	}
	created, err := u.designs.AddComment(ctx, comment)
	if err != nil {
		return entities.DesignComment{}, err
	}

	// Notify the other side of the conversation.
	counterpartID, counterpartRole := d.DesignerID, entities.RoleDesigner
	if role == entities.RoleDesigner {
		counterpartID, counterpartRole = d.ClientID, entities.RoleClient
	}
	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(counterpartID, counterpartRole, "New comment",
			fmt.Sprintf("New comment on design %s.", d.ID), "comment_posted"),
	})
	return created, nil
}

func (u *DesignUseCase) ListComments(ctx context.Context, designID string) ([]entities.DesignComment, error) {
	d, err := u.load(ctx, designID)
	if err != nil {
		return nil, err
	}
	return u.designs.ListComments(ctx, d.ID)
}

// RequestRevision accepts one revision at a time: it bumps the revision
// counter by exactly 1 and parks the design in pending_revision.
func (u *DesignUseCase) RequestRevision(ctx context.Context, designID, clientID string) (entities.Design, error) {
	d, err := u.load(ctx, designID)
	if err != nil {
		return entities.Design{}, err
	}
	if d.ClientID != strings.TrimSpace(clientID) {
		return entities.Design{}, ErrNotOwner
	}
	if d.Status == entities.DesignStatusPendingRevision {
		return entities.Design{}, ErrRevisionInProgress
	}
	if d.Status != entities.DesignStatusInProgress || !d.Status.CanTransitionTo(entities.DesignStatusPendingRevision) {
		return entities.Design{}, ErrInvalidDesignState
	}

	updated, err := u.designs.UpdateRevision(ctx, d.ID, d.RevisionCount+1, entities.DesignStatusPendingRevision)
	if err != nil {
		// The write is conditioned on the revision counter we read; losing the
		// race means another revision landed first.
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Design{}, ErrRevisionInProgress
		}
		return entities.Design{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(d.DesignerID, entities.RoleDesigner, "Revision requested",
			fmt.Sprintf("The client requested revision #%d on design %s.", updated.RevisionCount, d.ID), "revision_requested"),
		Audit(d.ClientID, entities.RoleClient, "request_revision", "update", d.ID, "design",
			fmt.Sprintf("revision %d", updated.RevisionCount)),
	})
	return updated, nil
}

// ResumeProgress is the explicit admin action returning a design from
// pending_revision to in_progress without a new preview.
func (u *DesignUseCase) ResumeProgress(ctx context.Context, designID, adminID string) (entities.Design, error) {
	return u.transition(ctx, designID, adminID, entities.DesignStatusPendingRevision, entities.DesignStatusInProgress,
		"resume_progress", "Design work resumed", "Work on your design %s has resumed.")
}

// Approve is the client sign-off: the design moves to approved, the pricing
// engine runs once and the billing record is created if absent. Re-approving
// an already approved design is a no-op that returns the existing billing.
func (u *DesignUseCase) Approve(ctx context.Context, designID, clientID string) (entities.Billing, error) {
	d, err := u.load(ctx, designID)
	if err != nil {
		return entities.Billing{}, err
	}
	if d.ClientID != strings.TrimSpace(clientID) {
		return entities.Billing{}, ErrNotOwner
	}

	switch d.Status {
	case entities.DesignStatusInProgress, entities.DesignStatusPendingRevision:
		// sign-off allowed
	case entities.DesignStatusApproved:
		// Idempotent repeat: the existing billing must not be recomputed.
		existing, err := u.billings.GetByDesignID(ctx, d.ID)
		if err != nil {
			return entities.Billing{}, err
		}
		if existing.ID == "" {
			return entities.Billing{}, ErrBillingNotFound
		}
		return existing, nil
	default:
		return entities.Billing{}, ErrInvalidDesignState
	}

	req, err := u.requests.GetByID(ctx, d.RequestID)
	if err != nil {
		return entities.Billing{}, err
	}
	if req.ID == "" {
		return entities.Billing{}, ErrRequestNotFound
	}

	catalog, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return entities.Billing{}, err
	}
	breakdown, err := ComputeStartingAmount(req, d.DesignerID, d.RevisionCount, catalog)
	if err != nil {
		return entities.Billing{}, err
	}

	// The guarded billing insert goes first: if this write crashes before the
	// status flip, re-approving converges on the same invoice instead of
	// leaving an approved design with no billing.
	now := u.now().UTC()
	billing, created, err := u.billings.CreateIfAbsent(ctx, entities.Billing{
		ID:                 d.ID,
		DesignID:           d.ID,
		InvoiceNo:          newInvoiceNo(),
		StartingAmount:     breakdown.StartingAmount,
		PrintFee:           breakdown.PrintFee,
		DesignerFee:        breakdown.DesignerFee,
		RevisionFee:        breakdown.RevisionFee,
		FinalAmount:        0,
		NegotiationHistory: []entities.NegotiationEntry{},
		NegotiationRounds:  0,
		Status:             entities.BillingStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return entities.Billing{}, err
	}
	if !created {
		log.Printf("[design][usecase] billing already exists design_id=%s invoice_no=%s", d.ID, billing.InvoiceNo)
	}

	if _, err := u.designs.UpdateStatus(ctx, d.ID, entities.DesignStatusApproved); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Billing{}, ErrDesignNotFound
		}
		return entities.Billing{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(d.DesignerID, entities.RoleDesigner, "Design approved",
			fmt.Sprintf("The client approved design %s.", d.ID), "design_approved"),
		NotifyAll(entities.RoleAdmin, "Design approved",
			fmt.Sprintf("Design %s was approved; invoice %s issued.", d.ID, billing.InvoiceNo), "design_approved"),
		Audit(d.ClientID, entities.RoleClient, "approve_design", "update", d.ID, "design", billing.InvoiceNo),
		Audit(d.DesignerID, entities.RoleDesigner, "design_approved", "update", d.ID, "design", billing.InvoiceNo),
	})
	return billing, nil
}

func (u *DesignUseCase) StartProduction(ctx context.Context, designID, adminID string) (entities.Design, error) {
	return u.transition(ctx, designID, adminID, entities.DesignStatusApproved, entities.DesignStatusInProduction,
		"start_production", "Order in production", "Your order %s is now in production.")
}

func (u *DesignUseCase) MarkReadyForPickup(ctx context.Context, designID, adminID string) (entities.Design, error) {
	return u.transition(ctx, designID, adminID, entities.DesignStatusInProduction, entities.DesignStatusPendingPickup,
		"ready_for_pickup", "Ready for pickup", "Your order %s is ready for pickup.")
}

func (u *DesignUseCase) MarkCompleted(ctx context.Context, designID, adminID string) (entities.Design, error) {
	return u.transition(ctx, designID, adminID, entities.DesignStatusPendingPickup, entities.DesignStatusCompleted,
		"complete_order", "Order completed", "Your order %s is completed. Thank you!")
}

// transition performs a one-way admin transition guarded by the exact
// predecessor state the operation expects, double-checked against the
// status transition table.
func (u *DesignUseCase) transition(ctx context.Context, designID, adminID string, from, to entities.DesignStatus, action, title, clientMsgFmt string) (entities.Design, error) {
	d, err := u.load(ctx, designID)
	if err != nil {
		return entities.Design{}, err
	}
	if d.Status != from || !d.Status.CanTransitionTo(to) {
		return entities.Design{}, ErrInvalidDesignState
	}

	updated, err := u.designs.UpdateStatus(ctx, d.ID, to)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Design{}, ErrDesignNotFound
		}
		return entities.Design{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(d.ClientID, entities.RoleClient, title, fmt.Sprintf(clientMsgFmt, d.ID), string(to)),
		Audit(adminID, entities.RoleAdmin, action, "update", d.ID, "design", string(to)),
	})
	return updated, nil
}

func newInvoiceNo() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
