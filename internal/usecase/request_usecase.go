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
	ErrRequestNotFound   = errors.New("design request not found")
	ErrTextileNotFound   = errors.New("textile not found")
	ErrRequestNotPending = errors.New("design request is not pending")
	ErrInvalidRequestID  = errors.New("invalid request id")
	ErrInvalidQuantity   = errors.New("size quantity must be > 0")
	ErrEmptySizes        = errors.New("at least one size row is required")
	ErrNotOwner          = errors.New("actor does not own this resource")
	ErrReasonRequired    = errors.New("a reason is required")
)

// SubmitRequestInput carries a client's order specification.
type SubmitRequestInput struct {
	ClientID            string
	TextileID           string
	ShirtTypeName       string
	Gender              string
	PrintType           string
	Sizes               []entities.RequestedSize
	PreferredDesignerID string
	PreferredDate       *time.Time
}

// IRequestUseCase exposes intake and assignment over design requests.

type IRequestUseCase interface {
	Submit(ctx context.Context, in SubmitRequestInput) (entities.DesignRequest, error)
	Assign(ctx context.Context, requestID, designerID, adminID string) (entities.Design, error)
	Decline(ctx context.Context, requestID, adminID, reason string) (entities.DesignRequest, error)
	Cancel(ctx context.Context, requestID, clientID string) (entities.DesignRequest, error)
	GetByID(ctx context.Context, id string) (entities.DesignRequest, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.DesignRequest, error)
	ListPending(ctx context.Context) ([]entities.DesignRequest, error)
}

type RequestUseCase struct {
	requests   interfaces.IDesignRequestRepository
	designs    interfaces.IDesignRepository
	catalog    interfaces.ICatalogRepository
	dispatcher *Dispatcher
	now        func() time.Time
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(requests interfaces.IDesignRequestRepository, designs interfaces.IDesignRepository, catalog interfaces.ICatalogRepository, dispatcher *Dispatcher) *RequestUseCase {
	return &RequestUseCase{
		requests:   requests,
		designs:    designs,
		catalog:    catalog,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (u *RequestUseCase) Submit(ctx context.Context, in SubmitRequestInput) (entities.DesignRequest, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.TextileID = strings.TrimSpace(in.TextileID)
	if in.ClientID == "" || in.TextileID == "" {
		return entities.DesignRequest{}, ErrInvalidRequestID
	}
	if len(in.Sizes) == 0 {
		return entities.DesignRequest{}, ErrEmptySizes
	}
	for _, s := range in.Sizes {
		if s.Quantity <= 0 {
			return entities.DesignRequest{}, ErrInvalidQuantity
		}
	}

	textile, err := u.catalog.GetTextile(ctx, in.TextileID)
	if err != nil {
		return entities.DesignRequest{}, err
	}
	if textile.ID == "" {
		return entities.DesignRequest{}, ErrTextileNotFound
	}

	now := u.now().UTC()
	req := entities.DesignRequest{
		ID:                  uuid.NewString(),
		ClientID:            in.ClientID,
		TextileID:           in.TextileID,
		ShirtTypeName:       strings.TrimSpace(in.ShirtTypeName),
		Gender:              in.Gender,
		PrintType:           strings.TrimSpace(in.PrintType),
		Sizes:               in.Sizes,
		PreferredDesignerID: strings.TrimSpace(in.PreferredDesignerID),
		PreferredDate:       in.PreferredDate,
		Status:              entities.RequestStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.requests.Create(ctx, req)
	if err != nil {
		return entities.DesignRequest{}, err
	}

	effects := []Effect{
		NotifyAll(entities.RoleAdmin, "New design request",
			fmt.Sprintf("A new design request %s is waiting for assignment.", created.ID), "request_submitted"),
		Audit(created.ClientID, entities.RoleClient, "submit_request", "create", created.ID, "design_request",
			fmt.Sprintf("%d shirts on textile %s", created.ShirtCount(), textile.Name)),
	}

	// Stock shortage is advisory only: the request is created either way.
	needed := EstimateYardage(created.Sizes)
	if needed > textile.StockYards {
		log.Printf("[request][usecase] insufficient stock request_id=%s needed=%.1f stock=%.1f", created.ID, needed, textile.StockYards)
		effects = append(effects, NotifyUser(created.ClientID, entities.RoleClient, "Possible delay",
			fmt.Sprintf("The fabric %s is low on stock; your order may be delayed.", textile.Name), "stock_warning"))
	}

	u.dispatcher.Dispatch(ctx, effects)
	return created, nil
}

func (u *RequestUseCase) Assign(ctx context.Context, requestID, designerID, adminID string) (entities.Design, error) {
	requestID = strings.TrimSpace(requestID)
	designerID = strings.TrimSpace(designerID)
	if requestID == "" || designerID == "" {
		return entities.Design{}, ErrInvalidRequestID
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.Design{}, err
	}
	if req.ID == "" {
		return entities.Design{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusPending {
		return entities.Design{}, ErrRequestNotPending
	}

	textile, err := u.catalog.GetTextile(ctx, req.TextileID)
	if err != nil {
		return entities.Design{}, err
	}
	if textile.ID == "" {
		return entities.Design{}, ErrTextileNotFound
	}

	now := u.now().UTC()
	design := entities.Design{
		ID:            uuid.NewString(),
		RequestID:     req.ID,
		ClientID:      req.ClientID,
		DesignerID:    designerID,
		RevisionCount: 0,
		Status:        entities.DesignStatusInProgress,
		Deadline:      req.PreferredDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	canvas := entities.Canvas{
		ID:        uuid.NewString(),
		DesignID:  design.ID,
		Objects:   "[]",
		UpdatedAt: now,
	}

	// The design write also flips the request to approved; a request that
	// stopped being pending since the read above cancels the whole transaction.
	created, err := u.designs.CreateWithCanvas(ctx, design, canvas)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Design{}, ErrRequestNotPending
		}
		return entities.Design{}, err
	}

	// Same yardage policy as intake; the client message depends on it.
	clientMsg := fmt.Sprintf("Your request has been approved and assigned to a designer. Order %s is now in progress.", created.ID)
	if EstimateYardage(req.Sizes) > textile.StockYards {
		clientMsg = fmt.Sprintf("Your request has been approved, but the fabric %s is low on stock and the order may be delayed.", textile.Name)
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(req.ClientID, entities.RoleClient, "Request approved", clientMsg, "request_approved"),
		NotifyUser(designerID, entities.RoleDesigner, "New assignment",
			fmt.Sprintf("You have been assigned design %s.", created.ID), "design_assigned"),
		Audit(adminID, entities.RoleAdmin, "assign_designer", "update", req.ID, "design_request", "designer "+designerID),
		Audit(designerID, entities.RoleDesigner, "receive_assignment", "create", created.ID, "design", ""),
		Audit(req.ClientID, entities.RoleClient, "request_approved", "update", req.ID, "design_request", ""),
	})
	return created, nil
}

func (u *RequestUseCase) Decline(ctx context.Context, requestID, adminID, reason string) (entities.DesignRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.DesignRequest{}, ErrInvalidRequestID
	}
	if strings.TrimSpace(reason) == "" {
		return entities.DesignRequest{}, ErrReasonRequired
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.DesignRequest{}, err
	}
	if req.ID == "" {
		return entities.DesignRequest{}, ErrRequestNotFound
	}
	if !req.Status.CanTransitionTo(entities.RequestStatusDeclined) {
		return entities.DesignRequest{}, ErrRequestNotPending
	}

	updated, err := u.requests.UpdateStatus(ctx, req.ID, entities.RequestStatusDeclined)
	if err != nil {
		return entities.DesignRequest{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(req.ClientID, entities.RoleClient, "Request declined", reason, "request_declined"),
		Audit(adminID, entities.RoleAdmin, "decline_request", "update", req.ID, "design_request", reason),
	})
	return updated, nil
}

func (u *RequestUseCase) Cancel(ctx context.Context, requestID, clientID string) (entities.DesignRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.DesignRequest{}, ErrInvalidRequestID
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.DesignRequest{}, err
	}
	if req.ID == "" {
		return entities.DesignRequest{}, ErrRequestNotFound
	}
	if req.ClientID != strings.TrimSpace(clientID) {
		return entities.DesignRequest{}, ErrNotOwner
	}
	if !req.Status.CanTransitionTo(entities.RequestStatusCancelled) {
		return entities.DesignRequest{}, ErrRequestNotPending
	}

	updated, err := u.requests.UpdateStatus(ctx, req.ID, entities.RequestStatusCancelled)
	if err != nil {
		return entities.DesignRequest{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyAll(entities.RoleAdmin, "Request cancelled",
			fmt.Sprintf("Design request %s was cancelled by the client.", req.ID), "request_cancelled"),
		Audit(req.ClientID, entities.RoleClient, "cancel_request", "update", req.ID, "design_request", ""),
	})
	return updated, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.DesignRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignRequest{}, ErrInvalidRequestID
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.DesignRequest{}, err
	}
	if req.ID == "" {
		return entities.DesignRequest{}, ErrRequestNotFound
	}
	return req, nil
}

func (u *RequestUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.DesignRequest, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.requests.ListByClientID(ctx, clientID)
}

func (u *RequestUseCase) ListPending(ctx context.Context) ([]entities.DesignRequest, error) {
	return u.requests.ListByStatus(ctx, entities.RequestStatusPending)
}
