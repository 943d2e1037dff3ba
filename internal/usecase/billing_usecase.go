package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"
)

var (
	ErrBillingNotFound   = errors.New("billing not found")
	ErrBillingApproved   = errors.New("billing already approved")
	ErrNegotiationLimit  = errors.New("negotiation round limit reached")
	ErrAmountBelowFloor  = errors.New("proposed amount below negotiation floor")
	ErrInvalidProposal   = errors.New("proposed amount must be > 0")
	ErrInvalidBillingRef = errors.New("invalid design id")
)

// IBillingUseCase exposes the bounded negotiation protocol and invoice
// approval over a design's billing record.

type IBillingUseCase interface {
	GetByDesignID(ctx context.Context, designID string) (entities.Billing, error)
	Negotiate(ctx context.Context, designID, clientID string, amount float64) (entities.Billing, error)
	Approve(ctx context.Context, designID, clientID string) (entities.Billing, error)
}

type BillingUseCase struct {
	billings   interfaces.IBillingRepository
	designs    interfaces.IDesignRepository
	gateway    interfaces.IPaymentGateway
	dispatcher *Dispatcher
	now        func() time.Time
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(billings interfaces.IBillingRepository, designs interfaces.IDesignRepository, gateway interfaces.IPaymentGateway, dispatcher *Dispatcher) *BillingUseCase {
	return &BillingUseCase{
		billings:   billings,
		designs:    designs,
		gateway:    gateway,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (u *BillingUseCase) GetByDesignID(ctx context.Context, designID string) (entities.Billing, error) {
	designID = strings.TrimSpace(designID)
	if designID == "" {
		return entities.Billing{}, ErrInvalidBillingRef
	}
	b, err := u.billings.GetByDesignID(ctx, designID)
	if err != nil {
		return entities.Billing{}, err
	}
	if b.ID == "" {
		return entities.Billing{}, ErrBillingNotFound
	}
	return b, nil
}

// Negotiate applies one client counter-offer. The protocol is bounded two
// ways: at most MaxNegotiationRounds accepted proposals, and never below
// 90% of the immutable starting amount.
func (u *BillingUseCase) Negotiate(ctx context.Context, designID, clientID string, amount float64) (entities.Billing, error) {
	if amount <= 0 {
		return entities.Billing{}, ErrInvalidProposal
	}

	b, err := u.GetByDesignID(ctx, designID)
	if err != nil {
		return entities.Billing{}, err
	}

	design, err := u.designs.GetByID(ctx, b.DesignID)
	if err != nil {
		return entities.Billing{}, err
	}
	if design.ID == "" {
		return entities.Billing{}, ErrDesignNotFound
	}
	if design.ClientID != strings.TrimSpace(clientID) {
		return entities.Billing{}, ErrNotOwner
	}

	if b.Status == entities.BillingStatusApproved {
		return entities.Billing{}, ErrBillingApproved
	}
	if b.NegotiationRounds >= entities.MaxNegotiationRounds {
		return entities.Billing{}, ErrNegotiationLimit
	}
	if amount < b.NegotiationFloor() {
		return entities.Billing{}, ErrAmountBelowFloor
	}

	updated, err := u.billings.AppendNegotiation(ctx, b.DesignID, entities.NegotiationEntry{
		Amount: amount,
		Date:   u.now().UTC(),
	})
	if err != nil {
		// The write is conditioned on both the round ceiling and the pending
		// status; re-read to report which guard the race tripped.
		if errors.Is(err, interfaces.ErrConflict) {
			current, getErr := u.billings.GetByDesignID(ctx, b.DesignID)
			if getErr == nil && current.Status == entities.BillingStatusApproved {
				return entities.Billing{}, ErrBillingApproved
			}
			return entities.Billing{}, ErrNegotiationLimit
		}
		return entities.Billing{}, err
	}

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyUser(design.DesignerID, entities.RoleDesigner, "Price proposal",
			fmt.Sprintf("The client proposed %.2f for invoice %s (round %d of %d).",
				amount, b.InvoiceNo, updated.NegotiationRounds, entities.MaxNegotiationRounds), "negotiation"),
		Audit(design.ClientID, entities.RoleClient, "negotiate_billing", "update", b.DesignID, "billing",
			fmt.Sprintf("proposed %.2f", amount)),
	})
	return updated, nil
}

// Approve finalizes the invoice at whatever the settled total currently is.
// The client may approve the starting amount without ever negotiating.
func (u *BillingUseCase) Approve(ctx context.Context, designID, clientID string) (entities.Billing, error) {
	b, err := u.GetByDesignID(ctx, designID)
	if err != nil {
		return entities.Billing{}, err
	}

	design, err := u.designs.GetByID(ctx, b.DesignID)
	if err != nil {
		return entities.Billing{}, err
	}
	if design.ID == "" {
		return entities.Billing{}, ErrDesignNotFound
	}
	if design.ClientID != strings.TrimSpace(clientID) {
		return entities.Billing{}, ErrNotOwner
	}
	if b.Status == entities.BillingStatusApproved {
		return entities.Billing{}, ErrBillingApproved
	}

	updated, err := u.billings.UpdateStatus(ctx, b.DesignID, entities.BillingStatusApproved)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Billing{}, ErrBillingApproved
		}
		return entities.Billing{}, err
	}

	u.createProviderPayment(ctx, updated)

	u.dispatcher.Dispatch(ctx, []Effect{
		NotifyAll(entities.RoleAdmin, "Invoice approved",
			fmt.Sprintf("Invoice %s was approved at %.2f.", updated.InvoiceNo, updated.SettledTotal()), "billing_approved"),
		Audit(design.ClientID, entities.RoleClient, "approve_billing", "update", b.DesignID, "billing", updated.InvoiceNo),
	})
	return updated, nil
}

// createProviderPayment is best-effort: a missing or failing gateway never
// blocks invoice approval.
func (u *BillingUseCase) createProviderPayment(ctx context.Context, b entities.Billing) {
	if u.gateway == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"external_reference": b.InvoiceNo,
		"description":        fmt.Sprintf("Invoice %s", b.InvoiceNo),
		"transaction_amount": b.SettledTotal(),
	})
	if err != nil {
		log.Printf("[billing][usecase] payment payload marshal failed invoice_no=%s err=%v", b.InvoiceNo, err)
		return
	}
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[billing][usecase] provider payment failed invoice_no=%s err=%v", b.InvoiceNo, err)
		return
	}
	log.Printf("[billing][usecase] provider payment created invoice_no=%s provider_payment_id=%s provider_status=%s", b.InvoiceNo, providerID, providerStatus)
}
