package entities

import "time"

// BillingStatus represents the invoice lifecycle.
//
// Once approved the record is a finalized invoice; the negotiation protocol
// is closed and only add-on surcharges may still grow the totals.

type BillingStatus string

const (
	BillingStatusPending  BillingStatus = "pending"
	BillingStatusApproved BillingStatus = "approved"
)

// MaxNegotiationRounds caps how many client counter-offers a billing accepts.
const MaxNegotiationRounds = 5

// NegotiationFloorRatio is the hard lower bound of any proposal relative to
// the starting amount.
const NegotiationFloorRatio = 0.9

// NegotiationEntry is one accepted client counter-offer.
type NegotiationEntry struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// Billing is the invoice record for a design.
//
// Storage model (DynamoDB):
//   - PK: id, and id equals the design id. Using the design id as PK
//     guarantees at most one billing per design and lets creation ride on a
//     conditional attribute_not_exists write.
//
// Monetary representation:
//   - StartingAmount is the pricing-engine output and is immutable after
//     creation. FinalAmount is 0 until a negotiation is accepted.
//   - AddonsShirtPrice and AddonsFee only ever increase.
type Billing struct {
	ID                 string             `json:"id"`
	DesignID           string             `json:"design_id"`
	InvoiceNo          string             `json:"invoice_no"`
	StartingAmount     float64            `json:"starting_amount"`
	PrintFee           float64            `json:"print_fee"`
	DesignerFee        float64            `json:"designer_fee"`
	RevisionFee        float64            `json:"revision_fee"`
	FinalAmount        float64            `json:"final_amount"`
	NegotiationHistory []NegotiationEntry `json:"negotiation_history"`
	NegotiationRounds  int                `json:"negotiation_rounds"`
	AddonsShirtPrice   float64            `json:"addons_shirt_price"`
	AddonsFee          float64            `json:"addons_fee"`
	Status             BillingStatus      `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// BaseAmount is the negotiated price, or the starting amount when no
// negotiation has been accepted.
func (b Billing) BaseAmount() float64 {
	if b.FinalAmount > 0 {
		return b.FinalAmount
	}
	return b.StartingAmount
}

// SettledTotal is the amount displayed and charged at any time: the base
// amount plus add-on surcharges. Add-on components are never negotiable.
func (b Billing) SettledTotal() float64 {
	return b.BaseAmount() + b.AddonsShirtPrice + b.AddonsFee
}

// NegotiationFloor is the lowest proposal the protocol accepts.
func (b Billing) NegotiationFloor() float64 {
	return b.StartingAmount * NegotiationFloorRatio
}
