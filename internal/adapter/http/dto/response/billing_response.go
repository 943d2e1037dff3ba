package response

import (
	"time"

	"atelier-service/internal/domain/entities"
)

type NegotiationEntryResponse struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type BillingResponse struct {
	ID                 string                     `json:"id"`
	DesignID           string                     `json:"design_id"`
	InvoiceNo          string                     `json:"invoice_no"`
	StartingAmount     float64                    `json:"starting_amount"`
	PrintFee           float64                    `json:"print_fee"`
	DesignerFee        float64                    `json:"designer_fee"`
	RevisionFee        float64                    `json:"revision_fee"`
	FinalAmount        float64                    `json:"final_amount"`
	NegotiationHistory []NegotiationEntryResponse `json:"negotiation_history"`
	NegotiationRounds  int                        `json:"negotiation_rounds"`
	RoundsRemaining    int                        `json:"rounds_remaining"`
	NegotiationFloor   float64                    `json:"negotiation_floor"`
	AddonsShirtPrice   float64                    `json:"addons_shirt_price"`
	AddonsFee          float64                    `json:"addons_fee"`
	SettledTotal       float64                    `json:"settled_total"`
	Status             string                     `json:"status"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

func FromBilling(b entities.Billing) BillingResponse {
	history := make([]NegotiationEntryResponse, 0, len(b.NegotiationHistory))
	for _, e := range b.NegotiationHistory {
		history = append(history, NegotiationEntryResponse{Amount: e.Amount, Date: e.Date})
	}

	remaining := entities.MaxNegotiationRounds - b.NegotiationRounds
	if remaining < 0 {
		remaining = 0
	}

	return BillingResponse{
		ID:                 b.ID,
		DesignID:           b.DesignID,
		InvoiceNo:          b.InvoiceNo,
		StartingAmount:     b.StartingAmount,
		PrintFee:           b.PrintFee,
		DesignerFee:        b.DesignerFee,
		RevisionFee:        b.RevisionFee,
		FinalAmount:        b.FinalAmount,
		NegotiationHistory: history,
		NegotiationRounds:  b.NegotiationRounds,
		RoundsRemaining:    remaining,
		NegotiationFloor:   b.NegotiationFloor(),
		AddonsShirtPrice:   b.AddonsShirtPrice,
		AddonsFee:          b.AddonsFee,
		SettledTotal:       b.SettledTotal(),
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
