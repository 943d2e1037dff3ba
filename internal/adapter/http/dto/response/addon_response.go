package response

import (
	"time"

	"atelier-service/internal/domain/entities"
)

type AddOnSizeResponse struct {
	SizeID   string `json:"size_id"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

type AddOnResponse struct {
	ID            string              `json:"id"`
	DesignID      string              `json:"design_id"`
	RequesterID   string              `json:"requester_id"`
	RequesterRole string              `json:"requester_role"`
	Type          string              `json:"type"`
	Reason        string              `json:"reason,omitempty"`
	Fee           float64             `json:"fee"`
	Price         float64             `json:"price"`
	Status        string              `json:"status"`
	Sizes         []AddOnSizeResponse `json:"sizes,omitempty"`
	ImageHandles  []string            `json:"image_handles,omitempty"`
	DeclineReason string              `json:"decline_reason,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromAddOn(a entities.AddOnRequest) AddOnResponse {
	sizes := make([]AddOnSizeResponse, 0, len(a.Sizes))
	for _, s := range a.Sizes {
		sizes = append(sizes, AddOnSizeResponse{
			SizeID:   s.SizeID,
			Label:    s.Label,
			Quantity: s.Quantity,
		})
	}

	return AddOnResponse{
		ID:            a.ID,
		DesignID:      a.DesignID,
		RequesterID:   a.RequesterID,
		RequesterRole: string(a.RequesterRole),
		Type:          string(a.Type),
		Reason:        a.Reason,
		Fee:           a.Fee,
		Price:         a.Price,
		Status:        string(a.Status),
		Sizes:         sizes,
		ImageHandles:  a.ImageHandles,
		DeclineReason: a.DeclineReason,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func FromAddOns(addons []entities.AddOnRequest) []AddOnResponse {
	out := make([]AddOnResponse, 0, len(addons))
	for _, a := range addons {
		out = append(out, FromAddOn(a))
	}
	return out
}
