package response

import (
	"time"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase"
)

type RequestedSizeResponse struct {
	SizeID   string `json:"size_id"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

type DesignRequestResponse struct {
	ID                  string                  `json:"id"`
	ClientID            string                  `json:"client_id"`
	TextileID           string                  `json:"textile_id"`
	ShirtTypeName       string                  `json:"shirt_type_name"`
	Gender              string                  `json:"gender,omitempty"`
	PrintType           string                  `json:"print_type"`
	Sizes               []RequestedSizeResponse `json:"sizes"`
	ShirtCount          int                     `json:"shirt_count"`
	EstimatedYardage    float64                 `json:"estimated_yardage"`
	PreferredDesignerID string                  `json:"preferred_designer_id,omitempty"`
	PreferredDate       *time.Time              `json:"preferred_date,omitempty"`
	Status              string                  `json:"status"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

func FromDesignRequest(r entities.DesignRequest) DesignRequestResponse {
	sizes := make([]RequestedSizeResponse, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, RequestedSizeResponse{
			SizeID:   s.SizeID,
			Label:    s.Label,
			Quantity: s.Quantity,
		})
	}

	return DesignRequestResponse{
		ID:                  r.ID,
		ClientID:            r.ClientID,
		TextileID:           r.TextileID,
		ShirtTypeName:       r.ShirtTypeName,
		Gender:              r.Gender,
		PrintType:           r.PrintType,
		Sizes:               sizes,
		ShirtCount:          r.ShirtCount(),
		EstimatedYardage:    usecase.EstimateYardage(r.Sizes),
		PreferredDesignerID: r.PreferredDesignerID,
		PreferredDate:       r.PreferredDate,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func FromDesignRequests(requests []entities.DesignRequest) []DesignRequestResponse {
	out := make([]DesignRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromDesignRequest(r))
	}
	return out
}
