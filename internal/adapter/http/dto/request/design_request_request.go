package request

import (
	"errors"
	"strings"
	"time"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase"
)

var (
	ErrInvalidPreferredDate = errors.New("invalid preferred date")
)

type RequestedSizeRequest struct {
	SizeID   string `json:"size_id"`
	Label    string `json:"label" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// SubmitDesignRequestRequest is the intake payload for a new garment order.
type SubmitDesignRequestRequest struct {
	ClientID            string                 `json:"client_id" binding:"required"`
	TextileID           string                 `json:"textile_id" binding:"required"`
	ShirtTypeName       string                 `json:"shirt_type_name" binding:"required"`
	Gender              string                 `json:"gender"`
	PrintType           string                 `json:"print_type" binding:"required"`
	Sizes               []RequestedSizeRequest `json:"sizes" binding:"required"`
	PreferredDesignerID string                 `json:"preferred_designer_id"`
	PreferredDate       string                 `json:"preferred_date"`
}

func (r SubmitDesignRequestRequest) ToInput() (usecase.SubmitRequestInput, error) {
	sizes := make([]entities.RequestedSize, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, entities.RequestedSize{
			SizeID:   strings.TrimSpace(s.SizeID),
			Label:    strings.TrimSpace(s.Label),
			Quantity: s.Quantity,
		})
	}

	in := usecase.SubmitRequestInput{
		ClientID:            strings.TrimSpace(r.ClientID),
		TextileID:           strings.TrimSpace(r.TextileID),
		ShirtTypeName:       strings.TrimSpace(r.ShirtTypeName),
		Gender:              strings.TrimSpace(r.Gender),
		PrintType:           strings.TrimSpace(r.PrintType),
		Sizes:               sizes,
		PreferredDesignerID: strings.TrimSpace(r.PreferredDesignerID),
	}

	if v := strings.TrimSpace(r.PreferredDate); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return usecase.SubmitRequestInput{}, ErrInvalidPreferredDate
		}
		in.PreferredDate = &t
	}

	return in, nil
}

type AssignDesignerRequest struct {
	DesignerID string `json:"designer_id" binding:"required"`
	AdminID    string `json:"admin_id" binding:"required"`
}

type DeclineRequestRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
	Reason  string `json:"reason"`
}

type CancelRequestRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}
