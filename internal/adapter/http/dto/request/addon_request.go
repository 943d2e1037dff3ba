package request

import (
	"strings"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase"
)

type AddOnSizeRequest struct {
	SizeID   string `json:"size_id"`
	Label    string `json:"label" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// SubmitAddOnRequest is the payload for a post-approval change request.
type SubmitAddOnRequest struct {
	DesignID      string             `json:"design_id" binding:"required"`
	RequesterID   string             `json:"requester_id" binding:"required"`
	RequesterRole string             `json:"requester_role"`
	Type          string             `json:"type" binding:"required"`
	Reason        string             `json:"reason"`
	Sizes         []AddOnSizeRequest `json:"sizes"`
	ImageHandles  []string           `json:"image_handles"`
}

func (r SubmitAddOnRequest) ToInput() usecase.SubmitAddOnInput {
	sizes := make([]entities.AddOnSize, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, entities.AddOnSize{
			SizeID:   strings.TrimSpace(s.SizeID),
			Label:    strings.TrimSpace(s.Label),
			Quantity: s.Quantity,
		})
	}

	role := entities.UserRole(strings.TrimSpace(r.RequesterRole))
	if role != entities.RoleAdmin && role != entities.RoleDesigner {
		role = entities.RoleClient
	}

	return usecase.SubmitAddOnInput{
		DesignID:      strings.TrimSpace(r.DesignID),
		RequesterID:   strings.TrimSpace(r.RequesterID),
		RequesterRole: role,
		Type:          entities.AddOnType(strings.TrimSpace(r.Type)),
		Reason:        strings.TrimSpace(r.Reason),
		Sizes:         sizes,
		ImageHandles:  r.ImageHandles,
	}
}

type ApproveAddOnRequest struct {
	AdminID string  `json:"admin_id" binding:"required"`
	Fee     float64 `json:"fee"`
}

type DeclineAddOnRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
	Reason  string `json:"reason"`
}

type CancelAddOnRequest struct {
	RequesterID string `json:"requester_id" binding:"required"`
}
