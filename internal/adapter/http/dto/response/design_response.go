package response

import (
	"time"

	"atelier-service/internal/domain/entities"
)

type DesignResponse struct {
	ID            string     `json:"id"`
	RequestID     string     `json:"request_id"`
	ClientID      string     `json:"client_id"`
	DesignerID    string     `json:"designer_id"`
	RevisionCount int        `json:"revision_count"`
	Status        string     `json:"status"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromDesign(d entities.Design) DesignResponse {
	return DesignResponse{
		ID:            d.ID,
		RequestID:     d.RequestID,
		ClientID:      d.ClientID,
		DesignerID:    d.DesignerID,
		RevisionCount: d.RevisionCount,
		Status:        string(d.Status),
		Deadline:      d.Deadline,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDesigns(designs []entities.Design) []DesignResponse {
	out := make([]DesignResponse, 0, len(designs))
	for _, d := range designs {
		out = append(out, FromDesign(d))
	}
	return out
}

type PreviewResponse struct {
	ID          string    `json:"id"`
	DesignID    string    `json:"design_id"`
	DesignerID  string    `json:"designer_id"`
	ImageHandle string    `json:"image_handle"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPreview(p entities.Preview) PreviewResponse {
	return PreviewResponse{
		ID:          p.ID,
		DesignID:    p.DesignID,
		DesignerID:  p.DesignerID,
		ImageHandle: p.ImageHandle,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

func FromPreviews(previews []entities.Preview) []PreviewResponse {
	out := make([]PreviewResponse, 0, len(previews))
	for _, p := range previews {
		out = append(out, FromPreview(p))
	}
	return out
}

type DesignCommentResponse struct {
	ID         string    `json:"id"`
	DesignID   string    `json:"design_id"`
	AuthorID   string    `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromDesignComment(c entities.DesignComment) DesignCommentResponse {
	return DesignCommentResponse{
		ID:         c.ID,
		DesignID:   c.DesignID,
		AuthorID:   c.AuthorID,
		AuthorRole: string(c.AuthorRole),
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}

func FromDesignComments(comments []entities.DesignComment) []DesignCommentResponse {
	out := make([]DesignCommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, FromDesignComment(c))
	}
	return out
}
