package request

import (
	"strings"

	"atelier-service/internal/domain/entities"
)

type PostPreviewRequest struct {
	DesignerID  string `json:"designer_id" binding:"required"`
	ImageHandle string `json:"image_handle" binding:"required"`
	Note        string `json:"note"`
}

type PostCommentRequest struct {
	AuthorID   string `json:"author_id" binding:"required"`
	AuthorRole string `json:"author_role" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

// ResolveRole normalizes the author role, defaulting to client when the
// value is unknown so a stray payload never lands on a privileged role.
func (r PostCommentRequest) ResolveRole() entities.UserRole {
	switch entities.UserRole(strings.TrimSpace(r.AuthorRole)) {
	case entities.RoleDesigner:
		return entities.RoleDesigner
	case entities.RoleAdmin:
		return entities.RoleAdmin
	}
	return entities.RoleClient
}

type RequestRevisionRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

type ApproveDesignRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

// AdminActionRequest covers the one-way production transitions, which carry
// nothing but the acting admin.
type AdminActionRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
}
