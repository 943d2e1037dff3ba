package entities

import "time"

// AuditEntry is one append-only history record. The core writes entries and
// never reads them back.
//
// Storage model (DynamoDB):
//   - PK: id
type AuditEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserRole    UserRole  `json:"user_role"`
	Action      string    `json:"action"`
	ActionType  string    `json:"action_type"`
	RelatedID   string    `json:"related_id"`
	RelatedType string    `json:"related_type"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notification is a fire-and-forget message handed to the external delivery
// subsystem, which fans out to email and push channels on its own.
type Notification struct {
	UserID   string   `json:"user_id"`
	UserRole UserRole `json:"user_type"`
	Title    string   `json:"title,omitempty"`
	Message  string   `json:"message"`
	Kind     string   `json:"type,omitempty"`
}
