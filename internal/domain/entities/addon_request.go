package entities

import "time"

// AddOnType classifies what a post-approval change request asks for.

type AddOnType string

const (
	AddOnTypeDesign            AddOnType = "design"
	AddOnTypeQuantity          AddOnType = "quantity"
	AddOnTypeDesignAndQuantity AddOnType = "designAndQuantity"
)

// Valid reports whether the type is one of the known kinds.
func (t AddOnType) Valid() bool {
	switch t {
	case AddOnTypeDesign, AddOnTypeQuantity, AddOnTypeDesignAndQuantity:
		return true
	}
	return false
}

// HasQuantity reports whether the add-on carries a quantity component that
// must be priced against the print-pricing table.
func (t AddOnType) HasQuantity() bool {
	return t == AddOnTypeQuantity || t == AddOnTypeDesignAndQuantity
}

// HasDesign reports whether the add-on reopens design work.
func (t AddOnType) HasDesign() bool {
	return t == AddOnTypeDesign || t == AddOnTypeDesignAndQuantity
}

// AddOnStatus represents the add-on request lifecycle. approved, declined and
// cancelled are terminal; the one-time admin fee assignment happens together
// with approval.

type AddOnStatus string

const (
	AddOnStatusPending   AddOnStatus = "pending"
	AddOnStatusApproved  AddOnStatus = "approved"
	AddOnStatusDeclined  AddOnStatus = "declined"
	AddOnStatusCancelled AddOnStatus = "cancelled"
)

// IsTerminal reports whether the add-on permits no further mutation.
func (s AddOnStatus) IsTerminal() bool {
	return s != AddOnStatusPending
}

// AddOnSize is one size-delta row attached to an add-on request.
type AddOnSize struct {
	SizeID   string `json:"size_id"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// AddOnRequest is a post-approval change request raised against a design:
// extra units, extra design work, or both.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI design_id-index: design_id
//   - size-delta rows and image handles are embedded list attributes
type AddOnRequest struct {
	ID            string      `json:"id"`
	DesignID      string      `json:"design_id"`
	RequesterID   string      `json:"requester_id"`
	RequesterRole UserRole    `json:"requester_role"`
	Type          AddOnType   `json:"type"`
	Reason        string      `json:"reason"`
	Fee           float64     `json:"fee"`
	Price         float64     `json:"price"`
	Status        AddOnStatus `json:"status"`
	Sizes         []AddOnSize `json:"sizes,omitempty"`
	ImageHandles  []string    `json:"image_handles,omitempty"`
	DeclineReason string      `json:"decline_reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
