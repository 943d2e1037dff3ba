package entities

import "time"

// RequestStatus represents the lifecycle of a design request before and
// after a designer is assigned.
//
// Domain notes:
//   - A request is immutable once a Design exists, except for its status.
//   - Approval happens only together with Design creation (atomic pairing).

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCancelled RequestStatus = "cancelled"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending: {RequestStatusApproved, RequestStatusDeclined, RequestStatusCancelled},
}

// CanTransitionTo reports whether the status may move to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status change is allowed.
func (s RequestStatus) IsTerminal() bool {
	return len(requestTransitions[s]) == 0
}

// RequestedSize is one (size, quantity) row of a design request.
type RequestedSize struct {
	SizeID   string `json:"size_id"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// DesignRequest is the client's initial garment order specification.
//
// Storage model (DynamoDB):
//   - PK: id
//   - size rows are embedded as a list attribute (document-store shape)
type DesignRequest struct {
	ID                  string          `json:"id"`
	ClientID            string          `json:"client_id"`
	TextileID           string          `json:"textile_id"`
	ShirtTypeName       string          `json:"shirt_type_name"`
	Gender              string          `json:"gender"`
	PrintType           string          `json:"print_type"`
	Sizes               []RequestedSize `json:"sizes"`
	PreferredDesignerID string          `json:"preferred_designer_id,omitempty"`
	// PreferredDate is validated by the issuing client (>= 7 days out) and
	// is not re-validated server-side.
	PreferredDate *time.Time    `json:"preferred_date,omitempty"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ShirtCount is the total quantity over all requested sizes.
func (r DesignRequest) ShirtCount() int {
	total := 0
	for _, s := range r.Sizes {
		total += s.Quantity
	}
	return total
}
