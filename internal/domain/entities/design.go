package entities

import "time"

// DesignStatus represents the lifecycle of an active design work item, from
// assignment through production and pickup.
//
// Domain notes:
//   - in_production, pending_pickup and completed are reachable only through
//     explicit admin transition operations, each one-way and guarded by the
//     exact predecessor state.
//   - approved add-ons may move a design backwards (see ApplyAddOnStatus).

type DesignStatus string

const (
	DesignStatusInProgress      DesignStatus = "in_progress"
	DesignStatusPendingRevision DesignStatus = "pending_revision"
	DesignStatusApproved        DesignStatus = "approved"
	DesignStatusInProduction    DesignStatus = "in_production"
	DesignStatusPendingPickup   DesignStatus = "pending_pickup"
	DesignStatusCompleted       DesignStatus = "completed"
)

var designTransitions = map[DesignStatus][]DesignStatus{
	DesignStatusInProgress:      {DesignStatusPendingRevision, DesignStatusApproved},
	DesignStatusPendingRevision: {DesignStatusInProgress, DesignStatusApproved},
	DesignStatusApproved:        {DesignStatusInProduction, DesignStatusInProgress},
	DesignStatusInProduction:    {DesignStatusPendingPickup, DesignStatusInProgress},
	DesignStatusPendingPickup:   {DesignStatusCompleted, DesignStatusInProduction, DesignStatusInProgress},
	DesignStatusCompleted:       {DesignStatusInProduction, DesignStatusInProgress},
}

// CanTransitionTo reports whether the status may move to next.
func (s DesignStatus) CanTransitionTo(next DesignStatus) bool {
	for _, allowed := range designTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Design is the work item created once a request is assigned to a designer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI request_id-index: request_id (1:1 with the originating request)
//   - GSI client_id-index / designer_id-index for listings
//
// RevisionCount only ever increases for the life of a design.
type Design struct {
	ID            string       `json:"id"`
	RequestID     string       `json:"request_id"`
	ClientID      string       `json:"client_id"`
	DesignerID    string       `json:"designer_id"`
	RevisionCount int          `json:"revision_count"`
	Status        DesignStatus `json:"status"`
	Deadline      *time.Time   `json:"deadline,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Canvas is the single mutable artwork record owned by a design. The core
// only guarantees its existence; editing happens elsewhere.
type Canvas struct {
	ID        string    `json:"id"`
	DesignID  string    `json:"design_id"`
	Objects   string    `json:"objects"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preview is an immutable snapshot of design progress posted for client
// review. Snapshots are append-only; the newest is the one with the greatest
// creation timestamp.
type Preview struct {
	ID          string    `json:"id"`
	DesignID    string    `json:"design_id"`
	DesignerID  string    `json:"designer_id"`
	ImageHandle string    `json:"image_handle"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DesignComment is an append-only remark on a design, from either side.
type DesignComment struct {
	ID         string    `json:"id"`
	DesignID   string    `json:"design_id"`
	AuthorID   string    `json:"author_id"`
	AuthorRole UserRole  `json:"author_role"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
