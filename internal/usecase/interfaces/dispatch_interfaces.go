package interfaces

import (
	"context"

	"atelier-service/internal/domain/entities"
)

// INotifier hands messages to the external delivery subsystem. Dispatch is
// fire-and-forget; a failed send is logged by the caller and never rolls
// back the state transition that produced it.

type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
	NotifyMany(ctx context.Context, ns []entities.Notification) error
}

// IAuditLog appends history records. The core never reads them back.

type IAuditLog interface {
	Record(ctx context.Context, e entities.AuditEntry) error
}

// IUserDirectory is the read-only user lookup used to resolve role-wide
// notification fan-outs (e.g. "all admins").

type IUserDirectory interface {
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
}
