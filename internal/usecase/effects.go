package usecase

import (
	"context"
	"log"
	"time"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Effects are the best-effort side effects a state transition produces:
// notifications and audit entries. Transition logic only collects them; the
// Dispatcher executes them after the transactional write commits, logging
// failures instead of propagating them.

type Effect struct {
	Notification *entities.Notification
	// NotifyRole fans the notification out to every user holding the role,
	// resolved through the user directory at dispatch time.
	NotifyRole entities.UserRole
	Audit      *entities.AuditEntry
}

// NotifyUser builds a single-recipient notification effect.
func NotifyUser(userID string, role entities.UserRole, title, message, kind string) Effect {
	return Effect{Notification: &entities.Notification{
		UserID:   userID,
		UserRole: role,
		Title:    title,
		Message:  message,
		Kind:     kind,
	}}
}

// NotifyAll builds a role-wide notification effect.
func NotifyAll(role entities.UserRole, title, message, kind string) Effect {
	return Effect{
		Notification: &entities.Notification{Title: title, Message: message, Kind: kind},
		NotifyRole:   role,
	}
}

// Audit builds a history-record effect.
func Audit(userID string, role entities.UserRole, action, actionType, relatedID, relatedType, details string) Effect {
	return Effect{Audit: &entities.AuditEntry{
		UserID:      userID,
		UserRole:    role,
		Action:      action,
		ActionType:  actionType,
		RelatedID:   relatedID,
		RelatedType: relatedType,
		Details:     details,
	}}
}

// Dispatcher executes effects against the notification and audit
// collaborators. A nil dispatcher (or nil collaborator) silently drops the
// corresponding effects, which keeps transition logic testable without I/O.
type Dispatcher struct {
	notifier interfaces.INotifier
	audit    interfaces.IAuditLog
	users    interfaces.IUserDirectory
	now      func() time.Time
}

func NewDispatcher(notifier interfaces.INotifier, audit interfaces.IAuditLog, users interfaces.IUserDirectory) *Dispatcher {
	return &Dispatcher{notifier: notifier, audit: audit, users: users, now: time.Now}
}

// Dispatch runs every effect, best-effort. Failures are logged and swallowed:
// they are not part of the invariant surface and must never roll back the
// transition that produced them.
func (d *Dispatcher) Dispatch(ctx context.Context, effects []Effect) {
	if d == nil {
		return
	}
	for _, e := range effects {
		if e.Notification != nil {
			d.dispatchNotification(ctx, e)
		}
		if e.Audit != nil && d.audit != nil {
			entry := *e.Audit
			entry.ID = uuid.NewString()
			entry.CreatedAt = d.now().UTC()
			if err := d.audit.Record(ctx, entry); err != nil {
				log.Printf("[effects][audit] record failed action=%s related_id=%s err=%v", entry.Action, entry.RelatedID, err)
			}
		}
	}
}

func (d *Dispatcher) dispatchNotification(ctx context.Context, e Effect) {
	if d.notifier == nil {
		return
	}

	if e.NotifyRole == "" {
		if err := d.notifier.Notify(ctx, *e.Notification); err != nil {
			log.Printf("[effects][notify] send failed user_id=%s err=%v", e.Notification.UserID, err)
		}
		return
	}

	if d.users == nil {
		return
	}
	recipients, err := d.users.ListByRole(ctx, e.NotifyRole)
	if err != nil {
		log.Printf("[effects][notify] role fan-out lookup failed role=%s err=%v", e.NotifyRole, err)
		return
	}
	ns := make([]entities.Notification, 0, len(recipients))
	for _, u := range recipients {
		n := *e.Notification
		n.UserID = u.ID
		n.UserRole = u.Role
		ns = append(ns, n)
	}
	if len(ns) == 0 {
		return
	}
	if err := d.notifier.NotifyMany(ctx, ns); err != nil {
		log.Printf("[effects][notify] bulk send failed role=%s count=%d err=%v", e.NotifyRole, len(ns), err)
	}
}
