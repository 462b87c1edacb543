package domain

import "time"

// Audit actions recorded for admin mutations.
const (
	AuditEventCreated = "event.created"
	AuditEventUpdated = "event.updated"
	AuditEventDeleted = "event.deleted"
)

// AuditEntry records a single administrative mutation. Entries are written to
// the audit log off the request path.
type AuditEntry struct {
	ActorID  string
	Action   string
	TargetID string
	At       time.Time
}
