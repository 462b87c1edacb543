package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// AuditRepository persists admin audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
