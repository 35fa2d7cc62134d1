package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// AuditRepository persists the append-only audit trail. There are no update
// or delete operations: entries are immutable once written.
type AuditRepository interface {
	Insert(ctx context.Context, e *domain.AuditEntry) (string, error)
	// FindRecent returns up to limit entries, newest first by created_at.
	FindRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
