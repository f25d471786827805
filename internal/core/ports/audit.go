package ports

import (
	"context"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
}

// AuditRecorder accepts audit entries for asynchronous persistence.
// Record must not block the request path.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
