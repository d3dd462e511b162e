package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// AuditRecorder persists audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink accepts audit events off the request path. Enqueue must not
// block the caller beyond channel capacity and must never return an error
// to the auth flow.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
