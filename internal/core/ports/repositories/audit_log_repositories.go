package repositories

import (
	"context"
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// AuditLogFilter narrows an audit log listing. Zero values mean "no filter".
type AuditLogFilter struct {
	Action             domain.AuditAction
	AffectedCollection string
	PerformedBy        string
	BusinessID         string
	Start              time.Time
	End                time.Time
}

// AuditLogRepository defines persistence operations for audit events.
type AuditLogRepository interface {
	// SaveAuditLog appends one audit record.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs returns a page of audit records newest-first using
	// token-based pagination, together with a token for the next page.
	ListAuditLogs(ctx context.Context, filter AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error)
}
