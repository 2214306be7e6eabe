package services

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/duka-app/duka_backend/internal/dto"
)

// AuditSvcFacade records and lists back-office audit events. Recording is
// best-effort: failures are logged, never propagated, so audit trouble cannot
// fail the operation being audited.
type AuditSvcFacade interface {
	// Record appends one audit event. It never returns an error.
	Record(ctx context.Context, entry domain.AuditLog)

	// ListAuditLogs returns a filtered page of audit events newest-first.
	ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) ([]domain.AuditLog, *string, error)
}
