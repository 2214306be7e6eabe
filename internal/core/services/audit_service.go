package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

const (
	defaultAuditPageSize = 20
	maxAuditPageSize     = 100
)

// auditService records and lists back-office audit events.
type auditService struct {
	auditRepo portsrepo.AuditLogRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditLogRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends one audit event. Failures are logged and swallowed so that
// audit trouble can never fail the operation being audited.
// Implements portssvc.AuditSvcFacade
func (s *auditService) Record(ctx context.Context, entry domain.AuditLog) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if entry.AuditLogID == "" {
		entry.AuditLogID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		logger.Error("Failed to record audit event", slog.String("error", err.Error()), slog.String("action", string(entry.Action)))
	}
}

// ListAuditLogs returns a filtered page of audit events newest-first.
// Implements portssvc.AuditSvcFacade
func (s *auditService) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) ([]domain.AuditLog, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	filter := portsrepo.AuditLogFilter{
		Action:             domain.AuditAction(params.Action),
		AffectedCollection: params.AffectedCollection,
		PerformedBy:        params.PerformedBy,
		BusinessID:         params.BusinessID,
	}
	if params.StartDate != "" {
		start, err := time.Parse("2006-01-02", params.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start date %q: %w", params.StartDate, err)
		}
		filter.Start = start
	}
	if params.EndDate != "" {
		end, err := time.Parse("2006-01-02", params.EndDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end date %q: %w", params.EndDate, err)
		}
		// End of the named day, inclusive.
		filter.End = end.Add(24*time.Hour - time.Millisecond)
	}

	logs, nextToken, err := s.auditRepo.ListAuditLogs(ctx, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list audit logs", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nextToken, nil
}
