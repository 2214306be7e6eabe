package dto

import (
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// ListAuditLogsParams defines query parameters for listing audit events.
type ListAuditLogsParams struct {
	Limit              int     `form:"limit,default=20"`
	NextToken          *string `form:"nextToken"`
	Action             string  `form:"action"`
	AffectedCollection string  `form:"affectedCollection"`
	PerformedBy        string  `form:"performedBy"`
	BusinessID         string  `form:"businessID"`
	StartDate          string  `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate            string  `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// AuditLogResponse defines the data returned for one audit record.
type AuditLogResponse struct {
	AuditLogID         string         `json:"auditLogID"`
	Action             string         `json:"action"`
	PerformedBy        string         `json:"performedBy"`
	AffectedCollection string         `json:"affectedCollection"`
	Timestamp          time.Time      `json:"timestamp"`
	Details            map[string]any `json:"details"`
	IPAddress          string         `json:"ipAddress,omitempty"`
	UserAgent          string         `json:"userAgent,omitempty"`
	BusinessID         string         `json:"businessID,omitempty"`
}

// ListAuditLogsResponse wraps a page of audit records.
type ListAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"auditLogs"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToAuditLogResponse converts a domain.AuditLog to AuditLogResponse DTO.
func ToAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditLogID:         a.AuditLogID,
		Action:             string(a.Action),
		PerformedBy:        a.PerformedBy,
		AffectedCollection: a.AffectedCollection,
		Timestamp:          a.Timestamp,
		Details:            a.Details,
		IPAddress:          a.IPAddress,
		UserAgent:          a.UserAgent,
		BusinessID:         a.BusinessID,
	}
}
