package models

import (
	"database/sql"
	"time"
)

// AuditLog maps the audit_logs table. details is stored as jsonb.
type AuditLog struct {
	AuditLogID         string         `db:"audit_log_id"`
	Action             string         `db:"action"`
	PerformedBy        string         `db:"performed_by"`
	AffectedCollection string         `db:"affected_collection"`
	Timestamp          time.Time      `db:"timestamp"`
	Details            []byte         `db:"details"`
	IPAddress          sql.NullString `db:"ip_address"`
	UserAgent          sql.NullString `db:"user_agent"`
	BusinessID         sql.NullString `db:"business_id"`
}
