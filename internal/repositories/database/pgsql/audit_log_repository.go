package pgsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	"github.com/duka-app/duka_backend/internal/models"
	"github.com/duka-app/duka_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(db *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAuditLogRepository implements portsrepo.AuditLogRepository
var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

func toModelAuditLog(d domain.AuditLog) (models.AuditLog, error) {
	details, err := json.Marshal(d.Details)
	if err != nil {
		return models.AuditLog{}, fmt.Errorf("failed to marshal audit details: %w", err)
	}
	return models.AuditLog{
		AuditLogID:         d.AuditLogID,
		Action:             string(d.Action),
		PerformedBy:        d.PerformedBy,
		AffectedCollection: d.AffectedCollection,
		Timestamp:          d.Timestamp,
		Details:            details,
		IPAddress:          sql.NullString{String: d.IPAddress, Valid: d.IPAddress != ""},
		UserAgent:          sql.NullString{String: d.UserAgent, Valid: d.UserAgent != ""},
		BusinessID:         sql.NullString{String: d.BusinessID, Valid: d.BusinessID != ""},
	}, nil
}

func toDomainAuditLog(m models.AuditLog) (domain.AuditLog, error) {
	var details map[string]any
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &details); err != nil {
			return domain.AuditLog{}, fmt.Errorf("failed to unmarshal audit details: %w", err)
		}
	}
	return domain.AuditLog{
		AuditLogID:         m.AuditLogID,
		Action:             domain.AuditAction(m.Action),
		PerformedBy:        m.PerformedBy,
		AffectedCollection: m.AffectedCollection,
		Timestamp:          m.Timestamp,
		Details:            details,
		IPAddress:          m.IPAddress.String,
		UserAgent:          m.UserAgent.String,
		BusinessID:         m.BusinessID.String,
	}, nil
}

func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m, err := toModelAuditLog(entry)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO audit_logs (audit_log_id, action, performed_by, affected_collection, timestamp, details, ip_address, user_agent, business_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.AuditLogID,
		m.Action,
		m.PerformedBy,
		m.AffectedCollection,
		m.Timestamp,
		m.Details,
		m.IPAddress,
		m.UserAgent,
		m.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}
	return nil
}

// ListAuditLogs pages through audit records newest-first using keyset
// pagination on (timestamp, audit_log_id).
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	var conditions []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Action != "" {
		conditions = append(conditions, "action = "+arg(string(filter.Action)))
	}
	if filter.AffectedCollection != "" {
		conditions = append(conditions, "affected_collection = "+arg(filter.AffectedCollection))
	}
	if filter.PerformedBy != "" {
		conditions = append(conditions, "performed_by = "+arg(filter.PerformedBy))
	}
	if filter.BusinessID != "" {
		conditions = append(conditions, "business_id = "+arg(filter.BusinessID))
	}
	if !filter.Start.IsZero() {
		conditions = append(conditions, "timestamp >= "+arg(filter.Start))
	}
	if !filter.End.IsZero() {
		conditions = append(conditions, "timestamp <= "+arg(filter.End))
	}
	if nextToken != nil && *nextToken != "" {
		ts, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", err)
		}
		conditions = append(conditions, fmt.Sprintf("(timestamp, audit_log_id) < (%s, %s)", arg(ts), arg(id)))
	}

	query := `SELECT audit_log_id, action, performed_by, affected_collection, timestamp, details, ip_address, user_agent, business_id FROM audit_logs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Fetch one extra row to learn whether another page exists.
	query += " ORDER BY timestamp DESC, audit_log_id DESC LIMIT " + arg(limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.AuditLog, 0, limit)
	for rows.Next() {
		var m models.AuditLog
		if err := rows.Scan(
			&m.AuditLogID,
			&m.Action,
			&m.PerformedBy,
			&m.AffectedCollection,
			&m.Timestamp,
			&m.Details,
			&m.IPAddress,
			&m.UserAgent,
			&m.BusinessID,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		d, err := toDomainAuditLog(m)
		if err != nil {
			return nil, nil, err
		}
		logs = append(logs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating audit log rows: %w", err)
	}

	var token *string
	if len(logs) > limit {
		logs = logs[:limit]
		last := logs[len(logs)-1]
		encoded := pagination.EncodeToken(last.Timestamp, last.AuditLogID)
		token = &encoded
	}
	return logs, token, nil
}
