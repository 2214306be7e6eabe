package domain

import "time"

// AuditAction names a recordable back-office action.
type AuditAction string

const (
	ActionCreateOrder       AuditAction = "CREATE_ORDER"
	ActionUpdateOrder       AuditAction = "UPDATE_ORDER"
	ActionDeleteOrder       AuditAction = "DELETE_ORDER"
	ActionCreateTransaction AuditAction = "CREATE_TRANSACTION"
	ActionUpdateTransaction AuditAction = "UPDATE_TRANSACTION"
	ActionDeleteTransaction AuditAction = "DELETE_TRANSACTION"
	ActionCreateCustomer    AuditAction = "CREATE_CUSTOMER"
	ActionUpdateCustomer    AuditAction = "UPDATE_CUSTOMER"
	ActionDeleteCustomer    AuditAction = "DELETE_CUSTOMER"
	ActionCreateBusiness    AuditAction = "CREATE_BUSINESS"
	ActionUpdateBusiness    AuditAction = "UPDATE_BUSINESS"
	ActionDeleteBusiness    AuditAction = "DELETE_BUSINESS"
	ActionCreateInvoice     AuditAction = "CREATE_INVOICE"
	ActionDeleteInvoice     AuditAction = "DELETE_INVOICE"
	ActionLogin             AuditAction = "LOGIN"
	ActionRotateKey         AuditAction = "ROTATE_KEY"
)

// AuditLog is an append-only record of one action performed against the store.
type AuditLog struct {
	AuditLogID         string         `json:"auditLogID"`
	Action             AuditAction    `json:"action"`
	PerformedBy        string         `json:"performedBy"`
	AffectedCollection string         `json:"affectedCollection"`
	Timestamp          time.Time      `json:"timestamp"`
	Details            map[string]any `json:"details"`
	IPAddress          string         `json:"ipAddress,omitempty"`
	UserAgent          string         `json:"userAgent,omitempty"`
	BusinessID         string         `json:"businessID,omitempty"`
}
