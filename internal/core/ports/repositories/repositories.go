package repositories

// RepositoryProvider bundles every repository the service layer needs.
type RepositoryProvider struct {
	OrderRepo       OrderRepositoryWithTx
	TransactionRepo TransactionRepositoryWithTx
	CustomerRepo    CustomerRepository
	BusinessRepo    BusinessRepository
	InvoiceRepo     InvoiceRepository
	AuditLogRepo    AuditLogRepository
	JwtSecretRepo   JwtSecretRepository
}
