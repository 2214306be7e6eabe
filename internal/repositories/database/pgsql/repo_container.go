package pgsql

import (
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrderRepo:       newPgxOrderRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		BusinessRepo:    newPgxBusinessRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		AuditLogRepo:    newPgxAuditLogRepository(dbPool),
		JwtSecretRepo:   newPgxJwtSecretRepository(dbPool),
	}
}
