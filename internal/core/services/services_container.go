package services

import (
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.OrderSvc = NewOrderService(repos.OrderRepo, repos.CustomerRepo)
	container.TransactionSvc = NewTransactionService(repos.TransactionRepo, repos.OrderRepo)
	container.CustomerSvc = NewCustomerService(repos.CustomerRepo)
	container.BusinessSvc = NewBusinessService(repos.BusinessRepo)
	container.InvoiceSvc = NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo, repos.TransactionRepo)
	container.AuditSvc = NewAuditService(repos.AuditLogRepo)
	container.KeyringSvc = NewKeyringService(repos.JwtSecretRepo, cfg.TokenExpiryDuration, cfg.TokenIssuer)

	return container
}
