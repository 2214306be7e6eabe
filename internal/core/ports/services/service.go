package services

// ServiceContainer bundles every service facade the handler layer needs.
type ServiceContainer struct {
	OrderSvc       OrderSvcFacade
	TransactionSvc TransactionSvcFacade
	CustomerSvc    CustomerSvcFacade
	BusinessSvc    BusinessSvcFacade
	InvoiceSvc     InvoiceSvcFacade
	AuditSvc       AuditSvcFacade
	KeyringSvc     KeyringSvcFacade
}
