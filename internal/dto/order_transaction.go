package dto

// The composite endpoints keep an order and its derived transaction paired:
// each response carries both sides of the pair.

// OrderWithTransactionResponse is returned by the composite create.
type OrderWithTransactionResponse struct {
	Order       OrderResponse       `json:"order"`
	Transaction TransactionResponse `json:"transaction"`
}

// OrderUpdateWithTransactionResponse is returned by the composite update.
// Transaction is null when the update did not touch price or quantity.
type OrderUpdateWithTransactionResponse struct {
	Order       OrderResponse        `json:"order"`
	Transaction *TransactionResponse `json:"transaction"`
}

// TransactionDeletionResult reports the outcome of deleting the transaction
// paired with a deleted order.
type TransactionDeletionResult struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// OrderDeleteWithTransactionResponse is returned by the composite delete.
type OrderDeleteWithTransactionResponse struct {
	DeletedOrder      OrderResponse              `json:"deletedOrder"`
	TransactionResult *TransactionDeletionResult `json:"transactionResult,omitempty"`
}
