package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duka-app/duka_backend/internal/core/domain"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

// orderTransactionHandler coordinates the order service and the transaction
// service so the two sides of an order/transaction pair are written together.
// Each composite endpoint makes two separate service calls; a failure in the
// second call is reported to the client, not compensated.
type orderTransactionHandler struct {
	orderService       portssvc.OrderSvcFacade
	transactionService portssvc.TransactionSvcFacade
	auditService       portssvc.AuditSvcFacade
}

// newOrderTransactionHandler creates a new orderTransactionHandler.
func newOrderTransactionHandler(os portssvc.OrderSvcFacade, ts portssvc.TransactionSvcFacade, as portssvc.AuditSvcFacade) *orderTransactionHandler {
	return &orderTransactionHandler{
		orderService:       os,
		transactionService: ts,
		auditService:       as,
	}
}

// registerOrderTransactionRoutes registers the composite order-transaction routes.
func registerOrderTransactionRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade, ts portssvc.TransactionSvcFacade, as portssvc.AuditSvcFacade) {
	h := newOrderTransactionHandler(os, ts, as)

	ot := rg.Group("/order-transactions")
	{
		ot.POST("", h.createOrderWithTransaction)
		ot.PUT("/:orderId", h.updateOrderWithTransaction)
		ot.DELETE("/:orderId", h.deleteOrderWithTransaction)
		ot.GET("/orders", h.getOrders)
		ot.GET("/transactions/:id", h.getTransaction)
	}
}

// createOrderWithTransaction godoc
// @Summary Create an order with its paired transaction
// @Description Creates an order, then creates the income transaction derived from it (amount = price * quantity).
// @Tags order-transactions
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderWithTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /order-transactions [post]
func (h *orderTransactionHandler) createOrderWithTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for composite order create", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	orderResult, err := h.orderService.CreateOrder(c.Request.Context(), req, nil)
	if err != nil {
		logger.Warn("Composite order create failed at order step", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransactionForOrder(
		c.Request.Context(),
		orderResult.TransactionData.OrderID,
		orderResult.TransactionData.Amount,
		domain.Income,
		nil,
	)
	if err != nil {
		// The order already committed; the client learns about the missing
		// transaction and can retry via the transaction endpoints.
		logger.Warn("Composite order create failed at transaction step", slog.String("error", err.Error()), slog.String("order_id", orderResult.Order.OrderID))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.recordAudit(c, domain.ActionCreateOrder, "orders", map[string]any{
		"orderId":       orderResult.Order.OrderID,
		"transactionId": txn.TransactionID,
	})

	c.JSON(http.StatusCreated, dto.OrderWithTransactionResponse{
		Order:       dto.ToOrderResponse(&orderResult.Order),
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// updateOrderWithTransaction godoc
// @Summary Update an order and its paired transaction
// @Description Updates an order; when price or quantity changed, the paired transaction amount is recomputed.
// @Tags order-transactions
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param order body dto.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} dto.OrderUpdateWithTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /order-transactions/{orderId} [put]
func (h *orderTransactionHandler) updateOrderWithTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderId")

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for composite order update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updateResult, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req, nil)
	if err != nil {
		logger.Warn("Composite order update failed at order step", slog.String("error", err.Error()), slog.String("order_id", orderID))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var txnResponse *dto.TransactionResponse
	if updateResult.RequiresTransactionUpdate {
		txn, err := h.transactionService.UpdateTransactionForOrder(c.Request.Context(), orderID, updateResult.NewAmount, nil)
		if err != nil {
			logger.Warn("Composite order update failed at transaction step", slog.String("error", err.Error()), slog.String("order_id", orderID))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		resp := dto.ToTransactionResponse(txn)
		txnResponse = &resp
	}

	h.recordAudit(c, domain.ActionUpdateOrder, "orders", map[string]any{
		"orderId":            orderID,
		"transactionUpdated": updateResult.RequiresTransactionUpdate,
	})

	c.JSON(http.StatusOK, dto.OrderUpdateWithTransactionResponse{
		Order:       dto.ToOrderResponse(&updateResult.Order),
		Transaction: txnResponse,
	})
}

// deleteOrderWithTransaction godoc
// @Summary Delete an order and its paired transaction
// @Description Deletes an order, then deletes the transaction derived from it.
// @Tags order-transactions
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} dto.OrderDeleteWithTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /order-transactions/{orderId} [delete]
func (h *orderTransactionHandler) deleteOrderWithTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderId")

	deleteResult, err := h.orderService.DeleteOrder(c.Request.Context(), orderID, nil)
	if err != nil {
		logger.Warn("Composite order delete failed at order step", slog.String("error", err.Error()), slog.String("order_id", orderID))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var txnResult *dto.TransactionDeletionResult
	if deleteResult.RequiresTransactionDeletion {
		if err := h.transactionService.DeleteTransactionForOrder(c.Request.Context(), orderID, nil); err != nil {
			logger.Warn("Composite order delete failed at transaction step", slog.String("error", err.Error()), slog.String("order_id", orderID))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		txnResult = &dto.TransactionDeletionResult{Success: true, OrderID: orderID}
	}

	h.recordAudit(c, domain.ActionDeleteOrder, "orders", map[string]any{
		"orderId": orderID,
	})

	c.JSON(http.StatusOK, dto.OrderDeleteWithTransactionResponse{
		DeletedOrder:      dto.ToOrderResponse(&deleteResult.DeletedOrder),
		TransactionResult: txnResult,
	})
}

// getOrders godoc
// @Summary List orders for a customer
// @Description Lists the orders of one customer, resolved by customer ID or phone.
// @Tags order-transactions
// @Produce json
// @Param customerID query string false "Customer ID"
// @Param phone query string false "Customer phone"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /order-transactions/orders [get]
func (h *orderTransactionHandler) getOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.OrdersByUserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	orders, err := h.orderService.GetOrdersByUser(c.Request.Context(), query)
	if err != nil {
		logger.Warn("Order listing failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves one transaction by its identifier.
// @Tags order-transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /order-transactions/transactions/{id} [get]
func (h *orderTransactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txn, err := h.transactionService.FindTransaction(c.Request.Context(), dto.FindTransactionQuery{TransactionID: c.Param("id")})
	if err != nil {
		logger.Warn("Transaction lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// recordAudit captures the request context details of a composite operation.
func (h *orderTransactionHandler) recordAudit(c *gin.Context, action domain.AuditAction, collection string, details map[string]any) {
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	h.auditService.Record(c.Request.Context(), domain.AuditLog{
		Action:             action,
		PerformedBy:        businessID,
		AffectedCollection: collection,
		Details:            details,
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		BusinessID:         businessID,
	})
}
