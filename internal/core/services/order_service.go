package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNegativePrice    = errors.New("order price must not be negative")
	ErrNegativeQuantity = errors.New("order quantity must not be negative")
)

// orderService provides core order operations and originates the data for
// the transaction paired with each order.
type orderService struct {
	orderRepo    portsrepo.OrderRepositoryWithTx
	customerRepo portsrepo.CustomerRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryWithTx, customerRepo portsrepo.CustomerRepository) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// Ensure orderService implements the portssvc.OrderSvcFacade interface
var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder creates a new order, resolving (or creating) its customer by
// phone, and returns the data needed to create the paired transaction.
// When tx is nil the whole operation runs in one transaction owned by the
// service; a non-nil tx is used as-is and left for the caller to settle.
// Implements portssvc.OrderSvcFacade
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, tx pgx.Tx) (*portssvc.CreateOrderResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativePrice)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeQuantity)
	}

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.orderRepo.Begin(ctx)
		if err != nil {
			logger.Error("Failed to begin transaction for CreateOrder", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		// No-op once the transaction is committed.
		defer s.orderRepo.Rollback(ctx, tx)
	}

	customer, err := s.resolveOrCreateCustomer(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		OrderID:     uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CustomerID:  customer.CustomerID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, tx, order); err != nil {
		logger.Error("Failed to save order", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if ownTx {
		if err := s.orderRepo.Commit(ctx, tx); err != nil {
			logger.Error("Failed to commit CreateOrder transaction", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	logger.Info("Order created successfully", slog.String("order_id", order.OrderID), slog.String("customer_id", customer.CustomerID))
	return &portssvc.CreateOrderResult{
		Order: order,
		TransactionData: portssvc.TransactionData{
			Amount:  order.DerivedAmount(),
			OrderID: order.OrderID,
		},
	}, nil
}

// resolveOrCreateCustomer finds the customer referenced by the request, first
// by explicit ID and then by phone, and creates a bare customer record when
// the phone is unknown.
func (s *orderService) resolveOrCreateCustomer(ctx context.Context, tx pgx.Tx, req dto.CreateOrderRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CustomerID != "" {
		customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %s", ErrCustomerNotFound, req.CustomerID)
			}
			return nil, fmt.Errorf("failed to find customer by ID %s: %w", req.CustomerID, err)
		}
		return customer, nil
	}

	customer, err := s.customerRepo.FindCustomerByPhone(ctx, tx, req.CustomerPhone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up customer by phone", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find customer by phone: %w", err)
	}

	now := time.Now().UTC()
	created := domain.Customer{
		CustomerID: uuid.NewString(),
		Phone:      req.CustomerPhone,
		Role:       domain.RoleCustomer,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.customerRepo.SaveCustomer(ctx, tx, created); err != nil {
		logger.Error("Failed to create customer for order", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	logger.Info("Customer created for new order", slog.String("customer_id", created.CustomerID))
	return &created, nil
}

// UpdateOrder applies the provided fields to an existing order and reports
// whether the paired transaction amount must be recomputed.
// Implements portssvc.OrderSvcFacade
func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, tx pgx.Tx) (*portssvc.UpdateOrderResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativePrice)
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeQuantity)
	}

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.orderRepo.Begin(ctx)
		if err != nil {
			logger.Error("Failed to begin transaction for UpdateOrder", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer s.orderRepo.Rollback(ctx, tx)
	}

	order, err := s.orderRepo.FindOrderByID(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrOrderNotFound, orderID)
		}
		logger.Error("Failed to find order for update", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	if req.Name != nil {
		order.Name = *req.Name
	}
	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.Category != nil {
		order.Category = *req.Category
	}
	if req.Price != nil {
		order.Price = *req.Price
	}
	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	order.UpdatedAt = time.Now().UTC()

	if err := s.orderRepo.UpdateOrder(ctx, tx, *order); err != nil {
		logger.Error("Failed to update order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	if ownTx {
		if err := s.orderRepo.Commit(ctx, tx); err != nil {
			logger.Error("Failed to commit UpdateOrder transaction", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	result := &portssvc.UpdateOrderResult{
		Order:                     *order,
		RequiresTransactionUpdate: req.TouchesAmount(),
	}
	if result.RequiresTransactionUpdate {
		result.NewAmount = order.DerivedAmount()
	}

	logger.Info("Order updated successfully", slog.String("order_id", orderID), slog.Bool("requires_transaction_update", result.RequiresTransactionUpdate))
	return result, nil
}

// DeleteOrder removes an order and tells the caller to remove the paired
// transaction as well.
// Implements portssvc.OrderSvcFacade
func (s *orderService) DeleteOrder(ctx context.Context, orderID string, tx pgx.Tx) (*portssvc.DeleteOrderResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.orderRepo.Begin(ctx)
		if err != nil {
			logger.Error("Failed to begin transaction for DeleteOrder", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer s.orderRepo.Rollback(ctx, tx)
	}

	deleted, err := s.orderRepo.DeleteOrder(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrOrderNotFound, orderID)
		}
		logger.Error("Failed to delete order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}

	if ownTx {
		if err := s.orderRepo.Commit(ctx, tx); err != nil {
			logger.Error("Failed to commit DeleteOrder transaction", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	logger.Info("Order deleted successfully", slog.String("order_id", orderID))
	return &portssvc.DeleteOrderResult{
		DeletedOrder:                *deleted,
		RequiresTransactionDeletion: true,
	}, nil
}

// GetOrdersByUser lists the orders of one customer, resolved by direct ID or
// by phone. An unknown customer yields an empty list, not an error.
// Implements portssvc.OrderSvcFacade
func (s *orderService) GetOrdersByUser(ctx context.Context, query dto.OrdersByUserQuery) ([]domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customerID := query.CustomerID
	if customerID == "" {
		customer, err := s.customerRepo.FindCustomerByPhone(ctx, nil, query.Phone)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []domain.Order{}, nil
			}
			logger.Error("Failed to resolve customer for order listing", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to find customer by phone: %w", err)
		}
		customerID = customer.CustomerID
	}

	orders, err := s.orderRepo.FindOrdersByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to list orders by customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list orders for customer %s: %w", customerID, err)
	}
	return orders, nil
}

// GetOrdersByDate lists all orders created on the given UTC calendar day,
// both day boundaries inclusive.
// Implements portssvc.OrderSvcFacade
func (s *orderService) GetOrdersByDate(ctx context.Context, date time.Time) ([]domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)

	orders, err := s.orderRepo.FindOrdersByDateRange(ctx, start, end)
	if err != nil {
		logger.Error("Failed to list orders by date", slog.String("error", err.Error()), slog.Time("date", start))
		return nil, fmt.Errorf("failed to list orders for %s: %w", start.Format("2006-01-02"), err)
	}
	return orders, nil
}
