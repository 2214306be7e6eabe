package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/core/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// stubTx is a non-nil pgx.Tx for tests. None of its methods are expected to
// be called; services only pass it through to repositories.
type stubTx struct {
	pgx.Tx
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, tx pgx.Tx, order domain.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, tx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByCustomerID(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByDateRange(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, tx pgx.Tx, order domain.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, tx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockOrderRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockOrderRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, tx pgx.Tx, customer domain.Customer) error {
	args := m.Called(ctx, tx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByPhone(ctx context.Context, tx pgx.Tx, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, tx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomerPhone(ctx context.Context, customerID, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo    *MockOrderRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockCustomerRepo)
}

// --- CreateOrder Tests ---

func (suite *OrderServiceTestSuite) TestCreateOrder_Success_NewCustomer() {
	ctx := context.Background()
	phone := "254712345678"
	req := dto.CreateOrderRequest{
		Name:          "Maize flour",
		Price:         decimal.NewFromInt(120),
		Quantity:      3,
		CustomerPhone: phone,
	}
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	// Unknown phone: a bare customer record is created inside the same transaction.
	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, tx, phone).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, tx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Phone == phone && c.Role == domain.RoleCustomer && c.CustomerID != ""
	})).Return(nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, tx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Name == "Maize flour" && o.Quantity == 3 && o.CustomerID != ""
	})).Return(nil).Once()
	suite.mockOrderRepo.On("Commit", ctx, tx).Return(nil).Once()

	result, err := suite.service.CreateOrder(ctx, req, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.Order.OrderID)
	suite.Equal(result.Order.OrderID, result.TransactionData.OrderID)
	suite.True(result.TransactionData.Amount.Equal(decimal.NewFromInt(360)))

	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success_ExistingCustomer() {
	ctx := context.Background()
	phone := "254700000001"
	existing := &domain.Customer{CustomerID: uuid.NewString(), Phone: phone}
	req := dto.CreateOrderRequest{
		Name:          "Soap",
		Price:         decimal.NewFromInt(50),
		Quantity:      2,
		CustomerPhone: phone,
	}
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, tx, phone).Return(existing, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, tx, mock.MatchedBy(func(o domain.Order) bool {
		return o.CustomerID == existing.CustomerID
	})).Return(nil).Once()
	suite.mockOrderRepo.On("Commit", ctx, tx).Return(nil).Once()

	result, err := suite.service.CreateOrder(ctx, req, nil)

	suite.Require().NoError(err)
	suite.Equal(existing.CustomerID, result.Order.CustomerID)

	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_CallerOwnedTx_NotSettled() {
	ctx := context.Background()
	phone := "254700000002"
	existing := &domain.Customer{CustomerID: uuid.NewString(), Phone: phone}
	req := dto.CreateOrderRequest{
		Name:          "Sugar",
		Price:         decimal.NewFromInt(10),
		Quantity:      1,
		CustomerPhone: phone,
	}
	tx := &stubTx{}

	// No Begin/Commit/Rollback expectations: the caller owns the session.
	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, tx, phone).Return(existing, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, tx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	result, err := suite.service.CreateOrder(ctx, req, tx)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)

	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Begin", ctx)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Commit", ctx, tx)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Rollback", ctx, tx)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		Name:          "Broken",
		Price:         decimal.NewFromInt(-5),
		Quantity:      1,
		CustomerPhone: "254700000003",
	}

	result, err := suite.service.CreateOrder(ctx, req, nil)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrNegativePrice)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Begin", ctx)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_CustomerIDNotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateOrderRequest{
		Name:          "Bread",
		Price:         decimal.NewFromInt(60),
		Quantity:      1,
		CustomerPhone: "254700000004",
		CustomerID:    customerID,
	}
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CreateOrder(ctx, req, nil)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrCustomerNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Commit", ctx, tx)
}

// --- UpdateOrder Tests ---

func (suite *OrderServiceTestSuite) TestUpdateOrder_PriceChangeRequiresTransactionUpdate() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{
		OrderID:  orderID,
		Name:     "Rice",
		Price:    decimal.NewFromInt(100),
		Quantity: 4,
	}
	newPrice := decimal.NewFromInt(150)
	req := dto.UpdateOrderRequest{Price: &newPrice}
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	suite.mockOrderRepo.On("FindOrderByID", ctx, tx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx, tx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Price.Equal(newPrice) && o.Quantity == 4
	})).Return(nil).Once()
	suite.mockOrderRepo.On("Commit", ctx, tx).Return(nil).Once()

	result, err := suite.service.UpdateOrder(ctx, orderID, req, nil)

	suite.Require().NoError(err)
	suite.True(result.RequiresTransactionUpdate)
	suite.True(result.NewAmount.Equal(decimal.NewFromInt(600)))

	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_NameOnlyLeavesTransactionAlone() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{
		OrderID:  orderID,
		Name:     "Rice",
		Price:    decimal.NewFromInt(100),
		Quantity: 4,
	}
	newName := "Basmati rice"
	req := dto.UpdateOrderRequest{Name: &newName}
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	suite.mockOrderRepo.On("FindOrderByID", ctx, tx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx, tx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Name == newName
	})).Return(nil).Once()
	suite.mockOrderRepo.On("Commit", ctx, tx).Return(nil).Once()

	result, err := suite.service.UpdateOrder(ctx, orderID, req, nil)

	suite.Require().NoError(err)
	suite.False(result.RequiresTransactionUpdate)

	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()
	newName := "whatever"
	req := dto.UpdateOrderRequest{Name: &newName}
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	suite.mockOrderRepo.On("FindOrderByID", ctx, tx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.UpdateOrder(ctx, orderID, req, nil)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrOrderNotFound)
}

// --- DeleteOrder Tests ---

func (suite *OrderServiceTestSuite) TestDeleteOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	deleted := &domain.Order{OrderID: orderID, Name: "Gone"}
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	suite.mockOrderRepo.On("DeleteOrder", ctx, tx, orderID).Return(deleted, nil).Once()
	suite.mockOrderRepo.On("Commit", ctx, tx).Return(nil).Once()

	result, err := suite.service.DeleteOrder(ctx, orderID, nil)

	suite.Require().NoError(err)
	suite.Equal(orderID, result.DeletedOrder.OrderID)
	suite.True(result.RequiresTransactionDeletion)

	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()
	tx := &stubTx{}

	suite.mockOrderRepo.On("Begin", ctx).Return(tx, nil).Once()
	suite.mockOrderRepo.On("Rollback", ctx, tx).Return(nil)
	suite.mockOrderRepo.On("DeleteOrder", ctx, tx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.DeleteOrder(ctx, orderID, nil)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrOrderNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Commit", ctx, tx)
}

// --- GetOrdersByUser Tests ---

func (suite *OrderServiceTestSuite) TestGetOrdersByUser_ByPhone() {
	ctx := context.Background()
	phone := "254711111111"
	customer := &domain.Customer{CustomerID: uuid.NewString(), Phone: phone}
	orders := []domain.Order{{OrderID: uuid.NewString(), CustomerID: customer.CustomerID}}

	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, nil, phone).Return(customer, nil).Once()
	suite.mockOrderRepo.On("FindOrdersByCustomerID", ctx, customer.CustomerID).Return(orders, nil).Once()

	got, err := suite.service.GetOrdersByUser(ctx, dto.OrdersByUserQuery{Phone: phone})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrdersByUser_UnknownPhoneYieldsEmptyList() {
	ctx := context.Background()
	phone := "254722222222"

	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, nil, phone).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetOrdersByUser(ctx, dto.OrdersByUserQuery{Phone: phone})

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "FindOrdersByCustomerID", ctx, mock.Anything)
}

// --- GetOrdersByDate Tests ---

func (suite *OrderServiceTestSuite) TestGetOrdersByDate_UsesInclusiveUTCDayWindow() {
	ctx := context.Background()
	date := time.Date(2025, time.March, 14, 17, 45, 12, 0, time.FixedZone("EAT", 3*3600))

	wantStart := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	wantEnd := wantStart.Add(24*time.Hour - time.Millisecond)

	suite.mockOrderRepo.On("FindOrdersByDateRange", ctx, wantStart, wantEnd).Return([]domain.Order{}, nil).Once()

	got, err := suite.service.GetOrdersByDate(ctx, date)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrdersByDate_ZonedInputCrossingMidnightUsesUTCDay() {
	ctx := context.Background()
	// 23:00 in UTC-5 is already 04:00 the next day in UTC.
	date := time.Date(2026, time.January, 1, 23, 0, 0, 0, time.FixedZone("EST", -5*3600))

	wantStart := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	wantEnd := wantStart.Add(24*time.Hour - time.Millisecond)

	suite.mockOrderRepo.On("FindOrdersByDateRange", ctx, wantStart, wantEnd).Return([]domain.Order{}, nil).Once()

	got, err := suite.service.GetOrdersByDate(ctx, date)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrdersByDate_RepoError() {
	ctx := context.Background()
	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	suite.mockOrderRepo.On("FindOrdersByDateRange", ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	got, err := suite.service.GetOrdersByDate(ctx, date)

	suite.Require().Error(err)
	suite.Nil(got)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
