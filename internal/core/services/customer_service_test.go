package services_test

import (
	"context"
	"testing"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/core/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo)
}

// --- CreateCustomer Tests ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:  "Wanjiku",
		Phone: "254766666666",
		Role:  "customer",
	}

	suite.mockCustomerRepo.On("SaveCustomer", ctx, nil, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && c.Phone == req.Phone && c.Role == domain.RoleCustomer && c.CustomerID != ""
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.NotEmpty(customer.CustomerID)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicatePhone() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:  "Wanjiku",
		Phone: "254766666666",
		Role:  "customer",
	}

	suite.mockCustomerRepo.On("SaveCustomer", ctx, nil, mock.AnythingOfType("domain.Customer")).Return(apperrors.ErrDuplicate).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, services.ErrDuplicatePhone)
}

// --- FindCustomerByPhoneOrName Tests ---

func (suite *CustomerServiceTestSuite) TestFindCustomer_DigitsRouteToPhoneLookup() {
	ctx := context.Background()
	phone := "254777777777"
	found := &domain.Customer{CustomerID: uuid.NewString(), Phone: phone}

	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, nil, phone).Return(found, nil).Once()

	customer, err := suite.service.FindCustomerByPhoneOrName(ctx, phone)

	suite.Require().NoError(err)
	suite.Equal(found, customer)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByName", ctx, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestFindCustomer_LeadingPlusStillPhone() {
	ctx := context.Background()
	phone := "+254777777777"
	found := &domain.Customer{CustomerID: uuid.NewString(), Phone: phone}

	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, nil, phone).Return(found, nil).Once()

	customer, err := suite.service.FindCustomerByPhoneOrName(ctx, phone)

	suite.Require().NoError(err)
	suite.Equal(found, customer)
}

func (suite *CustomerServiceTestSuite) TestFindCustomer_TextRoutesToNameLookup() {
	ctx := context.Background()
	found := &domain.Customer{CustomerID: uuid.NewString(), Name: "Njoroge"}

	suite.mockCustomerRepo.On("FindCustomerByName", ctx, "Njoroge").Return(found, nil).Once()

	customer, err := suite.service.FindCustomerByPhoneOrName(ctx, "Njoroge")

	suite.Require().NoError(err)
	suite.Equal(found, customer)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByPhone", ctx, nil, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestFindCustomer_NotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByName", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.FindCustomerByPhoneOrName(ctx, "nobody")

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, services.ErrCustomerNotFound)
}

// --- UpdateCustomerPhone Tests ---

func (suite *CustomerServiceTestSuite) TestUpdateCustomerPhone_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()
	newPhone := "254788888888"
	updated := &domain.Customer{CustomerID: customerID, Phone: newPhone}

	suite.mockCustomerRepo.On("UpdateCustomerPhone", ctx, customerID, newPhone).Return(updated, nil).Once()

	customer, err := suite.service.UpdateCustomerPhone(ctx, customerID, newPhone)

	suite.Require().NoError(err)
	suite.Equal(newPhone, customer.Phone)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomerPhone_DuplicateTarget() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("UpdateCustomerPhone", ctx, customerID, "254799999999").Return(nil, apperrors.ErrDuplicate).Once()

	customer, err := suite.service.UpdateCustomerPhone(ctx, customerID, "254799999999")

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, services.ErrDuplicatePhone)
}

// --- DeleteCustomer Tests ---

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("DeleteCustomer", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.DeleteCustomer(ctx, customerID)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, services.ErrCustomerNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
