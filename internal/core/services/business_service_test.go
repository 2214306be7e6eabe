package services_test

import (
	"context"
	"testing"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/core/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindBusinessByPhone(ctx context.Context, phone string) (*domain.Business, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) DeleteBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

// --- Test Suite ---
type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	service          portssvc.BusinessSvcFacade
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo)
}

// --- RegisterBusiness Tests ---

func (suite *BusinessServiceTestSuite) TestRegisterBusiness_HashesPassword() {
	ctx := context.Background()
	password := "hunter2-but-longer"
	req := dto.CreateBusinessRequest{
		Name:     "Duka la Mama Njeri",
		Phone:    "254711000000",
		Password: password,
	}

	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.MatchedBy(func(b domain.Business) bool {
		return b.Name == req.Name && b.PasswordHash != password && b.PasswordHash != ""
	})).Return(nil).Once()

	business, err := suite.service.RegisterBusiness(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(business.BusinessID)
	suite.NotEqual(password, business.PasswordHash)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestRegisterBusiness_DuplicatePhone() {
	ctx := context.Background()
	req := dto.CreateBusinessRequest{
		Name:     "Duka Mbili",
		Phone:    "254711000000",
		Password: "some-password",
	}

	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business")).Return(apperrors.ErrDuplicate).Once()

	business, err := suite.service.RegisterBusiness(ctx, req)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- Authenticate Tests ---

func (suite *BusinessServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	business := &domain.Business{
		BusinessID:   uuid.NewString(),
		Phone:        "254722000000",
		PasswordHash: hash,
	}

	suite.mockBusinessRepo.On("FindBusinessByPhone", ctx, business.Phone).Return(business, nil).Once()

	got, err := suite.service.Authenticate(ctx, business.Phone, password)

	suite.Require().NoError(err)
	suite.Equal(business.BusinessID, got.BusinessID)
}

func (suite *BusinessServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	business := &domain.Business{
		BusinessID:   uuid.NewString(),
		Phone:        "254722000001",
		PasswordHash: hash,
	}

	suite.mockBusinessRepo.On("FindBusinessByPhone", ctx, business.Phone).Return(business, nil).Once()

	got, err := suite.service.Authenticate(ctx, business.Phone, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *BusinessServiceTestSuite) TestAuthenticate_UnknownPhoneSameError() {
	ctx := context.Background()
	phone := "254722000002"

	suite.mockBusinessRepo.On("FindBusinessByPhone", ctx, phone).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, phone, "any-password")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown phone and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

// --- GetBusiness Tests ---

func (suite *BusinessServiceTestSuite) TestGetBusiness_NotFound() {
	ctx := context.Background()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetBusiness(ctx, businessID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, services.ErrBusinessNotFound)
}

// --- UpdateBusiness Tests ---

func (suite *BusinessServiceTestSuite) TestUpdateBusiness_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	businessID := uuid.NewString()
	existing := &domain.Business{
		BusinessID: businessID,
		Name:       "Old Name",
		Industry:   "retail",
		Phone:      "254733000000",
	}
	newName := "New Name"
	req := dto.UpdateBusinessRequest{Name: &newName}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(existing, nil).Once()
	suite.mockBusinessRepo.On("UpdateBusiness", ctx, mock.MatchedBy(func(b domain.Business) bool {
		return b.Name == newName && b.Industry == "retail"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateBusiness(ctx, businessID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
