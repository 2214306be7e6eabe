package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/core/services"
	"github.com/duka-app/duka_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JwtSecretRepository ---
type MockJwtSecretRepository struct {
	mock.Mock
}

func (m *MockJwtSecretRepository) SaveJwtSecret(ctx context.Context, secret domain.JwtSecret) error {
	args := m.Called(ctx, secret)
	return args.Error(0)
}

func (m *MockJwtSecretRepository) FindLatestJwtSecret(ctx context.Context) (*domain.JwtSecret, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JwtSecret), args.Error(1)
}

func (m *MockJwtSecretRepository) FindRecentJwtSecrets(ctx context.Context, n int) ([]domain.JwtSecret, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JwtSecret), args.Error(1)
}

// --- Test Suite ---
type KeyringServiceTestSuite struct {
	suite.Suite
	mockSecretRepo *MockJwtSecretRepository
	service        portssvc.KeyringSvcFacade
}

func (suite *KeyringServiceTestSuite) SetupTest() {
	suite.mockSecretRepo = new(MockJwtSecretRepository)
	suite.service = services.NewKeyringService(suite.mockSecretRepo, time.Hour, "duka-backend-test")
}

func (suite *KeyringServiceTestSuite) newStoredSecret(version int) domain.JwtSecret {
	key, err := utils.GenerateSecureRandomString(32)
	suite.Require().NoError(err)
	return domain.JwtSecret{
		SecretID:  uuid.NewString(),
		Key:       key,
		Version:   version,
		CreatedAt: time.Now().UTC(),
	}
}

// --- Current Tests ---

func (suite *KeyringServiceTestSuite) TestCurrent_AutoCreatesVersionOne() {
	ctx := context.Background()

	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSecretRepo.On("SaveJwtSecret", ctx, mock.MatchedBy(func(s domain.JwtSecret) bool {
		return s.Version == 1 && len(s.Key) == 64 && s.SecretID != ""
	})).Return(nil).Once()

	secret, err := suite.service.Current(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, secret.Version)
	suite.mockSecretRepo.AssertExpectations(suite.T())
}

func (suite *KeyringServiceTestSuite) TestCurrent_CachesAcrossCalls() {
	ctx := context.Background()
	stored := suite.newStoredSecret(3)

	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(&stored, nil).Once()

	first, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	second, err := suite.service.Current(ctx)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	// Only the first call may hit the store.
	suite.mockSecretRepo.AssertNumberOfCalls(suite.T(), "FindLatestJwtSecret", 1)
}

func (suite *KeyringServiceTestSuite) TestInvalidate_DropsCache() {
	ctx := context.Background()
	stored := suite.newStoredSecret(2)

	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(&stored, nil).Twice()

	_, err := suite.service.Current(ctx)
	suite.Require().NoError(err)

	suite.service.Invalidate()

	_, err = suite.service.Current(ctx)
	suite.Require().NoError(err)

	suite.mockSecretRepo.AssertNumberOfCalls(suite.T(), "FindLatestJwtSecret", 2)
}

// --- Rotate Tests ---

func (suite *KeyringServiceTestSuite) TestRotate_BumpsVersion() {
	ctx := context.Background()
	stored := suite.newStoredSecret(4)

	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(&stored, nil).Once()
	suite.mockSecretRepo.On("SaveJwtSecret", ctx, mock.MatchedBy(func(s domain.JwtSecret) bool {
		return s.Version == 5 && s.Key != stored.Key
	})).Return(nil).Once()

	rotated, err := suite.service.Rotate(ctx)

	suite.Require().NoError(err)
	suite.Equal(5, rotated.Version)

	// The rotated key becomes the cached current key.
	current, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal(rotated, current)

	suite.mockSecretRepo.AssertExpectations(suite.T())
}

func (suite *KeyringServiceTestSuite) TestRotate_EmptyStoreStartsAtVersionOne() {
	ctx := context.Background()

	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSecretRepo.On("SaveJwtSecret", ctx, mock.MatchedBy(func(s domain.JwtSecret) bool {
		return s.Version == 1
	})).Return(nil).Once()

	rotated, err := suite.service.Rotate(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, rotated.Version)
}

// --- Token Tests ---

func (suite *KeyringServiceTestSuite) TestIssueAndVerifyToken_RoundTrip() {
	ctx := context.Background()
	stored := suite.newStoredSecret(1)
	business := &domain.Business{BusinessID: uuid.NewString(), Phone: "254733333333"}

	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(&stored, nil).Once()
	suite.mockSecretRepo.On("FindRecentJwtSecrets", ctx, 2).Return([]domain.JwtSecret{stored}, nil).Once()

	token, err := suite.service.IssueToken(ctx, business)
	suite.Require().NoError(err)
	suite.NotEmpty(token)

	claims, err := suite.service.VerifyToken(ctx, token)
	suite.Require().NoError(err)
	suite.Equal(business.BusinessID, claims.BusinessID)
	suite.Equal(business.Phone, claims.Phone)
}

func (suite *KeyringServiceTestSuite) TestVerifyToken_AcceptsPreviousKeyAfterRotation() {
	ctx := context.Background()
	oldSecret := suite.newStoredSecret(1)
	newSecret := suite.newStoredSecret(2)
	business := &domain.Business{BusinessID: uuid.NewString(), Phone: "254744444444"}

	// Token issued with version 1, verified while version 2 is current.
	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(&oldSecret, nil).Once()
	suite.mockSecretRepo.On("FindRecentJwtSecrets", ctx, 2).Return([]domain.JwtSecret{newSecret, oldSecret}, nil).Once()

	token, err := suite.service.IssueToken(ctx, business)
	suite.Require().NoError(err)

	claims, err := suite.service.VerifyToken(ctx, token)
	suite.Require().NoError(err)
	suite.Equal(business.BusinessID, claims.BusinessID)
}

func (suite *KeyringServiceTestSuite) TestVerifyToken_RejectsUnknownKey() {
	ctx := context.Background()
	issued := suite.newStoredSecret(1)
	unrelated := suite.newStoredSecret(2)
	business := &domain.Business{BusinessID: uuid.NewString(), Phone: "254755555555"}

	suite.mockSecretRepo.On("FindLatestJwtSecret", ctx).Return(&issued, nil).Once()
	suite.mockSecretRepo.On("FindRecentJwtSecrets", ctx, 2).Return([]domain.JwtSecret{unrelated}, nil).Once()

	token, err := suite.service.IssueToken(ctx, business)
	suite.Require().NoError(err)

	claims, err := suite.service.VerifyToken(ctx, token)
	suite.Require().Error(err)
	suite.Nil(claims)
	suite.ErrorIs(err, services.ErrInvalidToken)
}

func (suite *KeyringServiceTestSuite) TestVerifyToken_RejectsGarbage() {
	ctx := context.Background()
	stored := suite.newStoredSecret(1)

	suite.mockSecretRepo.On("FindRecentJwtSecrets", ctx, 2).Return([]domain.JwtSecret{stored}, nil).Once()

	claims, err := suite.service.VerifyToken(ctx, "not.a.token")

	suite.Require().Error(err)
	suite.Nil(claims)
	suite.ErrorIs(err, services.ErrInvalidToken)
}

func TestKeyringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KeyringServiceTestSuite))
}
