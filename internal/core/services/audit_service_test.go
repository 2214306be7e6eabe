package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/core/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		token = &tokenVal
	}
	return args.Get(0).([]domain.AuditLog), token, args.Error(2)
}

// --- Test Suite ---
type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo *MockAuditLogRepository
	service       portssvc.AuditSvcFacade
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewAuditService(suite.mockAuditRepo)
}

// --- Record Tests ---

func (suite *AuditServiceTestSuite) TestRecord_FillsIDAndTimestamp() {
	ctx := context.Background()

	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(e domain.AuditLog) bool {
		return e.AuditLogID != "" && !e.Timestamp.IsZero() && e.Action == domain.ActionCreateOrder
	})).Return(nil).Once()

	suite.service.Record(ctx, domain.AuditLog{
		Action:             domain.ActionCreateOrder,
		PerformedBy:        uuid.NewString(),
		AffectedCollection: "orders",
	})

	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestRecord_SwallowsRepoError() {
	ctx := context.Background()

	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).Return(assert.AnError).Once()

	// Must not panic and has no error to return.
	suite.service.Record(ctx, domain.AuditLog{Action: domain.ActionLogin})

	suite.mockAuditRepo.AssertExpectations(suite.T())
}

// --- ListAuditLogs Tests ---

func (suite *AuditServiceTestSuite) TestListAuditLogs_DefaultsAndCapsLimit() {
	ctx := context.Background()

	suite.mockAuditRepo.On("ListAuditLogs", ctx, mock.Anything, 20, (*string)(nil)).Return([]domain.AuditLog{}, nil, nil).Once()
	_, _, err := suite.service.ListAuditLogs(ctx, dto.ListAuditLogsParams{})
	suite.Require().NoError(err)

	suite.mockAuditRepo.On("ListAuditLogs", ctx, mock.Anything, 100, (*string)(nil)).Return([]domain.AuditLog{}, nil, nil).Once()
	_, _, err = suite.service.ListAuditLogs(ctx, dto.ListAuditLogsParams{Limit: 5000})
	suite.Require().NoError(err)

	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_DateWindowInclusive() {
	ctx := context.Background()

	wantStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Millisecond)

	suite.mockAuditRepo.On("ListAuditLogs", ctx, mock.MatchedBy(func(f portsrepo.AuditLogFilter) bool {
		return f.Start.Equal(wantStart) && f.End.Equal(wantEnd)
	}), 20, (*string)(nil)).Return([]domain.AuditLog{}, nil, nil).Once()

	_, _, err := suite.service.ListAuditLogs(ctx, dto.ListAuditLogsParams{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-02",
	})

	suite.Require().NoError(err)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_BadDateRejected() {
	ctx := context.Background()

	_, _, err := suite.service.ListAuditLogs(ctx, dto.ListAuditLogsParams{StartDate: "01-06-2025"})

	suite.Require().Error(err)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "ListAuditLogs", ctx, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_PassesTokenThrough() {
	ctx := context.Background()
	inToken := "opaque-cursor"
	logs := []domain.AuditLog{{AuditLogID: uuid.NewString()}}

	suite.mockAuditRepo.On("ListAuditLogs", ctx, mock.Anything, 20, &inToken).Return(logs, "next-cursor", nil).Once()

	got, next, err := suite.service.ListAuditLogs(ctx, dto.ListAuditLogsParams{NextToken: &inToken})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Require().NotNil(next)
	suite.Equal("next-cursor", *next)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
