package services_test

import (
	"context"
	"testing"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.AuthSvc
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewAuthService(suite.mockRepo)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.PortalUser{Email: "user@dairy.example", FullName: "A User", PasswordHash: hash, Enabled: true}
	suite.mockRepo.On("FindPortalUserByEmail", ctx, "user@dairy.example").Return(user, nil).Once()

	got, err := suite.service.Login(ctx, "user@dairy.example", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.PortalUser{Email: "user@dairy.example", PasswordHash: hash, Enabled: true}
	suite.mockRepo.On("FindPortalUserByEmail", ctx, "user@dairy.example").Return(user, nil).Once()

	got, err := suite.service.Login(ctx, "user@dairy.example", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *AuthServiceTestSuite) TestLogin_DisabledAccountRejected() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.PortalUser{Email: "user@dairy.example", PasswordHash: hash, Enabled: false}
	suite.mockRepo.On("FindPortalUserByEmail", ctx, "user@dairy.example").Return(user, nil).Once()

	// Even the correct password must not unlock a disabled account.
	got, err := suite.service.Login(ctx, "user@dairy.example", "correct-horse")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUserIndistinguishable() {
	ctx := context.Background()
	suite.mockRepo.On("FindPortalUserByEmail", ctx, "ghost@dairy.example").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Login(ctx, "ghost@dairy.example", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown user and wrong password return the same sentinel.
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestLogin_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindPortalUserByEmail", ctx, "user@dairy.example").Return(nil, assert.AnError).Once()

	got, err := suite.service.Login(ctx, "user@dairy.example", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, assert.AnError)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
