package services_test

import (
	"context"
	"testing"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/core/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
}

func (s *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	var saved domain.User
	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := s.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "plain-password",
	}, "admin-1")

	s.Require().NoError(err)
	s.NotEmpty(user.UserID)
	s.NotEqual("plain-password", saved.PasswordHash)
	s.True(utils.CheckPasswordHash("plain-password", saved.PasswordHash))
	s.Equal("admin-1", saved.ModifiedBy)
}

func (s *UserServiceTestSuite) TestCreateUser_SelfRegistrationAuditsSelf() {
	ctx := context.Background()
	var saved domain.User
	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := s.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "selfserve",
		Email:    "self@example.com",
		Password: "plain-password",
	}, "")

	s.Require().NoError(err)
	s.Equal(user.UserID, saved.ModifiedBy)
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	s.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "dup",
		Email:    "dup@example.com",
		Password: "plain-password",
	}, "admin-1")

	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-1", Username: "old", Email: "old@example.com"}
	s.mockUserRepo.On("FindUserByID", ctx, "u-1").Return(existing, nil).Once()

	var updated domain.User
	s.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.User) }).
		Return(nil).Once()

	newName := "renamed"
	user, err := s.service.UpdateUser(ctx, "u-1", dto.UpdateUserRequest{Username: &newName}, "admin-1")

	s.Require().NoError(err)
	s.Equal("renamed", user.Username)
	s.Equal("old@example.com", user.Email)
	s.Equal("renamed", updated.Username)
	s.Equal("admin-1", updated.ModifiedBy)
}

func (s *UserServiceTestSuite) TestUpdateUser_ImmutableRejected() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-super", Username: "superadmin", IsImmutable: true}
	s.mockUserRepo.On("FindUserByID", ctx, "u-super").Return(existing, nil).Once()

	newName := "renamed"
	_, err := s.service.UpdateUser(ctx, "u-super", dto.UpdateUserRequest{Username: &newName}, "admin-1")

	s.Require().ErrorIs(err, apperrors.ErrImmutableUser)
	s.mockUserRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-1", Username: "victim"}
	s.mockUserRepo.On("FindUserByID", ctx, "u-1").Return(existing, nil).Once()
	s.mockUserRepo.On("DeleteUser", ctx, "u-1").Return(nil).Once()

	err := s.service.DeleteUser(ctx, "u-1", "admin-1")

	s.Require().NoError(err)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestDeleteUser_ImmutableRejected() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-super", IsImmutable: true}
	s.mockUserRepo.On("FindUserByID", ctx, "u-super").Return(existing, nil).Once()

	err := s.service.DeleteUser(ctx, "u-super", "admin-1")

	s.Require().ErrorIs(err, apperrors.ErrImmutableUser)
	s.mockUserRepo.AssertNotCalled(s.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteUser(ctx, "missing", "admin-1")

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
