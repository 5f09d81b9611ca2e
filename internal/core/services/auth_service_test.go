package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/core/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
	"github.com/agentdms/agentdms-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockResetRepo *MockPasswordResetRepository
	mockTokenSvc  *MockTokenService
	cfg           *config.Config
	service       portssvc.AuthSvcFacade
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockResetRepo = new(MockPasswordResetRepository)
	s.mockTokenSvc = new(MockTokenService)
	s.cfg = &config.Config{
		ResetTokenExpiryDuration: time.Hour,
	}
	s.service = services.NewAuthService(s.cfg, s.mockUserRepo, s.mockResetRepo, s.mockTokenSvc)
}

func (s *AuthServiceTestSuite) newService() portssvc.AuthSvcFacade {
	return services.NewAuthService(s.cfg, s.mockUserRepo, s.mockResetRepo, s.mockTokenSvc)
}

func bcryptUser(userID, email, password string) *domain.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return &domain.User{
		UserID:       userID,
		Username:     "someone",
		Email:        email,
		PasswordHash: hash,
	}
}

func (s *AuthServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := bcryptUser("user-1", "alice@example.com", "password123")
	roles := []domain.UserRole{
		{UserRoleID: "ur-1", UserID: "user-1", RoleID: "role-1", RoleName: "Administrator", CreatedAt: time.Now()},
	}
	perms := []domain.Permission{
		{PermissionID: "p-1", Name: domain.PermWorkspaceAdmin},
	}
	expiry := time.Now().Add(time.Hour)

	s.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()
	s.mockUserRepo.On("FindRolesByUserID", ctx, "user-1").Return(roles, nil).Once()
	s.mockUserRepo.On("FindPermissionsByRoleIDs", ctx, []string{"role-1"}).Return(perms, nil).Once()
	s.mockTokenSvc.On("IssueToken", ctx, user, roles, []string{domain.PermWorkspaceAdmin}).
		Return("signed-token", expiry, nil).Once()

	resp, err := s.service.Authenticate(ctx, "alice@example.com", "password123")

	s.Require().NoError(err)
	s.Equal("signed-token", resp.Token)
	s.Equal("user-1", resp.User.ID)
	s.Equal([]string{domain.PermWorkspaceAdmin}, resp.User.Permissions)
	s.Require().Len(resp.User.Roles, 1)
	s.Equal("Administrator", resp.User.Roles[0].RoleName)
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockTokenSvc.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := s.service.Authenticate(ctx, "nobody@example.com", "whatever")

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	s.Nil(resp)
	s.mockTokenSvc.AssertNotCalled(s.T(), "IssueToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := bcryptUser("user-1", "alice@example.com", "correct-password")
	s.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()

	resp, err := s.service.Authenticate(ctx, "alice@example.com", "wrong-password")

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	s.Nil(resp)
	s.mockTokenSvc.AssertNotCalled(s.T(), "IssueToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticate_LegacyHashUpgrade() {
	ctx := context.Background()
	// Unsalted sha256("oldpass") per the migrated scheme.
	user := &domain.User{
		UserID:     "user-legacy",
		Email:      "legacy@example.com",
		LegacyHash: "ba61451bf2b39ffe65ad19e1f34244a2799649ad3993c65b89f751d91e09996e",
	}
	s.mockUserRepo.On("FindUserByEmail", ctx, "legacy@example.com").Return(user, nil).Once()
	s.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "user-legacy" && u.PasswordHash != "" && u.LegacyHash == "" &&
			utils.CheckPasswordHash("oldpass", u.PasswordHash)
	})).Return(nil).Once()
	s.mockUserRepo.On("FindRolesByUserID", ctx, "user-legacy").Return([]domain.UserRole{}, nil).Once()
	s.mockTokenSvc.On("IssueToken", ctx, user, []domain.UserRole{}, []string{}).
		Return("signed-token", time.Now().Add(time.Hour), nil).Once()

	resp, err := s.service.Authenticate(ctx, "legacy@example.com", "oldpass")

	s.Require().NoError(err)
	s.Equal("signed-token", resp.Token)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestAuthenticate_LegacyWrongPassword() {
	ctx := context.Background()
	user := &domain.User{
		UserID:     "user-legacy",
		Email:      "legacy@example.com",
		LegacyHash: "ba61451bf2b39ffe65ad19e1f34244a2799649ad3993c65b89f751d91e09996e",
	}
	s.mockUserRepo.On("FindUserByEmail", ctx, "legacy@example.com").Return(user, nil).Once()

	_, err := s.service.Authenticate(ctx, "legacy@example.com", "not-oldpass")

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	s.mockUserRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticate_DemoAccountDisabled() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByEmail", ctx, "admin@agentdms.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Authenticate(ctx, "admin@agentdms.com", "admin123")

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestAuthenticate_DemoAccountEnabled() {
	ctx := context.Background()
	s.cfg.EnableDemoIdentity = true
	service := s.newService()

	s.mockUserRepo.On("FindUserByEmail", ctx, "admin@agentdms.com").Return(nil, apperrors.ErrNotFound).Once()
	s.mockTokenSvc.On("IssueToken", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "admin@agentdms.com"
	}), mock.Anything, []string{domain.PermWorkspaceAdmin}).
		Return("demo-token", time.Now().Add(time.Hour), nil).Once()

	resp, err := service.Authenticate(ctx, "admin@agentdms.com", "admin123")

	s.Require().NoError(err)
	s.Equal("demo-token", resp.Token)
	s.Contains(resp.User.Permissions, domain.PermWorkspaceAdmin)
}

func (s *AuthServiceTestSuite) TestAggregatePermissions_DedupesAcrossRoles() {
	ctx := context.Background()
	roles := []domain.UserRole{
		{UserRoleID: "ur-1", UserID: "user-1", RoleID: "role-a"},
		{UserRoleID: "ur-2", UserID: "user-1", RoleID: "role-b"},
	}
	perms := []domain.Permission{
		{PermissionID: "p-1", Name: domain.PermDocumentView},
		{PermissionID: "p-2", Name: domain.PermDocumentEdit},
		{PermissionID: "p-1", Name: domain.PermDocumentView},
	}
	s.mockUserRepo.On("FindRolesByUserID", ctx, "user-1").Return(roles, nil).Once()
	s.mockUserRepo.On("FindPermissionsByRoleIDs", ctx, []string{"role-a", "role-b"}).Return(perms, nil).Once()

	result, err := s.service.AggregatePermissions(ctx, "user-1")

	s.Require().NoError(err)
	s.Equal([]string{domain.PermDocumentEdit, domain.PermDocumentView}, result)
}

func (s *AuthServiceTestSuite) TestAggregatePermissions_NoRoles() {
	ctx := context.Background()
	s.mockUserRepo.On("FindRolesByUserID", ctx, "user-x").Return([]domain.UserRole{}, nil).Once()

	result, err := s.service.AggregatePermissions(ctx, "user-x")

	s.Require().NoError(err)
	s.Empty(result)
	s.mockUserRepo.AssertNotCalled(s.T(), "FindPermissionsByRoleIDs", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRequestPasswordReset_UnknownEmailSilent() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	raw, err := s.service.RequestPasswordReset(ctx, "nobody@example.com")

	s.Require().NoError(err)
	s.Empty(raw)
	s.mockResetRepo.AssertNotCalled(s.T(), "SaveResetToken", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRequestPasswordReset_StoresHashOnly() {
	ctx := context.Background()
	user := &domain.User{UserID: "user-1", Email: "alice@example.com"}
	s.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()

	var stored domain.PasswordResetToken
	s.mockResetRepo.On("SaveResetToken", ctx, mock.MatchedBy(func(t domain.PasswordResetToken) bool {
		stored = t
		return t.UserID == "user-1" && t.TokenHash != "" && t.UsedAt == nil
	})).Return(nil).Once()

	raw, err := s.service.RequestPasswordReset(ctx, "alice@example.com")

	s.Require().NoError(err)
	s.NotEmpty(raw)
	s.NotEqual(raw, stored.TokenHash)
	s.Equal(utils.HashResetToken(raw), stored.TokenHash)
	s.WithinDuration(time.Now().Add(time.Hour), stored.ExpiresAt, time.Minute)
}

func (s *AuthServiceTestSuite) TestCompletePasswordReset_Success() {
	ctx := context.Background()
	raw := "raw-reset-token"
	record := &domain.PasswordResetToken{
		TokenID:   "tok-1",
		UserID:    "user-1",
		TokenHash: utils.HashResetToken(raw),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.mockResetRepo.On("FindResetTokenByHash", ctx, utils.HashResetToken(raw)).Return(record, nil).Once()
	s.mockResetRepo.On("ConsumeResetToken", ctx, "tok-1", "user-1", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("brand-new-password", hash)
	})).Return(nil).Once()

	err := s.service.CompletePasswordReset(ctx, raw, "brand-new-password")

	s.Require().NoError(err)
	s.mockResetRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestCompletePasswordReset_ExpiredToken() {
	ctx := context.Background()
	raw := "raw-reset-token"
	record := &domain.PasswordResetToken{
		TokenID:   "tok-1",
		UserID:    "user-1",
		TokenHash: utils.HashResetToken(raw),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	s.mockResetRepo.On("FindResetTokenByHash", ctx, utils.HashResetToken(raw)).Return(record, nil).Once()

	err := s.service.CompletePasswordReset(ctx, raw, "brand-new-password")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockResetRepo.AssertNotCalled(s.T(), "ConsumeResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestCompletePasswordReset_UnknownToken() {
	ctx := context.Background()
	s.mockResetRepo.On("FindResetTokenByHash", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.CompletePasswordReset(ctx, "bogus", "brand-new-password")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestAuthorize() {
	claims := &dto.Claims{
		UserID:      "user-1",
		Permissions: []string{domain.PermDocumentView},
	}
	s.True(s.service.Authorize(claims, domain.PermDocumentView))
	s.False(s.service.Authorize(claims, domain.PermWorkspaceAdmin))
	s.False(s.service.Authorize(nil, domain.PermDocumentView))
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
