package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
	"github.com/agentdms/agentdms-backend/internal/utils"
	"github.com/google/uuid"
)

// resetTokenBytes is the entropy of a password reset token before hex encoding.
const resetTokenBytes = 32

type authService struct {
	BaseService
	userRepo           portsrepo.UserRepositoryFacade
	resetRepo          portsrepo.PasswordResetRepository
	tokenSvc           portssvc.TokenSvcFacade
	resetTokenExpiry   time.Duration
	enableDemoAccounts bool
}

// NewAuthService creates a new authentication service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, resetRepo portsrepo.PasswordResetRepository, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:           userRepo,
		resetRepo:          resetRepo,
		tokenSvc:           tokenSvc,
		resetTokenExpiry:   cfg.ResetTokenExpiryDuration,
		enableDemoAccounts: cfg.EnableDemoIdentity,
	}
}

// Ensure authService implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate verifies credentials and issues a signed token carrying the
// caller's roles and aggregated permissions. Every credential failure is
// reported as ErrUnauthorized so responses cannot be used to enumerate
// accounts; the specific reason only reaches the logs.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if !s.verifyPassword(ctx, user, password) {
			s.LogInfo(ctx, "Login rejected: password mismatch", "email", email)
			return nil, apperrors.ErrUnauthorized
		}
		return s.issueFor(ctx, user, nil, nil)
	case errors.Is(err, apperrors.ErrNotFound):
		if s.enableDemoAccounts {
			if acct, ok := demoAccounts[email]; ok && acct.password == password {
				s.LogInfo(ctx, "Demo account login", "email", email)
				u := acct.user
				return s.issueFor(ctx, &u, acct.roles(time.Now()), acct.permissions)
			}
		}
		s.LogInfo(ctx, "Login rejected: unknown email", "email", email)
		return nil, apperrors.ErrUnauthorized
	default:
		s.LogError(ctx, err, "Failed to look up user for login", "email", email)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
}

// verifyPassword checks the bcrypt hash first and falls back to the migrated
// legacy scheme. A legacy match upgrades the account to bcrypt in place.
func (s *authService) verifyPassword(ctx context.Context, user *domain.User, password string) bool {
	if utils.CheckPasswordHash(password, user.PasswordHash) {
		return true
	}
	if !utils.CheckLegacyPasswordHash(password, user.LegacyHash) {
		return false
	}
	newHash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to upgrade legacy password hash", "userID", user.UserID)
		return true
	}
	user.PasswordHash = newHash
	user.LegacyHash = ""
	user.Touch(time.Now(), user.UserID)
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to persist upgraded password hash", "userID", user.UserID)
	}
	return true
}

// issueFor loads role assignments and permissions when not supplied, signs a
// token and assembles the login response.
func (s *authService) issueFor(ctx context.Context, user *domain.User, roles []domain.UserRole, permissions []string) (*dto.AuthResponse, error) {
	var err error
	if roles == nil {
		roles, err = s.userRepo.FindRolesByUserID(ctx, user.UserID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load roles", "userID", user.UserID)
			return nil, fmt.Errorf("failed to load roles: %w", err)
		}
	}
	if permissions == nil {
		permissions, err = s.aggregateForRoles(ctx, roles)
		if err != nil {
			return nil, err
		}
	}

	token, expiresAt, err := s.tokenSvc.IssueToken(ctx, user, roles, permissions)
	if err != nil {
		return nil, err
	}

	claims := &dto.Claims{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		IsImmutable: user.IsImmutable,
		Permissions: permissions,
		Roles:       make([]dto.RoleClaim, 0, len(roles)),
	}
	for _, r := range roles {
		claims.Roles = append(claims.Roles, dto.RoleClaim{
			ID:        r.UserRoleID,
			UserID:    r.UserID,
			RoleID:    r.RoleID,
			RoleName:  r.RoleName,
			CreatedAt: r.CreatedAt.UTC().Format(claimTimeLayout),
		})
	}
	return &dto.AuthResponse{
		Token:     token,
		User:      dto.ToUserClaims(claims),
		ExpiresAt: expiresAt.UTC().Format(claimTimeLayout),
	}, nil
}

// AggregatePermissions computes the union of permissions granted through all
// of the user's role assignments.
func (s *authService) AggregatePermissions(ctx context.Context, userID string) ([]string, error) {
	roles, err := s.userRepo.FindRolesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load roles for aggregation", "userID", userID)
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return s.aggregateForRoles(ctx, roles)
}

func (s *authService) aggregateForRoles(ctx context.Context, roles []domain.UserRole) ([]string, error) {
	if len(roles) == 0 {
		return []string{}, nil
	}
	roleIDs := make([]string, len(roles))
	for i, r := range roles {
		roleIDs[i] = r.RoleID
	}
	perms, err := s.userRepo.FindPermissionsByRoleIDs(ctx, roleIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load permissions", "roleIDs", roleIDs)
		return nil, fmt.Errorf("failed to load permissions: %w", err)
	}
	seen := make(map[string]struct{}, len(perms))
	unique := make([]string, 0, len(perms))
	for _, p := range perms {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		unique = append(unique, p.Name)
	}
	sort.Strings(unique)
	return unique, nil
}

// Authorize reports whether the token's embedded permission set includes the
// required permission. No storage round trip is made; the token is the
// authority for its lifetime.
func (s *authService) Authorize(claims *dto.Claims, requiredPermission string) bool {
	return claims != nil && claims.HasPermission(requiredPermission)
}

// RequestPasswordReset creates a single-use reset token for the account.
// Unknown emails succeed silently with an empty token so the endpoint cannot
// be used to probe which addresses are registered. Only a hash of the token
// is stored; the raw value goes out with the reset email and is never
// recoverable from the database.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Password reset requested for unknown email", "email", email)
			return "", nil
		}
		s.LogError(ctx, err, "Failed to look up user for password reset", "email", email)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	raw, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate reset token")
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	now := time.Now()
	record := domain.PasswordResetToken{
		TokenID:   uuid.NewString(),
		UserID:    user.UserID,
		TokenHash: utils.HashResetToken(raw),
		ExpiresAt: now.Add(s.resetTokenExpiry),
		CreatedAt: now,
	}
	if err := s.resetRepo.SaveResetToken(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to store reset token", "userID", user.UserID)
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return raw, nil
}

// CompletePasswordReset redeems a reset token and installs the new password.
// Consuming the token and updating the hash happen in one transaction, so a
// token can never be replayed even under concurrent redemption attempts.
func (s *authService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	record, err := s.resetRepo.FindResetTokenByHash(ctx, utils.HashResetToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("invalid or expired reset token: %w", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to look up reset token")
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if !record.IsUsable(time.Now()) {
		return fmt.Errorf("invalid or expired reset token: %w", apperrors.ErrValidation)
	}
	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.resetRepo.ConsumeResetToken(ctx, record.TokenID, record.UserID, newHash); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return fmt.Errorf("invalid or expired reset token: %w", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to consume reset token", "tokenID", record.TokenID)
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	s.LogInfo(ctx, "Password reset completed", "userID", record.UserID)
	return nil
}
