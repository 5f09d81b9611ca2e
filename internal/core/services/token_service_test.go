package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	"github.com/agentdms/agentdms-backend/internal/core/services"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key-for-token-tests",
		JWTIssuer:         "agentdms-backend",
		JWTAudience:       "agentdms-clients",
		JWTExpiryDuration: time.Hour,
	}
}

func testTokenUser() *domain.User {
	return &domain.User{
		UserID:      "user-1",
		Username:    "alice",
		Email:       "alice@example.com",
		IsImmutable: false,
	}
}

func TestIssueAndValidateToken_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig())
	roles := []domain.UserRole{{
		UserRoleID: "ur-1",
		UserID:     "user-1",
		RoleID:     "role-1",
		RoleName:   "Administrator",
		CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}}
	permissions := []string{domain.PermDocumentView, domain.PermWorkspaceAdmin}

	token, expiresAt, err := svc.IssueToken(context.Background(), testTokenUser(), roles, permissions)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, permissions, claims.Permissions)
	require.Len(t, claims.Roles, 1)
	assert.Equal(t, "role-1", claims.Roles[0].RoleID)
	assert.Equal(t, "Administrator", claims.Roles[0].RoleName)
	assert.Equal(t, "2024-03-01T10:00:00Z", claims.Roles[0].CreatedAt)
	assert.True(t, claims.HasPermission(domain.PermWorkspaceAdmin))
	assert.False(t, claims.HasPermission(domain.PermDocumentDelete))
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testTokenConfig()
	cfg.JWTExpiryDuration = -time.Minute
	svc := services.NewTokenService(cfg)

	token, _, err := svc.IssueToken(context.Background(), testTokenUser(), nil, nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := services.NewTokenService(testTokenConfig())
	token, _, err := issuer.IssueToken(context.Background(), testTokenUser(), nil, nil)
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.JWTSecret = "a-different-secret"
	validator := services.NewTokenService(otherCfg)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issuerCfg := testTokenConfig()
	issuerCfg.JWTIssuer = "someone-else"
	issuer := services.NewTokenService(issuerCfg)
	token, _, err := issuer.IssueToken(context.Background(), testTokenUser(), nil, nil)
	require.NoError(t, err)

	validator := services.NewTokenService(testTokenConfig())
	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig())
	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateToken_TamperedPayload(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig())
	token, _, err := svc.IssueToken(context.Background(), testTokenUser(), nil, []string{domain.PermDocumentView})
	require.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = svc.ValidateToken(string(tampered))
	assert.Error(t, err)
}
