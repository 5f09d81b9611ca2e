package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
)

// claimTimeLayout is the wire format for timestamps inside token claims.
const claimTimeLayout = "2006-01-02T15:04:05Z"

// tokenService issues and validates the signed, self-contained credentials.
// The signing key, issuer and audience are injected at construction so tests
// can run with their own values.
type tokenService struct {
	BaseService
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewTokenService creates a new token service from application configuration.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		expiry:   cfg.JWTExpiryDuration,
	}
}

// Ensure tokenService implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueToken signs a credential embedding identity, role assignments and the
// aggregated permission set. The payload is the complete authorization
// context; permission edits only reach the holder on re-authentication.
func (s *tokenService) IssueToken(ctx context.Context, user *domain.User, roles []domain.UserRole, permissions []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	roleClaims := make([]dto.RoleClaim, len(roles))
	for i, r := range roles {
		roleClaims[i] = dto.RoleClaim{
			ID:        r.UserRoleID,
			UserID:    r.UserID,
			RoleID:    r.RoleID,
			RoleName:  r.RoleName,
			CreatedAt: r.CreatedAt.UTC().Format(claimTimeLayout),
		}
	}
	if permissions == nil {
		permissions = []string{}
	}

	claims := &dto.Claims{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		IsImmutable: user.IsImmutable,
		Roles:       roleClaims,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.UserID,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies signature, issuer, audience and expiry. All failure
// modes come back as sentinel errors; callers treat them as "unauthenticated",
// never as a fault.
func (s *tokenService) ValidateToken(tokenString string) (*dto.Claims, error) {
	claims := &dto.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("malformed token: %w", apperrors.ErrUnauthorized)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}
	return claims, nil
}
