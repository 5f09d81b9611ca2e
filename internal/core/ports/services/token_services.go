package services

import (
	"context"
	"time"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
	"github.com/agentdms/agentdms-backend/internal/dto"
)

// TokenSvcFacade issues and validates the self-contained bearer credentials.
// Validation is a pure function of the token string and the signing config;
// no server-side session state is consulted.
type TokenSvcFacade interface {
	// IssueToken signs a credential embedding the user's identity, role
	// assignments and aggregated permission set. Returns the token string
	// and its expiry instant.
	IssueToken(ctx context.Context, user *domain.User, roles []domain.UserRole, permissions []string) (string, time.Time, error)

	// ValidateToken verifies signature, issuer, audience and expiry and
	// returns the embedded claims. Failures come back as
	// apperrors.ErrTokenExpired or apperrors.ErrUnauthorized sentinels;
	// validation never panics.
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// AnonymousIdentityProvider supplies a fixed fallback identity for
// unauthenticated exploration. Production deployments run without one, in
// which case missing credentials simply mean "unauthenticated".
type AnonymousIdentityProvider interface {
	AnonymousClaims() *dto.Claims
}
