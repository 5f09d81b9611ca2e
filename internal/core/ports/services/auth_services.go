package services

import (
	"context"

	"github.com/agentdms/agentdms-backend/internal/dto"
)

// AuthSvcFacade is the authentication/authorization entry point for the
// request layer. It composes the credential store, password verifier,
// permission aggregation and token service.
type AuthSvcFacade interface {
	// Authenticate verifies email/password credentials and, on success,
	// issues a signed token embedding the aggregated permission set.
	// Any lookup or verification failure returns apperrors.ErrUnauthorized;
	// callers must not be able to distinguish an unknown account from a
	// wrong password.
	Authenticate(ctx context.Context, email, password string) (*dto.AuthResponse, error)

	// AggregatePermissions computes the deduplicated set of permission names
	// reachable through all of the user's roles. No caching; reflects the
	// store at call time.
	AggregatePermissions(ctx context.Context, userID string) ([]string, error)

	// Authorize reports whether the claims carry the required permission.
	// Nil claims are never authorized.
	Authorize(claims *dto.Claims, requiredPermission string) bool

	// RequestPasswordReset starts the reset flow. It returns the raw reset
	// token when the account exists and an empty string otherwise; callers
	// surface the same generic acknowledgment either way. Delivery of the
	// token is out of scope.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// CompletePasswordReset redeems a reset token: validates
	// format/expiry/binding, rehashes the password and invalidates the token
	// in one transaction. Invalid or expired tokens come back as
	// apperrors.ErrValidation.
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}

// GoogleAuthSvcFacade handles sign-in with Google: the authorization code is
// exchanged and verified, the account is found or provisioned, and a regular
// bearer credential is issued.
type GoogleAuthSvcFacade interface {
	ExchangeCode(ctx context.Context, code string) (*dto.AuthResponse, error)
}
