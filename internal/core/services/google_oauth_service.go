package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// idTokenValidator is swapped out in tests.
type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type googleAuthService struct {
	BaseService
	oauthConfig   *oauth2.Config
	clientID      string
	userRepo      portsrepo.UserRepositoryFacade
	authSvc       portssvc.AuthSvcFacade
	tokenSvc      portssvc.TokenSvcFacade
	validateToken idTokenValidator
}

// NewGoogleAuthService creates the Google sign-in service. Callers should
// only construct it when a client ID is configured.
func NewGoogleAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade, authSvc portssvc.AuthSvcFacade) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		clientID:      cfg.GoogleClientID,
		userRepo:      userRepo,
		authSvc:       authSvc,
		tokenSvc:      tokenSvc,
		validateToken: idtoken.Validate,
	}
}

// Ensure googleAuthService implements the GoogleAuthSvcFacade interface
var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

// ExchangeCode trades the OAuth authorization code for a verified Google
// identity, provisions an account on first sign-in and issues a first-party
// token for it.
func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (*dto.AuthResponse, error) {
	oauthToken, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		s.LogInfo(ctx, "Google code exchange failed", "error", err.Error())
		return nil, fmt.Errorf("google code exchange failed: %w", apperrors.ErrUnauthorized)
	}
	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("google response missing id_token: %w", apperrors.ErrUnauthorized)
	}
	payload, err := s.validateToken(ctx, rawIDToken, s.clientID)
	if err != nil {
		s.LogInfo(ctx, "Google id_token validation failed", "error", err.Error())
		return nil, fmt.Errorf("google id_token rejected: %w", apperrors.ErrUnauthorized)
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google id_token missing email: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up user for google sign-in", "email", email)
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user, err = s.provisionUser(ctx, email, payload)
		if err != nil {
			return nil, err
		}
	}

	permissions, err := s.authSvc.AggregatePermissions(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	roles, err := s.userRepo.FindRolesByUserID(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load roles for google sign-in", "userID", user.UserID)
		return nil, fmt.Errorf("failed to load roles: %w", err)
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

// provisionUser creates an account for a first-time Google sign-in. No
// password hash is stored, so password login stays disabled until the user
// goes through the reset flow.
func (s *googleAuthService) provisionUser(ctx context.Context, email string, payload *idtoken.Payload) (*domain.User, error) {
	username, _ := payload.Claims["name"].(string)
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	now := time.Now()
	user := &domain.User{
		UserID:   uuid.NewString(),
		Username: username,
		Email:    email,
	}
	user.CreatedAt = now
	user.ModifiedAt = now
	user.ModifiedBy = user.UserID
	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to provision google user", "email", email)
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	s.LogInfo(ctx, "Provisioned user from google sign-in", "userID", user.UserID)
	return user, nil
}
