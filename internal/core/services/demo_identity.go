package services

import (
	"time"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
)

// demoAccount is a credential pair that authenticates even without a matching
// user row. Enabled only through ENABLE_DEMO_IDENTITY, which the config layer
// forces off in production.
type demoAccount struct {
	password    string
	user        domain.User
	roleName    string
	permissions []string
}

// demoAccounts maps login emails to the fixed exploration identities.
var demoAccounts = map[string]demoAccount{
	"admin@agentdms.com": {
		password: "admin123",
		user: domain.User{
			UserID:   "demo-admin",
			Username: "admin",
			Email:    "admin@agentdms.com",
		},
		roleName:    "Administrator",
		permissions: []string{domain.PermWorkspaceAdmin},
	},
	"gill.dan2@gmail.com": {
		password: "admin123",
		user: domain.User{
			UserID:   "demo-viewer",
			Username: "gill.dan2",
			Email:    "gill.dan2@gmail.com",
		},
		roleName:    "Viewer",
		permissions: []string{domain.PermDocumentView},
	},
	"superadmin@agentdms.com": {
		password: "sarasa123",
		user: domain.User{
			UserID:      "demo-superadmin",
			Username:    "superadmin",
			Email:       "superadmin@agentdms.com",
			IsImmutable: true,
		},
		roleName: "Super Administrator",
		permissions: []string{
			domain.PermWorkspaceAdmin,
			domain.PermDocumentView,
			domain.PermDocumentEdit,
			domain.PermDocumentDelete,
			domain.PermDocumentPrint,
			domain.PermDocumentAnnotate,
		},
	},
}

// roles materializes a single role assignment for the demo identity so issued
// tokens carry the same shape as database-backed ones.
func (a demoAccount) roles(now time.Time) []domain.UserRole {
	return []domain.UserRole{{
		UserRoleID: a.user.UserID + "-role",
		UserID:     a.user.UserID,
		RoleID:     a.user.UserID + "-role",
		RoleName:   a.roleName,
		CreatedAt:  now,
	}}
}

// demoIdentityProvider serves a fixed administrator identity to requests that
// arrive without a token, so a fresh deployment can be explored before any
// real accounts exist.
type demoIdentityProvider struct{}

// NewDemoIdentityProvider creates the fallback identity provider.
func NewDemoIdentityProvider() portssvc.AnonymousIdentityProvider {
	return &demoIdentityProvider{}
}

var _ portssvc.AnonymousIdentityProvider = (*demoIdentityProvider)(nil)

func (p *demoIdentityProvider) AnonymousClaims() *dto.Claims {
	acct := demoAccounts["admin@agentdms.com"]
	now := time.Now()
	roles := acct.roles(now)
	return &dto.Claims{
		UserID:      acct.user.UserID,
		Username:    acct.user.Username,
		Email:       acct.user.Email,
		IsImmutable: acct.user.IsImmutable,
		Roles: []dto.RoleClaim{{
			ID:        roles[0].UserRoleID,
			UserID:    roles[0].UserID,
			RoleID:    roles[0].RoleID,
			RoleName:  roles[0].RoleName,
			CreatedAt: now.UTC().Format(claimTimeLayout),
		}},
		Permissions: acct.permissions,
	}
}
