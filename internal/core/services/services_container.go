package services

import (
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
)

// NewServiceContainer initializes all application services with their
// dependencies and returns the populated container. Services are built in
// dependency order; optional services stay nil unless configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.PasswordResetRepo, container.Token)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.ProjectRepo)

	if cfg.EnableDemoIdentity {
		container.Anonymous = NewDemoIdentityProvider()
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		container.GoogleAuth = NewGoogleAuthService(cfg, repos.UserRepo, container.Token, container.Auth)
	}

	return container
}
