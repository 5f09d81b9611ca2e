package services

import (
	"context"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
	"github.com/agentdms/agentdms-backend/internal/dto"
)

// ProjectReaderSvc defines read operations for projects and their schemas.
type ProjectReaderSvc interface {
	// GetProject retrieves a project and its custom fields.
	GetProject(ctx context.Context, projectID string) (*domain.Project, []domain.CustomField, error)

	// ListProjects retrieves a page of projects with their custom fields
	// keyed by project ID, plus the unpaginated total.
	ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, map[string][]domain.CustomField, int, error)

	// ListVisibleFields returns a project's fields ordered by display order,
	// restricted to those visible to a caller holding the given roles.
	ListVisibleFields(ctx context.Context, projectID string, callerRoleIDs []string) ([]domain.CustomField, error)
}

// ProjectWriterSvc defines write operations for projects.
type ProjectWriterSvc interface {
	// CreateProject creates a project and atomically seeds its three default
	// fields (Filename, Date Created, Date Modified; orders 0..2, required,
	// non-removable).
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, []domain.CustomField, error)

	// CloneProject duplicates a project's schema into a new project named
	// "<source> (Copy)". Field values are not copied. Atomic: a mid-clone
	// failure leaves no new rows.
	CloneProject(ctx context.Context, sourceProjectID string, actorUserID string) (*domain.Project, []domain.CustomField, error)

	// UpdateProject applies partial updates to a project.
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, actorUserID string) (*domain.Project, error)
}

// CustomFieldSvc defines schema-definition management operations.
type CustomFieldSvc interface {
	// CreateCustomField adds a field to a project. (project, name) must be
	// unique; duplicates return apperrors.ErrDuplicate.
	CreateCustomField(ctx context.Context, projectID string, req dto.CreateCustomFieldRequest, actorUserID string) (*domain.CustomField, error)

	// UpdateCustomField applies partial updates to a field definition.
	UpdateCustomField(ctx context.Context, customFieldID string, req dto.UpdateCustomFieldRequest, actorUserID string) (*domain.CustomField, error)

	// DeleteCustomField removes a field definition. Non-removable fields are
	// rejected with apperrors.ErrValidation.
	DeleteCustomField(ctx context.Context, customFieldID string, actorUserID string) error
}

// ProjectSvcFacade combines all project-related service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	CustomFieldSvc
}
