package repositories

import (
	"context"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project by ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjects retrieves a page of projects plus the unpaginated total.
	FindProjects(ctx context.Context, limit int, offset int, includeArchived bool) ([]domain.Project, int, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// SaveProjectWithFields persists a project together with its custom
	// fields in a single transaction. Either everything commits or nothing
	// does; a failed field insert must not leave an orphaned project.
	SaveProjectWithFields(ctx context.Context, project domain.Project, fields []domain.CustomField) error

	// UpdateProject updates an existing project's details.
	UpdateProject(ctx context.Context, project domain.Project) error
}

// CustomFieldReader defines read operations for custom field definitions.
type CustomFieldReader interface {
	// FindCustomFieldByID retrieves a field definition by ID.
	FindCustomFieldByID(ctx context.Context, customFieldID string) (*domain.CustomField, error)

	// FindCustomFieldsByProjectID retrieves a project's fields ordered by
	// their display order ascending.
	FindCustomFieldsByProjectID(ctx context.Context, projectID string) ([]domain.CustomField, error)

	// FindCustomFieldsByProjectIDs retrieves fields for several projects at
	// once, keyed by project ID, each list ordered by display order.
	FindCustomFieldsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.CustomField, error)
}

// CustomFieldWriter defines write operations for custom field definitions.
type CustomFieldWriter interface {
	// SaveCustomField persists a new field definition.
	SaveCustomField(ctx context.Context, field domain.CustomField) error

	// UpdateCustomField updates an existing field definition.
	UpdateCustomField(ctx context.Context, field domain.CustomField) error

	// DeleteCustomField removes a field definition and cascades its values.
	DeleteCustomField(ctx context.Context, customFieldID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	CustomFieldReader
	CustomFieldWriter
}
