package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/google/uuid"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// defaultProjectFields builds the three seed fields every new project starts
// with. They are required and cannot be removed, only repositioned.
func defaultProjectFields(projectID string, now time.Time, actorUserID string) []domain.CustomField {
	seeds := []struct {
		name      string
		fieldType domain.FieldType
	}{
		{"Filename", domain.FieldTypeText},
		{"Date Created", domain.FieldTypeDate},
		{"Date Modified", domain.FieldTypeDate},
	}
	fields := make([]domain.CustomField, len(seeds))
	for i, seed := range seeds {
		f := domain.CustomField{
			CustomFieldID: uuid.NewString(),
			ProjectID:     projectID,
			Name:          seed.name,
			FieldType:     seed.fieldType,
			IsRequired:    true,
			IsDefault:     true,
			IsRemovable:   false,
			Order:         i,
			Visibility:    domain.VisibilityAll(),
		}
		f.CreatedAt = now
		f.ModifiedAt = now
		f.ModifiedBy = actorUserID
		fields[i] = f
	}
	return fields
}

func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, []domain.CustomField, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	fields, err := s.projectRepo.FindCustomFieldsByProjectID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom fields", "projectID", projectID)
		return nil, nil, fmt.Errorf("failed to load custom fields: %w", err)
	}
	return project, fields, nil
}

func (s *projectService) ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, map[string][]domain.CustomField, int, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 10
	}
	offset := (params.Page - 1) * params.PageSize
	projects, total, err := s.projectRepo.FindProjects(ctx, params.PageSize, offset, params.IncludeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return projects, map[string][]domain.CustomField{}, total, nil
	}
	projectIDs := make([]string, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ProjectID
	}
	fieldsByProject, err := s.projectRepo.FindCustomFieldsByProjectIDs(ctx, projectIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom fields for project page")
		return nil, nil, 0, fmt.Errorf("failed to load custom fields: %w", err)
	}
	return projects, fieldsByProject, total, nil
}

// ListVisibleFields returns the project's fields in display order, dropping
// those whose visibility excludes every one of the caller's roles.
func (s *projectService) ListVisibleFields(ctx context.Context, projectID string, callerRoleIDs []string) ([]domain.CustomField, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	fields, err := s.projectRepo.FindCustomFieldsByProjectID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom fields", "projectID", projectID)
		return nil, fmt.Errorf("failed to load custom fields: %w", err)
	}
	visible := make([]domain.CustomField, 0, len(fields))
	for _, f := range fields {
		if f.Visibility.VisibleTo(callerRoleIDs) {
			visible = append(visible, f)
		}
	}
	return visible, nil
}

// CreateProject persists the project together with its three default fields
// in one transaction.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, []domain.CustomField, error) {
	now := time.Now()
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		FileName:    req.FileName,
		IsActive:    true,
	}
	project.CreatedAt = now
	project.ModifiedAt = now
	project.ModifiedBy = creatorUserID

	fields := defaultProjectFields(project.ProjectID, now, creatorUserID)
	if err := s.projectRepo.SaveProjectWithFields(ctx, project, fields); err != nil {
		s.LogError(ctx, err, "Failed to save project", "name", req.Name)
		return nil, nil, err
	}
	s.LogInfo(ctx, "Project created", "projectID", project.ProjectID)
	return &project, fields, nil
}

// CloneProject copies the source project's full field schema into a new
// project named "<source> (Copy)". Documents and field values stay behind.
func (s *projectService) CloneProject(ctx context.Context, sourceProjectID string, actorUserID string) (*domain.Project, []domain.CustomField, error) {
	source, err := s.projectRepo.FindProjectByID(ctx, sourceProjectID)
	if err != nil {
		return nil, nil, err
	}
	sourceFields, err := s.projectRepo.FindCustomFieldsByProjectID(ctx, sourceProjectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load source fields", "projectID", sourceProjectID)
		return nil, nil, fmt.Errorf("failed to load source fields: %w", err)
	}

	now := time.Now()
	clone := domain.Project{
		ProjectID:   uuid.NewString(),
		Name:        source.Name + " (Copy)",
		Description: source.Description,
		FileName:    source.FileName,
		IsActive:    true,
	}
	clone.CreatedAt = now
	clone.ModifiedAt = now
	clone.ModifiedBy = actorUserID

	cloneFields := make([]domain.CustomField, len(sourceFields))
	for i, f := range sourceFields {
		nf := f
		nf.CustomFieldID = uuid.NewString()
		nf.ProjectID = clone.ProjectID
		nf.CreatedAt = now
		nf.ModifiedAt = now
		nf.ModifiedBy = actorUserID
		cloneFields[i] = nf
	}

	if err := s.projectRepo.SaveProjectWithFields(ctx, clone, cloneFields); err != nil {
		s.LogError(ctx, err, "Failed to save cloned project", "sourceProjectID", sourceProjectID)
		return nil, nil, err
	}
	s.LogInfo(ctx, "Project cloned", "sourceProjectID", sourceProjectID, "projectID", clone.ProjectID)
	return &clone, cloneFields, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, actorUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.FileName != nil {
		project.FileName = *req.FileName
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	if req.IsArchived != nil {
		project.IsArchived = *req.IsArchived
	}
	project.Touch(time.Now(), actorUserID)
	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", "projectID", projectID)
		return nil, err
	}
	return project, nil
}

// CreateCustomField adds a field definition to a project. The (project, name)
// pair must be unique; the unique index reports duplicates as ErrDuplicate.
func (s *projectService) CreateCustomField(ctx context.Context, projectID string, req dto.CreateCustomFieldRequest, actorUserID string) (*domain.CustomField, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	fieldType := domain.FieldType(req.FieldType)
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("unknown field type %q: %w", req.FieldType, apperrors.ErrValidation)
	}
	if fieldType != domain.FieldTypeUserList && len(req.UserListOptions) > 0 {
		return nil, fmt.Errorf("user_list_options only apply to UserList fields: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	field := domain.CustomField{
		CustomFieldID:   uuid.NewString(),
		ProjectID:       projectID,
		Name:            req.Name,
		Description:     req.Description,
		FieldType:       fieldType,
		IsRequired:      req.IsRequired,
		IsRemovable:     true,
		DefaultValue:    req.DefaultValue,
		Order:           req.Order,
		Visibility:      domain.ParseVisibility(req.RoleVisibility),
		UserListOptions: req.UserListOptions,
	}
	field.CreatedAt = now
	field.ModifiedAt = now
	field.ModifiedBy = actorUserID

	if field.DefaultValue != "" {
		if err := fieldType.ValidateValue(field.DefaultValue, field.UserListOptions); err != nil {
			return nil, fmt.Errorf("invalid default value for field %q: %w", field.Name, err)
		}
	}

	if err := s.projectRepo.SaveCustomField(ctx, field); err != nil {
		s.LogError(ctx, err, "Failed to save custom field", "projectID", projectID, "name", req.Name)
		return nil, err
	}
	return &field, nil
}

func (s *projectService) UpdateCustomField(ctx context.Context, customFieldID string, req dto.UpdateCustomFieldRequest, actorUserID string) (*domain.CustomField, error) {
	field, err := s.projectRepo.FindCustomFieldByID(ctx, customFieldID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if field.IsDefault && *req.Name != field.Name {
			return nil, fmt.Errorf("default field %q cannot be renamed: %w", field.Name, apperrors.ErrValidation)
		}
		field.Name = *req.Name
	}
	if req.Description != nil {
		field.Description = *req.Description
	}
	if req.IsRequired != nil {
		if field.IsDefault && !*req.IsRequired {
			return nil, fmt.Errorf("default field %q must stay required: %w", field.Name, apperrors.ErrValidation)
		}
		field.IsRequired = *req.IsRequired
	}
	if req.DefaultValue != nil {
		field.DefaultValue = *req.DefaultValue
	}
	if req.Order != nil {
		field.Order = *req.Order
	}
	if req.RoleVisibility != nil {
		field.Visibility = domain.ParseVisibility(*req.RoleVisibility)
	}
	if req.UserListOptions != nil {
		if field.FieldType != domain.FieldTypeUserList {
			return nil, fmt.Errorf("user_list_options only apply to UserList fields: %w", apperrors.ErrValidation)
		}
		field.UserListOptions = req.UserListOptions
	}
	if field.DefaultValue != "" {
		if err := field.FieldType.ValidateValue(field.DefaultValue, field.UserListOptions); err != nil {
			return nil, fmt.Errorf("invalid default value for field %q: %w", field.Name, err)
		}
	}
	field.Touch(time.Now(), actorUserID)
	if err := s.projectRepo.UpdateCustomField(ctx, *field); err != nil {
		s.LogError(ctx, err, "Failed to update custom field", "customFieldID", customFieldID)
		return nil, err
	}
	return field, nil
}

// DeleteCustomField removes a field definition. Seeded default fields are
// marked non-removable and are rejected here.
func (s *projectService) DeleteCustomField(ctx context.Context, customFieldID string, actorUserID string) error {
	field, err := s.projectRepo.FindCustomFieldByID(ctx, customFieldID)
	if err != nil {
		return err
	}
	if !field.IsRemovable {
		return fmt.Errorf("field %q cannot be removed: %w", field.Name, apperrors.ErrValidation)
	}
	if err := s.projectRepo.DeleteCustomField(ctx, customFieldID); err != nil {
		s.LogError(ctx, err, "Failed to delete custom field", "customFieldID", customFieldID)
		return err
	}
	s.LogInfo(ctx, "Custom field deleted", "customFieldID", customFieldID, "deletedBy", actorUserID)
	return nil
}
