package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository{Pool: db}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, name, description, file_name, is_active, is_archived, created_at, modified_at, modified_by`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.Description,
		&p.FileName,
		&p.IsActive,
		&p.IsArchived,
		&p.CreatedAt,
		&p.ModifiedAt,
		&p.ModifiedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const customFieldColumns = `custom_field_id, project_id, name, description, field_type, is_required, is_default, is_removable, default_value, field_order, role_visibility, user_list_options, created_at, modified_at, modified_by`

func scanCustomField(row pgx.Row) (*domain.CustomField, error) {
	var f domain.CustomField
	var fieldType string
	var roleVisibility string
	var userListOptions []string
	err := row.Scan(
		&f.CustomFieldID,
		&f.ProjectID,
		&f.Name,
		&f.Description,
		&fieldType,
		&f.IsRequired,
		&f.IsDefault,
		&f.IsRemovable,
		&f.DefaultValue,
		&f.Order,
		&roleVisibility,
		&userListOptions,
		&f.CreatedAt,
		&f.ModifiedAt,
		&f.ModifiedBy,
	)
	if err != nil {
		return nil, err
	}
	f.FieldType = domain.FieldType(fieldType)
	f.Visibility = domain.ParseVisibility(roleVisibility)
	f.UserListOptions = userListOptions
	return &f, nil
}

func insertCustomFieldTx(ctx context.Context, tx pgx.Tx, field domain.CustomField) error {
	query := `
        INSERT INTO custom_fields (
            custom_field_id, project_id, name, description, field_type,
            is_required, is_default, is_removable, default_value, field_order,
            role_visibility, user_list_options, created_at, modified_at, modified_by
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := tx.Exec(ctx, query,
		field.CustomFieldID,
		field.ProjectID,
		field.Name,
		field.Description,
		string(field.FieldType),
		field.IsRequired,
		field.IsDefault,
		field.IsRemovable,
		field.DefaultValue,
		field.Order,
		field.Visibility.Encode(),
		field.UserListOptions,
		field.CreatedAt,
		field.ModifiedAt,
		field.ModifiedBy,
	)
	return err
}

// SaveProjectWithFields persists the project and all of its custom fields in
// one transaction. A failure anywhere rolls back everything; no orphaned
// project rows.
func (r *PgxProjectRepository) SaveProjectWithFields(ctx context.Context, project domain.Project, fields []domain.CustomField) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored after a successful commit

	projectQuery := `
        INSERT INTO projects (project_id, name, description, file_name, is_active, is_archived, created_at, modified_at, modified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err = tx.Exec(ctx, projectQuery,
		project.ProjectID,
		project.Name,
		project.Description,
		project.FileName,
		project.IsActive,
		project.IsArchived,
		project.CreatedAt,
		project.ModifiedAt,
		project.ModifiedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert project "+project.ProjectID, err)
	}

	for _, field := range fields {
		if err := insertCustomFieldTx(ctx, tx, field); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("duplicate field name %q in project: %w", field.Name, apperrors.ErrDuplicate)
			}
			return apperrors.NewAppError(500, "failed to insert custom field "+field.Name, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	project, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	return project, nil
}

func (r *PgxProjectRepository) FindProjects(ctx context.Context, limit int, offset int, includeArchived bool) ([]domain.Project, int, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	whereClause := ``
	if !includeArchived {
		whereClause = `WHERE is_archived = FALSE`
	}

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM projects ` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := `
        SELECT ` + projectColumns + `
        FROM projects ` + whereClause + `
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *project)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}
	return projects, totalCount, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
        UPDATE projects
        SET name = $1, description = $2, file_name = $3, is_active = $4, is_archived = $5, modified_at = $6, modified_by = $7
        WHERE project_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		project.Name,
		project.Description,
		project.FileName,
		project.IsActive,
		project.IsArchived,
		project.ModifiedAt,
		project.ModifiedBy,
		project.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update project query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) FindCustomFieldByID(ctx context.Context, customFieldID string) (*domain.CustomField, error) {
	query := `SELECT ` + customFieldColumns + ` FROM custom_fields WHERE custom_field_id = $1;`
	field, err := scanCustomField(r.Pool.QueryRow(ctx, query, customFieldID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find custom field by ID %s: %w", customFieldID, err)
	}
	return field, nil
}

func (r *PgxProjectRepository) FindCustomFieldsByProjectID(ctx context.Context, projectID string) ([]domain.CustomField, error) {
	query := `
        SELECT ` + customFieldColumns + `
        FROM custom_fields
        WHERE project_id = $1
        ORDER BY field_order ASC, created_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom fields for project %s: %w", projectID, err)
	}
	defer rows.Close()

	fields := []domain.CustomField{}
	for rows.Next() {
		field, err := scanCustomField(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custom field row: %w", err)
		}
		fields = append(fields, *field)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating custom field rows: %w", rows.Err())
	}
	return fields, nil
}

func (r *PgxProjectRepository) FindCustomFieldsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.CustomField, error) {
	result := map[string][]domain.CustomField{}
	if len(projectIDs) == 0 {
		return result, nil
	}

	query := `
        SELECT ` + customFieldColumns + `
        FROM custom_fields
        WHERE project_id = ANY($1)
        ORDER BY field_order ASC, created_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom fields for projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		field, err := scanCustomField(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custom field row: %w", err)
		}
		result[field.ProjectID] = append(result[field.ProjectID], *field)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating custom field rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxProjectRepository) SaveCustomField(ctx context.Context, field domain.CustomField) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertCustomFieldTx(ctx, tx, field); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("duplicate field name %q in project: %w", field.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert custom field: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxProjectRepository) UpdateCustomField(ctx context.Context, field domain.CustomField) error {
	query := `
        UPDATE custom_fields
        SET name = $1, description = $2, is_required = $3, default_value = $4,
            field_order = $5, role_visibility = $6, user_list_options = $7,
            modified_at = $8, modified_by = $9
        WHERE custom_field_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		field.Name,
		field.Description,
		field.IsRequired,
		field.DefaultValue,
		field.Order,
		field.Visibility.Encode(),
		field.UserListOptions,
		field.ModifiedAt,
		field.ModifiedBy,
		field.CustomFieldID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("duplicate field name %q in project: %w", field.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update custom field query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("custom field not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) DeleteCustomField(ctx context.Context, customFieldID string) error {
	// Stored values cascade via the document_field_values FK.
	query := `DELETE FROM custom_fields WHERE custom_field_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, customFieldID)
	if err != nil {
		return fmt.Errorf("failed to delete custom field: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("custom field not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
