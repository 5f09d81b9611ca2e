package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository{Pool: db}}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, project_id, file_name, storage_path, mime_type, file_size, created_at, modified_at, modified_by`

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var d domain.Document
	err := row.Scan(
		&d.DocumentID,
		&d.ProjectID,
		&d.FileName,
		&d.StoragePath,
		&d.MimeType,
		&d.FileSize,
		&d.CreatedAt,
		&d.ModifiedAt,
		&d.ModifiedBy,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	query := `
        INSERT INTO documents (document_id, project_id, file_name, storage_path, mime_type, file_size, created_at, modified_at, modified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		document.DocumentID,
		document.ProjectID,
		document.FileName,
		document.StoragePath,
		document.MimeType,
		document.FileSize,
		document.CreatedAt,
		document.ModifiedAt,
		document.ModifiedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	document, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by ID %s: %w", documentID, err)
	}
	return document, nil
}

func (r *PgxDocumentRepository) FindDocumentsByProjectID(ctx context.Context, projectID string, limit int, offset int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + documentColumns + `
        FROM documents
        WHERE project_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents for project %s: %w", projectID, err)
	}
	defer rows.Close()

	documents := []domain.Document{}
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		documents = append(documents, *document)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", rows.Err())
	}
	return documents, nil
}

// UpsertFieldValue creates or replaces the stored value for the
// (document, custom field) pair.
func (r *PgxDocumentRepository) UpsertFieldValue(ctx context.Context, value domain.DocumentFieldValue) error {
	query := `
        INSERT INTO document_field_values (field_value_id, document_id, custom_field_id, value, created_at, modified_at, modified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (document_id, custom_field_id) DO UPDATE SET
            value = EXCLUDED.value,
            modified_at = EXCLUDED.modified_at,
            modified_by = EXCLUDED.modified_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		value.FieldValueID,
		value.DocumentID,
		value.CustomFieldID,
		value.Value,
		value.CreatedAt,
		value.ModifiedAt,
		value.ModifiedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert field value: %w", err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindFieldValuesByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentFieldValue, error) {
	query := `
        SELECT field_value_id, document_id, custom_field_id, value, created_at, modified_at, modified_by
        FROM document_field_values
        WHERE document_id = $1;
    `
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query field values for document %s: %w", documentID, err)
	}
	defer rows.Close()

	values := []domain.DocumentFieldValue{}
	for rows.Next() {
		var v domain.DocumentFieldValue
		if err := rows.Scan(&v.FieldValueID, &v.DocumentID, &v.CustomFieldID, &v.Value, &v.CreatedAt, &v.ModifiedAt, &v.ModifiedBy); err != nil {
			return nil, fmt.Errorf("failed to scan field value row: %w", err)
		}
		values = append(values, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating field value rows: %w", rows.Err())
	}
	return values, nil
}
