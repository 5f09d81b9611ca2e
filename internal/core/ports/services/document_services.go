package services

import (
	"context"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
	"github.com/agentdms/agentdms-backend/internal/dto"
)

// DocumentSvcFacade manages document metadata and typed field values.
// Values are validated against their field's type at the write boundary,
// stored as text, and re-parsed at read time.
type DocumentSvcFacade interface {
	// CreateDocument registers document metadata within a project.
	CreateDocument(ctx context.Context, projectID string, req dto.CreateDocumentRequest, actorUserID string) (*domain.Document, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves a project's documents.
	ListDocuments(ctx context.Context, projectID string, limit, offset int) ([]domain.Document, error)

	// SetFieldValue validates raw text against the field's type and stores
	// it for the (document, field) pair. The field must belong to the
	// document's project; cross-project references are rejected.
	SetFieldValue(ctx context.Context, documentID string, customFieldID string, rawValue string, actorUserID string) (*domain.DocumentFieldValue, error)

	// GetFieldValues returns a document's stored values with their read-time
	// typed interpretation, restricted to fields visible to the caller's
	// roles and ordered by field display order.
	GetFieldValues(ctx context.Context, documentID string, callerRoleIDs []string) ([]dto.FieldValueResponse, error)
}
