package repositories

import (
	"context"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
)

// DocumentReader defines read operations for document metadata.
type DocumentReader interface {
	// FindDocumentByID retrieves a document by ID.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindDocumentsByProjectID retrieves a project's documents.
	FindDocumentsByProjectID(ctx context.Context, projectID string, limit int, offset int) ([]domain.Document, error)
}

// DocumentWriter defines write operations for document metadata.
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, document domain.Document) error
}

// FieldValueReader defines read operations for document field values.
type FieldValueReader interface {
	// FindFieldValuesByDocumentID retrieves all stored values for a document.
	FindFieldValuesByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentFieldValue, error)
}

// FieldValueWriter defines write operations for document field values.
type FieldValueWriter interface {
	// UpsertFieldValue creates or replaces the value for the
	// (document, custom field) pair.
	UpsertFieldValue(ctx context.Context, value domain.DocumentFieldValue) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
	FieldValueReader
	FieldValueWriter
}
