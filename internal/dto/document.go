package dto

import (
	"github.com/agentdms/agentdms-backend/internal/core/domain"
)

// CreateDocumentRequest registers document metadata within a project.
// The bytes themselves are stored elsewhere; storage_path is opaque here.
type CreateDocumentRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	StoragePath string `json:"storage_path"`
	MimeType    string `json:"mime_type"`
	FileSize    int64  `json:"file_size"`
}

// DocumentResponse is the wire representation of a document.
type DocumentResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	FileName    string `json:"file_name"`
	StoragePath string `json:"storage_path"`
	MimeType    string `json:"mime_type"`
	FileSize    int64  `json:"file_size"`
	CreatedAt   string `json:"created_at"`
	ModifiedAt  string `json:"modified_at"`
}

// ToDocumentResponse converts a domain document to the wire form.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.DocumentID,
		ProjectID:   d.ProjectID,
		FileName:    d.FileName,
		StoragePath: d.StoragePath,
		MimeType:    d.MimeType,
		FileSize:    d.FileSize,
		CreatedAt:   d.CreatedAt.UTC().Format(timeLayout),
		ModifiedAt:  d.ModifiedAt.UTC().Format(timeLayout),
	}
}

// SetFieldValueRequest writes one custom field value on a document.
type SetFieldValueRequest struct {
	CustomFieldID string `json:"custom_field_id" binding:"required"`
	Value         string `json:"value"`
}

// FieldValueResponse is one stored field value with its read-time
// interpretation. Value is the stored text; ParsedValue is the typed view.
type FieldValueResponse struct {
	CustomFieldID string `json:"custom_field_id"`
	FieldName     string `json:"field_name"`
	FieldType     string `json:"field_type"`
	Value         string `json:"value"`
	ParsedValue   any    `json:"parsed_value"`
}
