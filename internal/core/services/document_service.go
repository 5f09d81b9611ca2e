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

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	projectRepo  portsrepo.ProjectRepositoryFacade
}

// NewDocumentService creates a new document service.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo, projectRepo: projectRepo}
}

// Ensure documentService implements the DocumentSvcFacade interface
var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) CreateDocument(ctx context.Context, projectID string, req dto.CreateDocumentRequest, actorUserID string) (*domain.Document, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	now := time.Now()
	doc := domain.Document{
		DocumentID:  uuid.NewString(),
		ProjectID:   projectID,
		FileName:    req.FileName,
		StoragePath: req.StoragePath,
		MimeType:    req.MimeType,
		FileSize:    req.FileSize,
	}
	doc.CreatedAt = now
	doc.ModifiedAt = now
	doc.ModifiedBy = actorUserID
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document", "projectID", projectID)
		return nil, err
	}
	return &doc, nil
}

func (s *documentService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.documentRepo.FindDocumentByID(ctx, documentID)
}

func (s *documentService) ListDocuments(ctx context.Context, projectID string, limit, offset int) ([]domain.Document, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.documentRepo.FindDocumentsByProjectID(ctx, projectID, limit, offset)
}

// SetFieldValue validates the raw text against the field's declared type and
// upserts it. The field must belong to the same project as the document.
func (s *documentService) SetFieldValue(ctx context.Context, documentID string, customFieldID string, rawValue string, actorUserID string) (*domain.DocumentFieldValue, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	field, err := s.projectRepo.FindCustomFieldByID(ctx, customFieldID)
	if err != nil {
		return nil, err
	}
	if field.ProjectID != doc.ProjectID {
		return nil, fmt.Errorf("field %q belongs to a different project: %w", field.Name, apperrors.ErrValidation)
	}
	if rawValue == "" && field.IsRequired {
		return nil, fmt.Errorf("field %q is required: %w", field.Name, apperrors.ErrValidation)
	}
	if rawValue != "" {
		if err := field.FieldType.ValidateValue(rawValue, field.UserListOptions); err != nil {
			return nil, fmt.Errorf("invalid value for field %q: %w", field.Name, err)
		}
	}

	now := time.Now()
	value := domain.DocumentFieldValue{
		FieldValueID:  uuid.NewString(),
		DocumentID:    documentID,
		CustomFieldID: customFieldID,
		Value:         rawValue,
	}
	value.CreatedAt = now
	value.ModifiedAt = now
	value.ModifiedBy = actorUserID
	if err := s.documentRepo.UpsertFieldValue(ctx, value); err != nil {
		s.LogError(ctx, err, "Failed to store field value", "documentID", documentID, "customFieldID", customFieldID)
		return nil, err
	}
	return &value, nil
}

// GetFieldValues returns the document's stored values in field display order,
// restricted to fields visible to the caller's roles, each paired with its
// typed read-time interpretation. A value whose field definition has since
// changed type and no longer parses is surfaced with a nil parsed view rather
// than failing the whole read.
func (s *documentService) GetFieldValues(ctx context.Context, documentID string, callerRoleIDs []string) ([]dto.FieldValueResponse, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	fields, err := s.projectRepo.FindCustomFieldsByProjectID(ctx, doc.ProjectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom fields", "projectID", doc.ProjectID)
		return nil, fmt.Errorf("failed to load custom fields: %w", err)
	}
	values, err := s.documentRepo.FindFieldValuesByDocumentID(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load field values", "documentID", documentID)
		return nil, fmt.Errorf("failed to load field values: %w", err)
	}

	valueByField := make(map[string]string, len(values))
	for _, v := range values {
		valueByField[v.CustomFieldID] = v.Value
	}

	out := make([]dto.FieldValueResponse, 0, len(fields))
	for _, f := range fields {
		if !f.Visibility.VisibleTo(callerRoleIDs) {
			continue
		}
		raw, ok := valueByField[f.CustomFieldID]
		if !ok {
			continue
		}
		var parsed any
		if raw != "" {
			parsed, err = f.FieldType.ParseValue(raw)
			if err != nil {
				s.LogWarn(ctx, "Stored value no longer parses under field type",
					"documentID", documentID, "customFieldID", f.CustomFieldID, "fieldType", string(f.FieldType))
				parsed = nil
			}
		}
		out = append(out, dto.FieldValueResponse{
			CustomFieldID: f.CustomFieldID,
			FieldName:     f.Name,
			FieldType:     string(f.FieldType),
			Value:         raw,
			ParsedValue:   parsed,
		})
	}
	return out, nil
}
