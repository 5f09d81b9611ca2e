package dto

import (
	"github.com/agentdms/agentdms-backend/internal/core/domain"
)

// timeLayout is the wire format for timestamps.
const timeLayout = "2006-01-02T15:04:05Z"

// CreateProjectRequest carries the data for a new project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	FileName    string `json:"file_name" binding:"required"`
}

// UpdateProjectRequest carries partial project updates. Pointers distinguish
// omitted fields from zero values.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	FileName    *string `json:"file_name"`
	IsActive    *bool   `json:"is_active"`
	IsArchived  *bool   `json:"is_archived"`
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	Page            int  `form:"page,default=1"`
	PageSize        int  `form:"pageSize,default=10"`
	IncludeArchived bool `form:"includeArchived"`
}

// ProjectResponse is the wire representation of a project.
type ProjectResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	FileName     string                `json:"file_name"`
	IsActive     bool                  `json:"is_active"`
	IsArchived   bool                  `json:"is_archived"`
	CreatedAt    string                `json:"created_at"`
	ModifiedAt   string                `json:"modified_at"`
	ModifiedBy   string                `json:"modified_by"`
	CustomFields []CustomFieldResponse `json:"custom_fields"`
}

// PaginatedProjectsResponse wraps a page of projects.
type PaginatedProjectsResponse struct {
	Data       []ProjectResponse `json:"data"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToProjectResponse converts a domain project and its fields to the wire form.
func ToProjectResponse(p *domain.Project, fields []domain.CustomField) ProjectResponse {
	fieldResponses := make([]CustomFieldResponse, len(fields))
	for i, f := range fields {
		fieldResponses[i] = ToCustomFieldResponse(&f)
	}
	return ProjectResponse{
		ID:           p.ProjectID,
		Name:         p.Name,
		Description:  p.Description,
		FileName:     p.FileName,
		IsActive:     p.IsActive,
		IsArchived:   p.IsArchived,
		CreatedAt:    p.CreatedAt.UTC().Format(timeLayout),
		ModifiedAt:   p.ModifiedAt.UTC().Format(timeLayout),
		ModifiedBy:   p.ModifiedBy,
		CustomFields: fieldResponses,
	}
}

// CreateCustomFieldRequest carries the data for a new custom field.
// FieldType is checked against the closed type enum by the fieldtype
// binding validator.
type CreateCustomFieldRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	FieldType       string   `json:"field_type" binding:"required,fieldtype"`
	IsRequired      bool     `json:"is_required"`
	DefaultValue    string   `json:"default_value"`
	Order           int      `json:"order"`
	RoleVisibility  string   `json:"role_visibility"`
	UserListOptions []string `json:"user_list_options"`
}

// UpdateCustomFieldRequest carries partial custom field updates.
type UpdateCustomFieldRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	IsRequired      *bool    `json:"is_required"`
	DefaultValue    *string  `json:"default_value"`
	Order           *int     `json:"order"`
	RoleVisibility  *string  `json:"role_visibility"`
	UserListOptions []string `json:"user_list_options"`
}

// CustomFieldResponse is the wire representation of a custom field.
type CustomFieldResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FieldType       string   `json:"field_type"`
	IsRequired      bool     `json:"is_required"`
	IsDefault       bool     `json:"is_default"`
	DefaultValue    string   `json:"default_value"`
	Order           int      `json:"order"`
	RoleVisibility  string   `json:"role_visibility"`
	UserListOptions []string `json:"user_list_options,omitempty"`
	IsRemovable     bool     `json:"is_removable"`
	CreatedAt       string   `json:"created_at"`
	ModifiedAt      string   `json:"modified_at"`
}

// ToCustomFieldResponse converts a domain custom field to the wire form.
func ToCustomFieldResponse(f *domain.CustomField) CustomFieldResponse {
	return CustomFieldResponse{
		ID:              f.CustomFieldID,
		Name:            f.Name,
		Description:     f.Description,
		FieldType:       string(f.FieldType),
		IsRequired:      f.IsRequired,
		IsDefault:       f.IsDefault,
		DefaultValue:    f.DefaultValue,
		Order:           f.Order,
		RoleVisibility:  f.Visibility.Encode(),
		UserListOptions: f.UserListOptions,
		IsRemovable:     f.IsRemovable,
		CreatedAt:       f.CreatedAt.UTC().Format(timeLayout),
		ModifiedAt:      f.ModifiedAt.UTC().Format(timeLayout),
	}
}

// ToCustomFieldResponses converts a slice of domain custom fields.
func ToCustomFieldResponses(fields []domain.CustomField) []CustomFieldResponse {
	out := make([]CustomFieldResponse, len(fields))
	for i, f := range fields {
		out[i] = ToCustomFieldResponse(&f)
	}
	return out
}
