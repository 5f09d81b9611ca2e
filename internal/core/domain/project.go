package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Project owns a set of custom field definitions and (elsewhere) documents.
// FileName is the default file-naming template applied to new documents.
type Project struct {
	ProjectID   string `json:"projectID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FileName    string `json:"fileName"`
	IsActive    bool   `json:"isActive"`
	IsArchived  bool   `json:"isArchived"`
	AuditFields
}

// FieldType enumerates the closed set of custom field types.
type FieldType string

const (
	FieldTypeText     FieldType = "Text"
	FieldTypeNumber   FieldType = "Number"
	FieldTypeDate     FieldType = "Date"
	FieldTypeBoolean  FieldType = "Boolean"
	FieldTypeLongText FieldType = "LongText"
	FieldTypeCurrency FieldType = "Currency"
	FieldTypeUserList FieldType = "UserList"
)

// AllFieldTypes lists every valid field type.
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeBoolean,
		FieldTypeLongText,
		FieldTypeCurrency,
		FieldTypeUserList,
	}
}

// IsValid reports whether ft is one of the enumerated field types.
func (ft FieldType) IsValid() bool {
	switch ft {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean,
		FieldTypeLongText, FieldTypeCurrency, FieldTypeUserList:
		return true
	}
	return false
}

// dateLayouts accepted for Date values, checked in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ValidateValue checks a raw text value against the field type. Values are
// stored as text; this is the write-boundary validation. options is the
// configured selectable set for UserList fields and ignored otherwise.
func (ft FieldType) ValidateValue(raw string, options []string) error {
	switch ft {
	case FieldTypeText, FieldTypeLongText:
		return nil
	case FieldTypeNumber:
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("%w: expected a numeric value", apperrors.ErrValidation)
		}
		return nil
	case FieldTypeCurrency:
		if _, err := decimal.NewFromString(raw); err != nil {
			return fmt.Errorf("%w: expected a currency amount", apperrors.ErrValidation)
		}
		return nil
	case FieldTypeDate:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, raw); err == nil {
				return nil
			}
		}
		return fmt.Errorf("%w: expected a date (YYYY-MM-DD)", apperrors.ErrValidation)
	case FieldTypeBoolean:
		switch strings.ToLower(raw) {
		case "true", "false":
			return nil
		}
		return fmt.Errorf("%w: expected true or false", apperrors.ErrValidation)
	case FieldTypeUserList:
		for _, opt := range options {
			if raw == opt {
				return nil
			}
		}
		return fmt.Errorf("%w: expected one of the configured users", apperrors.ErrValidation)
	default:
		return fmt.Errorf("%w: unknown field type %q", apperrors.ErrValidation, string(ft))
	}
}

// ParseValue interprets a stored text value according to the field type.
// Storage is untyped text; interpretation happens at read time.
func (ft FieldType) ParseValue(raw string) (any, error) {
	switch ft {
	case FieldTypeNumber:
		return strconv.ParseFloat(raw, 64)
	case FieldTypeCurrency:
		return decimal.NewFromString(raw)
	case FieldTypeDate:
		var lastErr error
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, raw)
			if err == nil {
				return t, nil
			}
			lastErr = err
		}
		return nil, lastErr
	case FieldTypeBoolean:
		return strings.ToLower(raw) == "true", nil
	default:
		return raw, nil
	}
}

// VisibilitySentinelAll is the stored representation of "visible to all roles".
const VisibilitySentinelAll = "all"

// Visibility is the explicit variant for role-based field visibility:
// either every role may see the field, or only the listed role IDs.
type Visibility struct {
	AllRoles bool
	RoleIDs  []string
}

// VisibilityAll returns a visibility covering every role.
func VisibilityAll() Visibility {
	return Visibility{AllRoles: true}
}

// VisibilityForRoles returns a visibility restricted to the given role IDs.
func VisibilityForRoles(roleIDs ...string) Visibility {
	return Visibility{RoleIDs: roleIDs}
}

// VisibleTo reports whether a caller holding the given roles may see the field.
func (v Visibility) VisibleTo(roleIDs []string) bool {
	if v.AllRoles {
		return true
	}
	for _, allowed := range v.RoleIDs {
		for _, held := range roleIDs {
			if allowed == held {
				return true
			}
		}
	}
	return false
}

// Encode serializes the visibility into its stored column form: the "all"
// sentinel or a comma-separated role ID list.
func (v Visibility) Encode() string {
	if v.AllRoles || len(v.RoleIDs) == 0 {
		return VisibilitySentinelAll
	}
	return strings.Join(v.RoleIDs, ",")
}

// ParseVisibility decodes the stored column form. An empty value is treated as
// the "all" sentinel for compatibility with rows written before the column
// had a default.
func ParseVisibility(s string) Visibility {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, VisibilitySentinelAll) {
		return VisibilityAll()
	}
	parts := strings.Split(s, ",")
	roleIDs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roleIDs = append(roleIDs, p)
		}
	}
	if len(roleIDs) == 0 {
		return VisibilityAll()
	}
	return Visibility{RoleIDs: roleIDs}
}

// CustomField is a project-scoped typed attribute attachable to documents.
// Default fields are seeded at project creation and are never removable.
type CustomField struct {
	CustomFieldID   string     `json:"customFieldID"`
	ProjectID       string     `json:"projectID"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	FieldType       FieldType  `json:"fieldType"`
	IsRequired      bool       `json:"isRequired"`
	IsDefault       bool       `json:"isDefault"`
	IsRemovable     bool       `json:"isRemovable"`
	DefaultValue    string     `json:"defaultValue"`
	Order           int        `json:"order"`
	Visibility      Visibility `json:"-"`
	UserListOptions []string   `json:"userListOptions,omitempty"`
	AuditFields
}
