package domain

import "time"

// Well-known permission names. Permissions are opaque capability strings; these
// constants only exist so callers don't scatter literals around.
const (
	PermWorkspaceAdmin   = "workspace.admin"
	PermDocumentView     = "document.view"
	PermDocumentEdit     = "document.edit"
	PermDocumentDelete   = "document.delete"
	PermDocumentPrint    = "document.print"
	PermDocumentAnnotate = "document.annotate"
)

// User represents an account in the credential store.
// PasswordHash holds the bcrypt hash; accounts migrated from the previous
// platform may instead carry only LegacyHash until their next password change.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	LegacyHash   string `json:"-"`
	IsImmutable  bool   `json:"isImmutable"`
	AuditFields
}

// Role is a named bundle of permissions assignable to users.
type Role struct {
	RoleID      string `json:"roleID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// Permission grants the ability to perform an operation class.
type Permission struct {
	PermissionID string `json:"permissionID"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	AuditFields
}

// UserRole links a user to a role. (UserID, RoleID) is unique.
// RoleName is populated by repository joins for claim construction.
type UserRole struct {
	UserRoleID string    `json:"userRoleID"`
	UserID     string    `json:"userID"`
	RoleID     string    `json:"roleID"`
	RoleName   string    `json:"roleName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RolePermission links a role to a permission. (RoleID, PermissionID) is unique.
type RolePermission struct {
	RolePermissionID string    `json:"rolePermissionID"`
	RoleID           string    `json:"roleID"`
	PermissionID     string    `json:"permissionID"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PasswordResetToken is the stored half of the two-step reset flow. Only the
// sha256 hash of the issued token is persisted; a token is single use.
type PasswordResetToken struct {
	TokenID   string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the token can still redeem a password reset.
func (t PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
