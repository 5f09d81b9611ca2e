package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleClaim is one role assignment embedded in a token.
type RoleClaim struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	RoleID    string `json:"role_id"`
	RoleName  string `json:"role_name"`
	CreatedAt string `json:"created_at"`
}

// Claims is the complete token payload. It is the whole authorization context:
// validation never looks up server-side session state, so permission changes
// only take effect when the holder re-authenticates.
type Claims struct {
	UserID      string      `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	IsImmutable bool        `json:"is_immutable"`
	Roles       []RoleClaim `json:"roles"`
	Permissions []string    `json:"permissions"`
	jwt.RegisteredClaims
}

// HasPermission reports whether the embedded permission set contains name.
func (c *Claims) HasPermission(name string) bool {
	for _, p := range c.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// RoleIDs returns the role IDs carried by the claims, for field visibility checks.
func (c *Claims) RoleIDs() []string {
	ids := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		ids[i] = r.RoleID
	}
	return ids
}
