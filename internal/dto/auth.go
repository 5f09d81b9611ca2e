package dto

// LoginRequest carries user credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token     string     `json:"token"`
	User      UserClaims `json:"user"`
	ExpiresAt string     `json:"expires_at"`
}

// UserClaims is the identity portion of the token payload, echoed in login
// and /me responses.
type UserClaims struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	IsImmutable bool        `json:"is_immutable"`
	Roles       []RoleClaim `json:"roles"`
	Permissions []string    `json:"permissions"`
}

// ToUserClaims extracts the identity portion from full token claims.
func ToUserClaims(c *Claims) UserClaims {
	return UserClaims{
		ID:          c.UserID,
		Username:    c.Username,
		Email:       c.Email,
		IsImmutable: c.IsImmutable,
		Roles:       c.Roles,
		Permissions: c.Permissions,
	}
}

// ForgotPasswordRequest initiates the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// MessageResponse is a generic acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
