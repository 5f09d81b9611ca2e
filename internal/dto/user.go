package dto

import (
	"github.com/agentdms/agentdms-backend/internal/core/domain"
)

// CreateUserRequest carries the data for a new user account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the wire representation of a user.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsImmutable bool   `json:"is_immutable"`
	CreatedAt   string `json:"created_at"`
	ModifiedAt  string `json:"modified_at"`
	ModifiedBy  string `json:"modified_by"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain user to the wire form.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		IsImmutable: u.IsImmutable,
		CreatedAt:   u.CreatedAt.UTC().Format(timeLayout),
		ModifiedAt:  u.ModifiedAt.UTC().Format(timeLayout),
		ModifiedBy:  u.ModifiedBy,
	}
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(&u)
	}
	return ListUsersResponse{Users: out}
}
