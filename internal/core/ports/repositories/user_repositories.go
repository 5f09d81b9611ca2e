package repositories

import (
	"context"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email (case-insensitive).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user. Immutability is enforced at the service layer.
	DeleteUser(ctx context.Context, userID string) error
}

// RoleReader defines read operations over the role/permission graph.
type RoleReader interface {
	// FindRolesByUserID retrieves the role assignments for a user, with role
	// names populated.
	FindRolesByUserID(ctx context.Context, userID string) ([]domain.UserRole, error)

	// FindPermissionsByRoleIDs retrieves all permissions granted to any of
	// the given roles. May contain duplicates across roles; callers dedupe.
	FindPermissionsByRoleIDs(ctx context.Context, roleIDs []string) ([]domain.Permission, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	RoleReader
}

// PasswordResetRepository manages stored reset tokens. ConsumeResetToken is
// the one atomic operation: the password update and token invalidation commit
// together or not at all.
type PasswordResetRepository interface {
	SaveResetToken(ctx context.Context, token domain.PasswordResetToken) error
	FindResetTokenByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error)
	ConsumeResetToken(ctx context.Context, tokenID string, userID string, newPasswordHash string) error
}
