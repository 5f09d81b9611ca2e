package pgsql

import (
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		PasswordResetRepo: newPgxPasswordResetRepository(dbPool),
		ProjectRepo:       newPgxProjectRepository(dbPool),
		DocumentRepo:      newPgxDocumentRepository(dbPool),
	}
}
