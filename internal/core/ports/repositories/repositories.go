package repositories

// RepositoryProvider bundles the repository facades handed to the service
// container at startup.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	PasswordResetRepo PasswordResetRepository
	ProjectRepo       ProjectRepositoryFacade
	DocumentRepo      DocumentRepositoryFacade
}
