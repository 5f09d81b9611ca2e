package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Token      TokenSvcFacade
	Anonymous  AnonymousIdentityProvider // nil when demo identity is disabled
	GoogleAuth GoogleAuthSvcFacade       // nil when Google sign-in is not configured
	User       UserSvcFacade
	Project    ProjectSvcFacade
	Document   DocumentSvcFacade
}
