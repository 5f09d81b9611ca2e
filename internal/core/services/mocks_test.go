package services_test

import (
	"context"
	"time"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) FindRolesByUserID(ctx context.Context, userID string) ([]domain.UserRole, error) {
	args := m.Called(ctx, userID)
	var roles []domain.UserRole
	if args.Get(0) != nil {
		roles = args.Get(0).([]domain.UserRole)
	}
	return roles, args.Error(1)
}

func (m *MockUserRepository) FindPermissionsByRoleIDs(ctx context.Context, roleIDs []string) ([]domain.Permission, error) {
	args := m.Called(ctx, roleIDs)
	var perms []domain.Permission
	if args.Get(0) != nil {
		perms = args.Get(0).([]domain.Permission)
	}
	return perms, args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock PasswordResetRepository ---
type MockPasswordResetRepository struct {
	mock.Mock
}

func (m *MockPasswordResetRepository) SaveResetToken(ctx context.Context, token domain.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockPasswordResetRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	args := m.Called(ctx, tokenHash)
	var token *domain.PasswordResetToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.PasswordResetToken)
	}
	return token, args.Error(1)
}

func (m *MockPasswordResetRepository) ConsumeResetToken(ctx context.Context, tokenID string, userID string, newPasswordHash string) error {
	args := m.Called(ctx, tokenID, userID, newPasswordHash)
	return args.Error(0)
}

var _ portsrepo.PasswordResetRepository = (*MockPasswordResetRepository)(nil)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) FindProjects(ctx context.Context, limit int, offset int, includeArchived bool) ([]domain.Project, int, error) {
	args := m.Called(ctx, limit, offset, includeArchived)
	var projects []domain.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]domain.Project)
	}
	return projects, args.Int(1), args.Error(2)
}

func (m *MockProjectRepository) SaveProjectWithFields(ctx context.Context, project domain.Project, fields []domain.CustomField) error {
	args := m.Called(ctx, project, fields)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindCustomFieldByID(ctx context.Context, customFieldID string) (*domain.CustomField, error) {
	args := m.Called(ctx, customFieldID)
	var field *domain.CustomField
	if args.Get(0) != nil {
		field = args.Get(0).(*domain.CustomField)
	}
	return field, args.Error(1)
}

func (m *MockProjectRepository) FindCustomFieldsByProjectID(ctx context.Context, projectID string) ([]domain.CustomField, error) {
	args := m.Called(ctx, projectID)
	var fields []domain.CustomField
	if args.Get(0) != nil {
		fields = args.Get(0).([]domain.CustomField)
	}
	return fields, args.Error(1)
}

func (m *MockProjectRepository) FindCustomFieldsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.CustomField, error) {
	args := m.Called(ctx, projectIDs)
	var fields map[string][]domain.CustomField
	if args.Get(0) != nil {
		fields = args.Get(0).(map[string][]domain.CustomField)
	}
	return fields, args.Error(1)
}

func (m *MockProjectRepository) SaveCustomField(ctx context.Context, field domain.CustomField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateCustomField(ctx context.Context, field domain.CustomField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteCustomField(ctx context.Context, customFieldID string) error {
	args := m.Called(ctx, customFieldID)
	return args.Error(0)
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	var doc *domain.Document
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Document)
	}
	return doc, args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentsByProjectID(ctx context.Context, projectID string, limit int, offset int) ([]domain.Document, error) {
	args := m.Called(ctx, projectID, limit, offset)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	return docs, args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindFieldValuesByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentFieldValue, error) {
	args := m.Called(ctx, documentID)
	var values []domain.DocumentFieldValue
	if args.Get(0) != nil {
		values = args.Get(0).([]domain.DocumentFieldValue)
	}
	return values, args.Error(1)
}

func (m *MockDocumentRepository) UpsertFieldValue(ctx context.Context, value domain.DocumentFieldValue) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(ctx context.Context, user *domain.User, roles []domain.UserRole, permissions []string) (string, time.Time, error) {
	args := m.Called(ctx, user, roles, permissions)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	var claims *dto.Claims
	if args.Get(0) != nil {
		claims = args.Get(0).(*dto.Claims)
	}
	return claims, args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
