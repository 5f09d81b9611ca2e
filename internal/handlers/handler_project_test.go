package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/core/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/handlers"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID string) (*domain.Project, []domain.CustomField, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Project), args.Get(1).([]domain.CustomField), args.Error(2)
}
func (m *MockProjectService) ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, map[string][]domain.CustomField, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, 0, args.Error(3)
	}
	return args.Get(0).([]domain.Project), args.Get(1).(map[string][]domain.CustomField), args.Int(2), args.Error(3)
}
func (m *MockProjectService) ListVisibleFields(ctx context.Context, projectID string, callerRoleIDs []string) ([]domain.CustomField, error) {
	args := m.Called(ctx, projectID, callerRoleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomField), args.Error(1)
}
func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, []domain.CustomField, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Project), args.Get(1).([]domain.CustomField), args.Error(2)
}
func (m *MockProjectService) CloneProject(ctx context.Context, sourceProjectID string, actorUserID string) (*domain.Project, []domain.CustomField, error) {
	args := m.Called(ctx, sourceProjectID, actorUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Project), args.Get(1).([]domain.CustomField), args.Error(2)
}
func (m *MockProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, actorUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) CreateCustomField(ctx context.Context, projectID string, req dto.CreateCustomFieldRequest, actorUserID string) (*domain.CustomField, error) {
	args := m.Called(ctx, projectID, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomField), args.Error(1)
}
func (m *MockProjectService) UpdateCustomField(ctx context.Context, customFieldID string, req dto.UpdateCustomFieldRequest, actorUserID string) (*domain.CustomField, error) {
	args := m.Called(ctx, customFieldID, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomField), args.Error(1)
}
func (m *MockProjectService) DeleteCustomField(ctx context.Context, customFieldID string, actorUserID string) error {
	args := m.Called(ctx, customFieldID, actorUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Test Suite ---
type ProjectHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProjectService *MockProjectService
	tokenService       portssvc.TokenSvcFacade
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTIssuer:         "agentdms-test",
		JWTAudience:       "agentdms-test-clients",
		JWTExpiryDuration: time.Hour,
		IsProduction:      true, // keeps swagger routes out of the test router
	}
	suite.tokenService = services.NewTokenService(cfg)
	suite.mockProjectService = new(MockProjectService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Token:   suite.tokenService,
		Project: suite.mockProjectService,
	})
}

// generateTestToken mints a real signed token carrying the given permissions.
func (suite *ProjectHandlerTestSuite) generateTestToken(userID string, permissions []string) string {
	user := &domain.User{UserID: userID, Username: "tester", Email: "tester@example.com"}
	token, _, err := suite.tokenService.IssueToken(context.Background(), user, nil, permissions)
	if err != nil {
		suite.FailNow("Failed to issue test token", err.Error())
	}
	return token
}

func (suite *ProjectHandlerTestSuite) doRequest(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ProjectHandlerTestSuite) TestListProjects_RequiresToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/projects", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "ListProjects", mock.Anything, mock.Anything)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_Success() {
	projectID := uuid.NewString()
	projects := []domain.Project{{ProjectID: projectID, Name: "Invoices", IsActive: true}}
	fields := map[string][]domain.CustomField{
		projectID: {{CustomFieldID: uuid.NewString(), ProjectID: projectID, Name: "Filename", FieldType: domain.FieldTypeText, Visibility: domain.VisibilityAll()}},
	}
	suite.mockProjectService.On("ListProjects", mock.Anything, mock.MatchedBy(func(p dto.ListProjectsParams) bool {
		return p.Page == 1 && p.PageSize == 10
	})).Return(projects, fields, 1, nil).Once()

	token := suite.generateTestToken(uuid.NewString(), []string{domain.PermDocumentView})
	w := suite.doRequest(http.MethodGet, "/api/v1/projects", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaginatedProjectsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.TotalCount)
	suite.Equal(1, resp.TotalPages)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("Invoices", resp.Data[0].Name)
	suite.Len(resp.Data[0].CustomFields, 1)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_ForbiddenWithoutAdminPermission() {
	token := suite.generateTestToken(uuid.NewString(), []string{domain.PermDocumentView})
	w := suite.doRequest(http.MethodPost, "/api/v1/projects", token, dto.CreateProjectRequest{
		Name:     "Invoices",
		FileName: "invoice-{seq}",
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "CreateProject", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	userID := uuid.NewString()
	created := &domain.Project{ProjectID: uuid.NewString(), Name: "Invoices", FileName: "invoice-{seq}", IsActive: true}
	seeded := []domain.CustomField{
		{CustomFieldID: uuid.NewString(), ProjectID: created.ProjectID, Name: "Filename", FieldType: domain.FieldTypeText, Order: 0, Visibility: domain.VisibilityAll()},
		{CustomFieldID: uuid.NewString(), ProjectID: created.ProjectID, Name: "Date Created", FieldType: domain.FieldTypeDate, Order: 1, Visibility: domain.VisibilityAll()},
		{CustomFieldID: uuid.NewString(), ProjectID: created.ProjectID, Name: "Date Modified", FieldType: domain.FieldTypeDate, Order: 2, Visibility: domain.VisibilityAll()},
	}
	suite.mockProjectService.On("CreateProject", mock.Anything, mock.MatchedBy(func(r dto.CreateProjectRequest) bool {
		return r.Name == "Invoices"
	}), userID).Return(created, seeded, nil).Once()

	token := suite.generateTestToken(userID, []string{domain.PermWorkspaceAdmin})
	w := suite.doRequest(http.MethodPost, "/api/v1/projects", token, dto.CreateProjectRequest{
		Name:     "Invoices",
		FileName: "invoice-{seq}",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProjectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invoices", resp.Name)
	suite.Len(resp.CustomFields, 3)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	projectID := uuid.NewString()
	suite.mockProjectService.On("GetProject", mock.Anything, projectID).
		Return(nil, nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), nil)
	w := suite.doRequest(http.MethodGet, "/api/v1/projects/"+projectID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCloneProject_Success() {
	userID := uuid.NewString()
	sourceID := uuid.NewString()
	clone := &domain.Project{ProjectID: uuid.NewString(), Name: "Claims (Copy)", IsActive: true}
	suite.mockProjectService.On("CloneProject", mock.Anything, sourceID, userID).
		Return(clone, []domain.CustomField{}, nil).Once()

	token := suite.generateTestToken(userID, []string{domain.PermWorkspaceAdmin})
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/projects/%s/clone", sourceID), token, nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProjectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Claims (Copy)", resp.Name)
}

func (suite *ProjectHandlerTestSuite) TestDeleteCustomField_NonRemovableMapsToBadRequest() {
	userID := uuid.NewString()
	fieldID := uuid.NewString()
	suite.mockProjectService.On("DeleteCustomField", mock.Anything, fieldID, userID).
		Return(fmt.Errorf("field %q cannot be removed: %w", "Filename", apperrors.ErrValidation)).Once()

	token := suite.generateTestToken(userID, []string{domain.PermWorkspaceAdmin})
	w := suite.doRequest(http.MethodDelete, "/api/v1/custom-fields/"+fieldID, token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Filename")
}

func (suite *ProjectHandlerTestSuite) TestListVisibleFields_PassesCallerRoles() {
	projectID := uuid.NewString()
	fields := []domain.CustomField{
		{CustomFieldID: uuid.NewString(), ProjectID: projectID, Name: "Filename", FieldType: domain.FieldTypeText, Visibility: domain.VisibilityAll()},
	}
	suite.mockProjectService.On("ListVisibleFields", mock.Anything, projectID, mock.Anything).
		Return(fields, nil).Once()

	token := suite.generateTestToken(uuid.NewString(), []string{domain.PermDocumentView})
	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/projects/%s/fields", projectID), token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CustomFieldResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mockProjectService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestProjectHandler(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
