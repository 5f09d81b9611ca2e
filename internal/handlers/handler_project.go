package handlers

import (
	"log/slog"
	"net/http"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests for projects and their field schemas.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

// registerProjectRoutes registers project and custom field routes. Reads are
// open to any authenticated caller; schema changes require the workspace
// administration permission.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)
	admin := middleware.RequirePermission(domain.PermWorkspaceAdmin)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.POST("", admin, h.createProject)
		projects.GET("/:project_id", h.getProject)
		projects.PUT("/:project_id", admin, h.updateProject)
		projects.POST("/:project_id/clone", admin, h.cloneProject)
		projects.GET("/:project_id/fields", h.listVisibleFields)
		projects.POST("/:project_id/fields", admin, h.createCustomField)
	}

	fields := rg.Group("/custom-fields")
	{
		fields.PUT("/:custom_field_id", admin, h.updateCustomField)
		fields.DELETE("/:custom_field_id", admin, h.deleteCustomField)
	}
}

// listProjects godoc
// @Summary List projects
// @Description Retrieves a page of projects with their full field schemas.
// @Tags projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param includeArchived query bool false "Include archived projects"
// @Success 200 {object} dto.PaginatedProjectsResponse
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	projects, fieldsByProject, total, err := h.projectService.ListProjects(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	data := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		data[i] = dto.ToProjectResponse(&projects[i], fieldsByProject[projects[i].ProjectID])
	}
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}
	c.JSON(http.StatusOK, dto.PaginatedProjectsResponse{
		Data:       data,
		TotalCount: total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	})
}

// getProject godoc
// @Summary Get a project
// @Description Retrieves one project with its full field schema.
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	project, fields, err := h.projectService.GetProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondError(c, err, "Failed to get project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project, fields))
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project seeded with its three default fields.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 409 {object} map[string]string "Duplicate project name"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	project, fields, err := h.projectService.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	logger.Info("Project created", slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project, fields))
}

// updateProject godoc
// @Summary Update a project
// @Description Applies partial updates to a project, including archiving.
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	projectID := c.Param("project_id")
	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req, actorUserID)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	_, fields, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "Failed to load project fields")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project, fields))
}

// cloneProject godoc
// @Summary Clone a project
// @Description Duplicates a project's field schema into a new project named "<source> (Copy)". Documents are not copied.
// @Tags projects
// @Produce json
// @Param project_id path string true "Source project ID"
// @Success 201 {object} dto.ProjectResponse
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/clone [post]
func (h *projectHandler) cloneProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	sourceProjectID := c.Param("project_id")
	clone, fields, err := h.projectService.CloneProject(c.Request.Context(), sourceProjectID, actorUserID)
	if err != nil {
		respondError(c, err, "Failed to clone project")
		return
	}
	logger.Info("Project cloned",
		slog.String("source_project_id", sourceProjectID),
		slog.String("project_id", clone.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(clone, fields))
}

// listVisibleFields godoc
// @Summary List visible fields
// @Description Returns the project's fields in display order, restricted to those visible to the caller's roles.
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {array} dto.CustomFieldResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/fields [get]
func (h *projectHandler) listVisibleFields(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	fields, err := h.projectService.ListVisibleFields(c.Request.Context(), c.Param("project_id"), claims.RoleIDs())
	if err != nil {
		respondError(c, err, "Failed to list fields")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomFieldResponses(fields))
}

// createCustomField godoc
// @Summary Add a custom field
// @Description Adds a field definition to a project's schema. Field names are unique per project.
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param field body dto.CreateCustomFieldRequest true "Field definition"
// @Success 201 {object} dto.CustomFieldResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate field name"
// @Security BearerAuth
// @Router /projects/{project_id}/fields [post]
func (h *projectHandler) createCustomField(c *gin.Context) {
	var req dto.CreateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	field, err := h.projectService.CreateCustomField(c.Request.Context(), c.Param("project_id"), req, actorUserID)
	if err != nil {
		respondError(c, err, "Failed to create field")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomFieldResponse(field))
}

// updateCustomField godoc
// @Summary Update a custom field
// @Description Applies partial updates to a field definition.
// @Tags projects
// @Accept json
// @Produce json
// @Param custom_field_id path string true "Custom field ID"
// @Param field body dto.UpdateCustomFieldRequest true "Fields to update"
// @Success 200 {object} dto.CustomFieldResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Field not found"
// @Security BearerAuth
// @Router /custom-fields/{custom_field_id} [put]
func (h *projectHandler) updateCustomField(c *gin.Context) {
	var req dto.UpdateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	field, err := h.projectService.UpdateCustomField(c.Request.Context(), c.Param("custom_field_id"), req, actorUserID)
	if err != nil {
		respondError(c, err, "Failed to update field")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomFieldResponse(field))
}

// deleteCustomField godoc
// @Summary Delete a custom field
// @Description Removes a field definition and its stored values. Default fields are non-removable.
// @Tags projects
// @Produce json
// @Param custom_field_id path string true "Custom field ID"
// @Success 204 "No content"
// @Failure 400 {object} map[string]string "Field is not removable"
// @Failure 404 {object} map[string]string "Field not found"
// @Security BearerAuth
// @Router /custom-fields/{custom_field_id} [delete]
func (h *projectHandler) deleteCustomField(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.projectService.DeleteCustomField(c.Request.Context(), c.Param("custom_field_id"), actorUserID); err != nil {
		respondError(c, err, "Failed to delete field")
		return
	}
	c.Status(http.StatusNoContent)
}
