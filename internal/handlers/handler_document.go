package handlers

import (
	"net/http"
	"strconv"

	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for document metadata and field values.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers document routes. Reads require the view
// permission; writes require edit.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)
	view := middleware.RequirePermission(domain.PermDocumentView)
	edit := middleware.RequirePermission(domain.PermDocumentEdit)

	rg.GET("/projects/:project_id/documents", view, h.listDocuments)
	rg.POST("/projects/:project_id/documents", edit, h.createDocument)

	documents := rg.Group("/documents/:document_id")
	{
		documents.GET("", view, h.getDocument)
		documents.GET("/field-values", view, h.getFieldValues)
		documents.PUT("/field-values", edit, h.setFieldValue)
	}
}

// listDocuments godoc
// @Summary List documents in a project
// @Tags documents
// @Produce json
// @Param project_id path string true "Project ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	docs, err := h.documentService.ListDocuments(c.Request.Context(), c.Param("project_id"), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}
	out := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		out[i] = dto.ToDocumentResponse(&docs[i])
	}
	c.JSON(http.StatusOK, out)
}

// createDocument godoc
// @Summary Register document metadata
// @Description Registers a document's metadata within a project. Byte storage is external.
// @Tags documents
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param document body dto.CreateDocumentRequest true "Document metadata"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	doc, err := h.documentService.CreateDocument(c.Request.Context(), c.Param("project_id"), req, actorUserID)
	if err != nil {
		respondError(c, err, "Failed to create document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		respondError(c, err, "Failed to get document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// getFieldValues godoc
// @Summary Get a document's field values
// @Description Returns stored values with their typed interpretation, restricted to fields visible to the caller's roles.
// @Tags documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {array} dto.FieldValueResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id}/field-values [get]
func (h *documentHandler) getFieldValues(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	values, err := h.documentService.GetFieldValues(c.Request.Context(), c.Param("document_id"), claims.RoleIDs())
	if err != nil {
		respondError(c, err, "Failed to get field values")
		return
	}
	c.JSON(http.StatusOK, values)
}

// setFieldValue godoc
// @Summary Set a document field value
// @Description Validates the value against the field's declared type and stores it.
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param value body dto.SetFieldValueRequest true "Field value"
// @Success 200 {object} dto.FieldValueResponse
// @Failure 400 {object} map[string]string "Value rejected by field type"
// @Failure 404 {object} map[string]string "Document or field not found"
// @Security BearerAuth
// @Router /documents/{document_id}/field-values [put]
func (h *documentHandler) setFieldValue(c *gin.Context) {
	var req dto.SetFieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	value, err := h.documentService.SetFieldValue(c.Request.Context(), c.Param("document_id"), req.CustomFieldID, req.Value, actorUserID)
	if err != nil {
		respondError(c, err, "Failed to set field value")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"custom_field_id": value.CustomFieldID,
		"value":           value.Value,
	})
}
