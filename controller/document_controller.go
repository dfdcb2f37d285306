// controller/document_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/middleware"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/service"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
	helper_util "github.com/idatumhimanshu-alt/syscomply-app-sub001/util/helper"
)

type DocumentController struct {
	documentService service.IDocumentService
	access          service.IAccessService
}

func NewDocumentController(documentService service.IDocumentService, access service.IAccessService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		access:          access,
	}
}

// RegisterRoutes registers the API routes
func (dc *DocumentController) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents/:moduleId")
	{
		documents.POST("", middleware.RequirePermission(dc.access, model.ModuleDocuments, model.ActionWrite), dc.UploadDocuments)
		documents.GET("", middleware.RequirePermission(dc.access, model.ModuleDocuments, model.ActionRead), dc.ListDocuments)
		documents.GET("/task/:taskId", middleware.RequirePermission(dc.access, model.ModuleDocuments, model.ActionRead), dc.ListDocumentsByTask)
		documents.GET("/:id", middleware.RequirePermission(dc.access, model.ModuleDocuments, model.ActionRead), dc.GetDocument)
		documents.DELETE("/:id", middleware.RequirePermission(dc.access, model.ModuleDocuments, model.ActionDelete), dc.DeleteDocument)
	}
}

// UploadDocuments endpoint. Multipart form: one or more files under
// "files", plus task_id and an optional remark.
func (dc *DocumentController) UploadDocuments(c *gin.Context) {
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid multipart form", qms_errors.ErrInvalidDocumentData)
		return
	}
	taskID := c.PostForm("task_id")
	remark := c.PostForm("remark")
	files := form.File["files"]
	if taskID == "" || len(files) == 0 {
		util.RespondWithError(c, http.StatusBadRequest, "task_id and at least one file are required", qms_errors.ErrInvalidDocumentData)
		return
	}

	uploaded := make([]*model.Document, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
			return
		}

		document, err := dc.documentService.UploadDocument(c, scope, model.Document{
			TaskID:   taskID,
			FileName: fileHeader.Filename,
			Remark:   remark,
		}, file, fileHeader.Header.Get("Content-Type"), identity.UserID)
		file.Close()
		if err != nil {
			switch {
			case errors.Is(err, qms_errors.ErrTaskNotFound):
				util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
			case errors.Is(err, qms_errors.ErrDatabaseOperation):
				util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
			default:
				util.RespondWithError(c, http.StatusInternalServerError, "Failed to upload document", err)
			}
			return
		}
		uploaded = append(uploaded, document)
	}

	c.JSON(http.StatusCreated, uploaded)
}

// GetDocument endpoint
func (dc *DocumentController) GetDocument(c *gin.Context) {
	documentID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	document, err := dc.documentService.GetDocument(c, scope, documentID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrDocumentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Document not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve document", err)
		}
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument endpoint
func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	documentID := c.Param("id")
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	if err := dc.documentService.DeleteDocument(c, scope, documentID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrDocumentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Document not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete document", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDocuments endpoint
func (dc *DocumentController) ListDocuments(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	documents, err := dc.documentService.ListDocuments(c, scope, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list documents", err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

// ListDocumentsByTask endpoint
func (dc *DocumentController) ListDocumentsByTask(c *gin.Context) {
	taskID := c.Param("taskId")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	documents, err := dc.documentService.ListDocumentsByTask(c, scope, taskID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list task documents", err)
		return
	}

	c.JSON(http.StatusOK, documents)
}
