// controller/company_controller.go
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

type CompanyController struct {
	companyService service.ICompanyService
	access         service.IAccessService
}

func NewCompanyController(companyService service.ICompanyService, access service.IAccessService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		access:         access,
	}
}

// RegisterRoutes registers the API routes
func (cc *CompanyController) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies/:moduleId")
	{
		companies.POST("", middleware.RequirePermission(cc.access, model.ModuleCompanies, model.ActionWrite), cc.CreateCompany)
		companies.GET("", middleware.RequirePermission(cc.access, model.ModuleCompanies, model.ActionRead), cc.ListCompanies)
		companies.GET("/:id", middleware.RequirePermission(cc.access, model.ModuleCompanies, model.ActionRead), cc.GetCompany)
		companies.PUT("/:id", middleware.RequirePermission(cc.access, model.ModuleCompanies, model.ActionWrite), cc.UpdateCompany)
		companies.DELETE("/:id", middleware.RequirePermission(cc.access, model.ModuleCompanies, model.ActionDelete), cc.DeactivateCompany)
	}
}

// CreateCompany endpoint
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid company data", qms_errors.ErrInvalidCompanyData)
		return
	}
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	createdCompany, err := cc.companyService.CreateCompany(c, company, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, qms_errors.ErrCompanyConflict):
			util.RespondWithError(c, http.StatusConflict, "Company already exists", err)
		case errors.Is(err, qms_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create company", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdCompany)
}

// GetCompany endpoint
func (cc *CompanyController) GetCompany(c *gin.Context) {
	companyID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	company, err := cc.companyService.GetCompany(c, scope, companyID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrCompanyNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Company not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve company", err)
		}
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany endpoint
func (cc *CompanyController) UpdateCompany(c *gin.Context) {
	companyID := c.Param("id")
	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid company data", qms_errors.ErrInvalidCompanyData)
		return
	}
	company.ID = companyID
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

	updatedCompany, err := cc.companyService.UpdateCompany(c, scope, company, identity.UserID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrCompanyNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Company not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update company", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedCompany)
}

// DeactivateCompany endpoint. Soft delete: the company row and its
// users are deactivated, not removed.
func (cc *CompanyController) DeactivateCompany(c *gin.Context) {
	companyID := c.Param("id")
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
	// Tenants may only deactivate themselves.
	if !scope.All && scope.CompanyID != companyID {
		util.RespondWithError(c, http.StatusNotFound, "Company not found", qms_errors.ErrCompanyNotFound)
		return
	}

	if err := cc.companyService.DeactivateCompany(c, companyID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrCompanyNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Company not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate company", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCompanies endpoint
func (cc *CompanyController) ListCompanies(c *gin.Context) {
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

	companies, err := cc.companyService.ListCompanies(c, scope, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list companies", err)
		return
	}

	c.JSON(http.StatusOK, companies)
}
