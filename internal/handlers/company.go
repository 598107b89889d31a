// internal/handlers/company.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/loanpesa/loanpesa-backend/internal/i18n"
	"github.com/loanpesa/loanpesa-backend/internal/services"
	"github.com/loanpesa/loanpesa-backend/internal/utils"
)

type CompanyHandler struct {
	companyService *services.CompanyService
	storageService *services.StorageService
}

func NewCompanyHandler(companyService *services.CompanyService, storageService *services.StorageService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		storageService: storageService,
	}
}

// companyIDFromContext resolves the authenticated tenant. Every route in
// this handler is company scoped.
func companyIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	companyIDStr, exists := utils.GetCompanyIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	companyID, err := uuid.Parse(companyIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", nil)
		return uuid.Nil, false
	}
	return companyID, true
}

// GET /company
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	company, err := h.companyService.Get(companyID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCompanyNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"company": company,
	})
}

// PUT /company/settings
func (h *CompanyHandler) UpdateSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	company, err := h.companyService.UpdateSettings(companyID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCompanyNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCompanyUpdated),
		"company": company,
	})
}

// POST /company/loan-types
func (h *CompanyHandler) AddLoanType(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" validate:"required,min=2,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	company, err := h.companyService.AddLoanType(companyID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoanTypeExists):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCompanyLoanTypeExists))
		case errors.Is(err, services.ErrCompanyNotFound):
			utils.NotFoundResponse(c, i18n.KeyCompanyNotFound)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCompanyLoanTypeAdded),
		"company": company,
	})
}

// DELETE /company/loan-types/:name
func (h *CompanyHandler) RemoveLoanType(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if name == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "name"), nil)
		return
	}

	company, err := h.companyService.RemoveLoanType(companyID, name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoanTypeNotFound):
			utils.NotFoundResponse(c, i18n.KeyCompanyLoanTypeMissing)
		case errors.Is(err, services.ErrCompanyNotFound):
			utils.NotFoundResponse(c, i18n.KeyCompanyNotFound)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCompanyLoanTypeRemoved),
		"company": company,
	})
}

// POST /company/loan-periods
func (h *CompanyHandler) AddLoanPeriod(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Months int `json:"months" validate:"required,gte=1,lte=360"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	company, err := h.companyService.AddLoanPeriod(companyID, req.Months)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPeriodExists):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCompanyPeriodExists))
		case errors.Is(err, services.ErrCompanyNotFound):
			utils.NotFoundResponse(c, i18n.KeyCompanyNotFound)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCompanyPeriodAdded),
		"company": company,
	})
}

// DELETE /company/loan-periods/:months
func (h *CompanyHandler) RemoveLoanPeriod(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	months, err := strconv.Atoi(c.Param("months"))
	if err != nil || months < 1 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "months"), nil)
		return
	}

	company, err := h.companyService.RemoveLoanPeriod(companyID, months)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPeriodNotFound):
			utils.NotFoundResponse(c, i18n.KeyCompanyPeriodMissing)
		case errors.Is(err, services.ErrCompanyNotFound):
			utils.NotFoundResponse(c, i18n.KeyCompanyNotFound)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCompanyPeriodRemoved),
		"company": company,
	})
}

// POST /company/public-link
func (h *CompanyHandler) GeneratePublicLink(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	link, err := h.companyService.GeneratePublicLink(companyID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSettingsIncomplete):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCompanyIncomplete), nil)
		case errors.Is(err, services.ErrCompanyNotFound):
			utils.NotFoundResponse(c, i18n.KeyCompanyNotFound)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":          i18n.T(lang, i18n.KeyCompanyLinkGenerated),
		"public_form_link": link,
	})
}

// POST /company/logo
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "logo"), nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadLogo(companyID, file, header)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	// Persist the new logo URL on the company record
	company, err := h.companyService.UpdateSettings(companyID, &services.UpdateSettingsRequest{
		Logo: &result.URL,
	})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"logo":    result,
		"company": company,
	})
}
