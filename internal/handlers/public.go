// internal/handlers/public.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/loanpesa/loanpesa-backend/internal/i18n"
	"github.com/loanpesa/loanpesa-backend/internal/services"
	"github.com/loanpesa/loanpesa-backend/internal/utils"
)

// PublicHandler serves the unauthenticated intake form endpoints reached
// through a company's shared /apply link.
type PublicHandler struct {
	companyService      *services.CompanyService
	applicationService  *services.ApplicationService
	notificationService *services.NotificationService
}

func NewPublicHandler(companyService *services.CompanyService, applicationService *services.ApplicationService, notificationService *services.NotificationService) *PublicHandler {
	return &PublicHandler{
		companyService:      companyService,
		applicationService:  applicationService,
		notificationService: notificationService,
	}
}

// GET /public/apply/:companyId
//
// Returns the branding and loan catalog the form renders with. Unknown
// companies and companies with incomplete settings both present as an
// unavailable form so the link leaks nothing about tenant state.
func (h *PublicHandler) GetForm(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyApplicationFormGated)
		return
	}

	company, err := h.companyService.GetPublic(companyID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyApplicationFormGated)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"company": gin.H{
			"id":                company.ID,
			"name":              company.Name,
			"brand_color":       company.BrandColor,
			"brand_color_light": company.BrandColorLight,
			"logo_url":          company.LogoURL,
			"loan_types":        company.LoanTypes,
			"loan_periods":      company.LoanPeriods,
		},
	})
}

// POST /public/apply/:companyId
func (h *PublicHandler) SubmitApplication(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyApplicationFormGated)
		return
	}

	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	application, err := h.applicationService.Submit(companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCompanyNotFound), errors.Is(err, services.ErrFormUnavailable):
			utils.NotFoundResponse(c, i18n.KeyApplicationFormGated)
		case errors.Is(err, services.ErrInvalidLoanType),
			errors.Is(err, services.ErrInvalidPeriod),
			errors.Is(err, services.ErrInvalidAmount):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	company, err := h.companyService.Get(companyID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.notificationService.NotifyNewApplication(company, application)

	utils.CreatedResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyApplicationReceived),
		"application":  application,
		"whatsapp_url": h.notificationService.ComposeWhatsAppLink(company, application),
	})
}
