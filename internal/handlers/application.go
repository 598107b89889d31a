// internal/handlers/application.go
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/loanpesa/loanpesa-backend/internal/i18n"
	"github.com/loanpesa/loanpesa-backend/internal/reports"
	"github.com/loanpesa/loanpesa-backend/internal/services"
	"github.com/loanpesa/loanpesa-backend/internal/utils"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// listParamsFromQuery builds filter parameters from the query string. A
// period shortcut (today, this_week, ...) overrides explicit from/to dates.
func listParamsFromQuery(c *gin.Context) services.ListParams {
	params := services.ListParams{
		PaginationParams: utils.GetPaginationParams(c),
		Status:           c.DefaultQuery("status", "all"),
		From:             c.Query("from"),
		To:               c.Query("to"),
	}

	if period := c.Query("period"); period != "" {
		if from, to, ok := reports.ResolvePeriod(period, time.Now()); ok {
			params.From = from
			params.To = to
		}
	}

	return params
}

// GET /applications
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	params := listParamsFromQuery(c)

	applications, total, err := h.applicationService.List(companyID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(applications, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /applications/stats
func (h *ApplicationHandler) GetStats(c *gin.Context) {
	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	params := listParamsFromQuery(c)

	applications, err := h.applicationService.Filtered(companyID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	stats := reports.ComputeStats(applications)
	utils.SuccessResponse(c, gin.H{
		"stats":     stats,
		"by_status": reports.StatusHistogram(applications),
		"by_type":   reports.TypeHistogram(applications),
	})
}

// GET /applications/export
func (h *ApplicationHandler) ExportCSV(c *gin.Context) {
	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	params := listParamsFromQuery(c)

	applications, err := h.applicationService.Filtered(companyID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteCSV(&buf, applications); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	filename := fmt.Sprintf("loan_applications_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// GET /applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID", nil)
		return
	}

	application, err := h.applicationService.Get(companyID, applicationID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyApplicationNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"application": application,
	})
}

// PUT /applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyIDFromContext(c)
	if !ok {
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID", nil)
		return
	}

	var req services.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	application, err := h.applicationService.UpdateStatus(companyID, applicationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			utils.NotFoundResponse(c, i18n.KeyApplicationNotFound)
		case errors.Is(err, services.ErrInvalidStatus):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyApplicationUpdated),
		"application": application,
	})
}
