// internal/services/application_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/loanpesa/loanpesa-backend/internal/models"
	"github.com/loanpesa/loanpesa-backend/internal/reports"
	"github.com/loanpesa/loanpesa-backend/internal/utils"
)

type ApplicationService struct {
	db             *gorm.DB
	companyService *CompanyService
}

type SubmitRequest struct {
	ApplicantName string `json:"applicant_name" validate:"required,min=2,max=255"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,phone"`
	LoanType      string `json:"loan_type" validate:"required"`
	// Amount arrives as the applicant typed it, thousands separators and
	// all; it is normalized before parsing.
	Amount       string `json:"amount" validate:"required"`
	PeriodMonths int    `json:"period" validate:"required,gte=1"`
}

type UpdateStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
	Notes  string                   `json:"notes,omitempty"`
}

// ListParams narrows a company's application list. Status "all" or "" means
// no status filter; From/To are inclusive calendar days (YYYY-MM-DD).
type ListParams struct {
	utils.PaginationParams
	Status string
	From   string
	To     string
}

func NewApplicationService(db *gorm.DB, companyService *CompanyService) *ApplicationService {
	return &ApplicationService{
		db:             db,
		companyService: companyService,
	}
}

// Submit records an applicant's loan request against a company's public
// form. The company must exist and have completed its settings; the chosen
// loan type and period must come from the company's catalogs. Status is
// always forced to pending regardless of what the caller sent.
func (s *ApplicationService) Submit(companyID uuid.UUID, req *SubmitRequest) (*models.LoanApplication, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.companyService.GetPublic(companyID)
	if err != nil {
		return nil, err
	}

	if !company.LoanTypes.Contains(req.LoanType) {
		return nil, ErrInvalidLoanType
	}
	if !company.LoanPeriods.Contains(req.PeriodMonths) {
		return nil, ErrInvalidPeriod
	}

	amount, ok := utils.ParseAmount(req.Amount)
	if !ok {
		return nil, ErrInvalidAmount
	}

	reference, err := utils.GenerateReferenceCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference: %w", err)
	}

	application := &models.LoanApplication{
		CompanyID:     company.ID,
		Reference:     reference,
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		LoanType:      req.LoanType,
		Amount:        amount,
		PeriodMonths:  req.PeriodMonths,
		Status:        models.ApplicationStatusPending,
	}

	if err := s.db.Create(application).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return application, nil
}

// UpdateStatus records an admin's decision. Re-deciding an already decided
// application overwrites status and notes again; the operation itself does
// not guard terminal states, the review UI simply stops offering them.
func (s *ApplicationService) UpdateStatus(companyID, applicationID uuid.UUID, req *UpdateStatusRequest) (*models.LoanApplication, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsDecision() {
		return nil, ErrInvalidStatus
	}

	var application models.LoanApplication
	err := s.db.Where("id = ? AND company_id = ?", applicationID, companyID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	application.Status = req.Status
	application.Notes = req.Notes
	if err := s.db.Save(&application).Error; err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return &application, nil
}

func (s *ApplicationService) Get(companyID, applicationID uuid.UUID) (*models.LoanApplication, error) {
	var application models.LoanApplication
	err := s.db.Where("id = ? AND company_id = ?", applicationID, companyID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &application, nil
}

// List returns one page of a company's applications after applying search,
// status and date filters. Filtering runs over the company's full list via
// the reports helpers; lists are small and the filter semantics live in one
// place that way.
func (s *ApplicationService) List(companyID uuid.UUID, params ListParams) ([]models.LoanApplication, int64, error) {
	apps, err := s.companyApplications(companyID)
	if err != nil {
		return nil, 0, err
	}

	filtered := reports.Filter(apps, params.Search, params.Status)
	filtered = reports.FilterByDate(filtered, params.From, params.To)
	total := int64(len(filtered))

	start := (params.Page - 1) * params.Limit
	if start >= len(filtered) {
		return []models.LoanApplication{}, total, nil
	}
	end := start + params.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

// Filtered returns all of a company's applications matching the filters,
// unpaginated, for stats and CSV export.
func (s *ApplicationService) Filtered(companyID uuid.UUID, params ListParams) ([]models.LoanApplication, error) {
	apps, err := s.companyApplications(companyID)
	if err != nil {
		return nil, err
	}

	filtered := reports.Filter(apps, params.Search, params.Status)
	return reports.FilterByDate(filtered, params.From, params.To), nil
}

func (s *ApplicationService) companyApplications(companyID uuid.UUID) ([]models.LoanApplication, error) {
	var apps []models.LoanApplication
	err := s.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return apps, nil
}
